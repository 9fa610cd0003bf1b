package contracts

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNullableFloatJSON(t *testing.T) {
	tests := []struct {
		name  string
		value NullableFloat
		want  string
	}{
		{
			name:  "present value",
			value: NullableFloat(23.5),
			want:  "23.5",
		},
		{
			name:  "absent value marshals as null",
			value: AbsentPE(),
			want:  "null",
		},
		{
			name:  "zero is a present value",
			value: NullableFloat(0),
			want:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}

			var back NullableFloat
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if tt.value.Valid() != back.Valid() {
				t.Errorf("Valid() after round trip = %v, want %v", back.Valid(), tt.value.Valid())
			}
			if tt.value.Valid() && float64(back) != float64(tt.value) {
				t.Errorf("round trip = %v, want %v", float64(back), float64(tt.value))
			}
		})
	}
}

func TestNullableFloatValid(t *testing.T) {
	if AbsentPE().Valid() {
		t.Error("AbsentPE().Valid() = true, want false")
	}
	if !NullableFloat(math.Inf(1)).Valid() {
		// Inf is unusual but it is not the absent sentinel.
		t.Error("Inf should count as present")
	}
}

func TestStockRecordJSON(t *testing.T) {
	r := StockRecord{
		Symbol:    "AAPL",
		Name:      "Apple Inc.",
		Price:     185.5,
		Change:    1.2,
		ChangePct: 0.65,
		Volume:    52000000,
		MarketCap: "2.9T",
		Sector:    "technology",
		PERatio:   AbsentPE(),
		Timestamp: "2026-08-28T07:00:00Z",
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded["change_percentage"] != 0.65 {
		t.Errorf("change_percentage = %v, want 0.65", decoded["change_percentage"])
	}
	if decoded["pe_ratio"] != nil {
		t.Errorf("pe_ratio = %v, want null", decoded["pe_ratio"])
	}

	var back StockRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.PERatio.Valid() {
		t.Error("absent P/E should survive a round trip as absent")
	}
}

func TestProject(t *testing.T) {
	r := StockRecord{
		Symbol:    "MSFT",
		Name:      "Microsoft",
		Price:     420.0,
		ChangePct: -1.1,
		Volume:    23000000,
		MarketCap: "3.1T",
	}

	p := r.Project()
	if p.Symbol != "MSFT" || p.Name != "Microsoft" || p.ChangePct != -1.1 || p.Volume != 23000000 {
		t.Errorf("Project() = %+v", p)
	}
}

func TestDefaultCategoryOrder(t *testing.T) {
	order := DefaultCategoryOrder()
	want := []string{CategoryMostActive, CategoryGainers, CategoryLosers}

	if len(order) != len(want) {
		t.Fatalf("got %d categories, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

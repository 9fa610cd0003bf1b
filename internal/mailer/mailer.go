package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/wonny/marketbrief/pkg/config"
	"github.com/wonny/marketbrief/pkg/logger"
)

// Sender delivers a rendered HTML report. The pipeline only depends on
// this interface so tests can capture the mail instead of sending it.
type Sender interface {
	Send(subject, htmlBody string) error
}

// SMTPMailer sends HTML mail over plain-auth SMTP.
type SMTPMailer struct {
	cfg    config.SMTPConfig
	logger *logger.Logger
}

// New creates an SMTP mailer from config.
func New(cfg *config.Config, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg.SMTP,
		logger: log,
	}
}

// Configured reports whether SMTP credentials and recipients are set.
// Without them the pipeline skips delivery instead of failing the run.
func (m *SMTPMailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.User != "" && m.cfg.Password != "" && len(m.cfg.Recipients) > 0
}

// Send delivers the HTML body to all configured recipients.
func (m *SMTPMailer) Send(subject, htmlBody string) error {
	if !m.Configured() {
		return fmt.Errorf("SMTP is not configured")
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(m.cfg.Recipients, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port

	if err := smtp.SendMail(addr, auth, from, m.cfg.Recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.WithFields(map[string]interface{}{
		"subject":    subject,
		"recipients": len(m.cfg.Recipients),
	}).Info("Report mail sent")

	return nil
}

package notifier

import (
	"fmt"
	"net/smtp"
	"strings"

	"kai-ticket-watcher/config"
	"kai-ticket-watcher/models"
	"kai-ticket-watcher/utils"
)

// EmailNotifier sends a plain-text summary of matches over SMTP
type EmailNotifier struct {
	cfg    *config.Config
	logger *utils.Logger
}

// NewEmailNotifier creates an email notifier from the SMTP settings
func NewEmailNotifier(cfg *config.Config, logger *utils.Logger) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, logger: logger}
}

// Configured reports whether the SMTP settings are complete enough to send
func (n *EmailNotifier) Configured() bool {
	return n.cfg.EmailSender != "" && n.cfg.EmailRecipient != "" && n.cfg.SMTPHost != ""
}

// SendTicketAlert emails a one-line-per-ticket summary. A partially
// configured notifier skips sending without error.
func (n *EmailNotifier) SendTicketAlert(tickets []*models.TicketOption) error {
	if len(tickets) == 0 {
		return nil
	}
	if !n.Configured() {
		n.logger.Debug("Email notifier is not fully configured; skipping")
		return nil
	}

	body := make([]string, 0, len(tickets)+1)
	body = append(body, "Matching tickets:")
	for _, ticket := range tickets {
		body = append(body, ticket.SummaryLine())
	}

	message := strings.Join([]string{
		fmt.Sprintf("From: %s", n.cfg.EmailSender),
		fmt.Sprintf("To: %s", n.cfg.EmailRecipient),
		"Subject: Train ticket alert",
		"",
		strings.Join(body, "\n"),
	}, "\r\n")

	port := n.cfg.SMTPPort
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", n.cfg.SMTPHost, port)

	var auth smtp.Auth
	if n.cfg.SMTPUsername != "" && n.cfg.SMTPPassword != "" {
		auth = smtp.PlainAuth("", n.cfg.SMTPUsername, n.cfg.SMTPPassword, n.cfg.SMTPHost)
	}
	if err := smtp.SendMail(addr, auth, n.cfg.EmailSender, []string{n.cfg.EmailRecipient}, []byte(message)); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	n.logger.Info("Email notification sent")
	return nil
}

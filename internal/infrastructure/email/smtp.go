package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"parley/internal/shared/config"
)

// Notifier sends ticket lifecycle notifications.
type Notifier interface {
	SendTicketAssigned(to, ticketNumber, ticketTitle string) error
	SendTicketResolved(to, ticketNumber, ticketTitle string) error
}

type SMTPEmailService struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendTicketAssigned(to, ticketNumber, ticketTitle string) error {
	ticketURL := fmt.Sprintf("%s/tickets/%s", s.config.BaseURL, ticketNumber)

	subject := fmt.Sprintf("Ticket %s assigned to you", ticketNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket assigned</h2>
			<p>Ticket <strong>%s</strong> has been assigned to you:</p>
			<p>%s</p>
			<p><a href="%s">Open the ticket</a></p>
		</body>
		</html>
	`, ticketNumber, ticketTitle, ticketURL)

	plainBody := fmt.Sprintf(`
Ticket %s has been assigned to you:

%s

Open it here: %s
	`, ticketNumber, ticketTitle, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketResolved(to, ticketNumber, ticketTitle string) error {
	ticketURL := fmt.Sprintf("%s/tickets/%s", s.config.BaseURL, ticketNumber)

	subject := fmt.Sprintf("Ticket %s has been resolved", ticketNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket resolved</h2>
			<p>Your ticket <strong>%s</strong> has been resolved:</p>
			<p>%s</p>
			<p><a href="%s">View the ticket</a> and rate your experience.</p>
		</body>
		</html>
	`, ticketNumber, ticketTitle, ticketURL)

	plainBody := fmt.Sprintf(`
Your ticket %s has been resolved:

%s

View it here and rate your experience: %s
	`, ticketNumber, ticketTitle, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

package notifications

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/josptrra/be-rasadhana/domain"
)

// MailerImpl implements domain.NotificationService over SMTP.
type MailerImpl struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer creates a new SMTP notification service
func NewMailer(host string, port int, username, password, from string) domain.NotificationService {
	return &MailerImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendEmail implements domain.NotificationService
func (m *MailerImpl) SendEmail(to, subject, body string) error {
	// Without credentials, log instead of sending. Keeps local
	// development working against a real flow.
	if m.from == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotifyFailed, err)
	}

	return nil
}

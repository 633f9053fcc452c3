package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers rendered messages over SMTP. It is the fallback
// backend when no Resend key is configured but an SMTP relay is.
type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

func (s *SMTPSender) Send(from, to string, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

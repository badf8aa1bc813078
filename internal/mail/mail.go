package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Sender отправка исходящей почты
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender отправитель поверх SMTP (SendGrid и совместимые).
// Создаётся один раз при старте процесса.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

var _ Sender = (*SMTPSender)(nil)

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

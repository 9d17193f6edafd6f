package mailer

import (
	"fmt"
	"net/smtp"

	"naija-barter/pkg/utils"
)

// Mailer delivers outbound notifications. The OTP flows only ever need a
// plain-text send.
type Mailer interface {
	Send(subject, body, to string) error
}

type smtpMailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewSMTPMailer(config utils.EmailConfig) Mailer {
	return &smtpMailer{
		host:     config.Host,
		port:     config.Port,
		user:     config.User,
		password: config.Password,
		from:     config.From,
	}
}

func (m *smtpMailer) Send(subject, body, to string) error {
	if m.host == "" || m.port == "" || m.user == "" || m.password == "" {
		return fmt.Errorf("smtp not configured")
	}

	from := m.from
	if from == "" {
		from = m.user
	}

	msg := "From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		body + "\r\n"

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

package mail

import (
	"fmt"
	"net/smtp"
)

// Mailer delivers confirmation codes out-of-band. Delivery failures must
// propagate to the caller, never be swallowed.
type Mailer interface {
	SendConfirmationCode(to, username, code string) error
}

// SMTPMailer sends plain-text mail through a relay.
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from}
}

func (m *SMTPMailer) SendConfirmationCode(to, username, code string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Confirmation code from ReviewHub\r\n\r\nHello %s,\r\n\r\nYour confirmation code: %s\r\n",
		m.from, to, username, code,
	)
	if err := smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}
	return nil
}

// Package mailer sends transactional marketplace email.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer delivers one message with a plain-text and an HTML rendering.
type Mailer interface {
	Send(to []string, subject, textBody, htmlBody string) error
}

type smtpMailer struct {
	host string
	port string
	from string
}

// NewSMTPMailer returns a Mailer speaking plain SMTP (no auth, MailHog-style
// relays in development).
func NewSMTPMailer(host, port, from string) Mailer {
	return &smtpMailer{host: host, port: port, from: from}
}

func (m *smtpMailer) Send(to []string, subject, textBody, htmlBody string) error {
	if len(to) == 0 {
		return nil
	}

	addr := m.host + ":" + m.port
	boundary := "dealstash-alt-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(textBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	return smtp.SendMail(addr, nil, m.from, to, []byte(b.String()))
}

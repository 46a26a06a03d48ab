package notification

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"warsto_quotation/internal/usecase/interfaces"
)

const quotationEmailSubject = "Your Warsto interior quotation"

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender mails the quotation link through a plain SMTP relay.
type SMTPSender struct {
	addr     string
	auth     smtp.Auth
	from     string
	sendMail sendMailFunc
	now      func() time.Time
}

var _ interfaces.IEmailSender = (*SMTPSender)(nil)

func NewSMTPSender(opts SMTPOptions) *SMTPSender {
	var auth smtp.Auth
	if opts.Username != "" {
		auth = smtp.PlainAuth("", opts.Username, opts.Password, opts.Host)
	}
	return &SMTPSender{
		addr:     net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		auth:     auth,
		from:     opts.From,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}
}

func (s *SMTPSender) SendQuotationLink(ctx context.Context, to, customerName, link string, validUntil time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return fmt.Errorf("send quotation email: empty recipient")
	}
	msg := buildQuotationMessage(s.from, to, customerName, link, validUntil, s.now())
	if err := s.sendMail(s.addr, s.auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send quotation email: %w", err)
	}
	return nil
}

func buildQuotationMessage(from, to, customerName, link string, validUntil, now time.Time) []byte {
	name := strings.TrimSpace(customerName)
	if name == "" {
		name = "there"
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", quotationEmailSubject) + "\r\n")
	b.WriteString("Date: " + now.UTC().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", name)
	b.WriteString("Thank you for sharing your requirements. Your quotation is ready:\r\n\r\n")
	b.WriteString(link + "\r\n\r\n")
	fmt.Fprintf(&b, "The quotation is valid until %s.\r\n\r\n", validUntil.UTC().Format("02 Jan 2006"))
	b.WriteString("Team Warsto\r\n")
	return []byte(b.String())
}

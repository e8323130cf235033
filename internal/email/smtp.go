// internal/email/smtp.go
package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"time"
)

// sendWithSMTP delivers a rendered message over plain SMTP. Community
// deployments without a Sendgrid account point SMTP at the RW's own
// mail relay instead.
func (s *Service) sendWithSMTP(data EmailData, htmlContent, textContent string) error {
	if s.config.Sendgrid.APIKey != "" {
		return s.sendWithSendgrid(data, htmlContent, textContent)
	}

	relay, ok := s.config.SMTP[string(s.provider)]
	if !ok {
		return fmt.Errorf("no SMTP relay configured for provider %s", s.provider)
	}

	msg := buildMultipartMessage(data, htmlContent, textContent)

	auth := smtp.PlainAuth("", relay.Username, relay.Password, relay.Host)
	addr := fmt.Sprintf("%s:%d", relay.Host, relay.Port)
	if err := smtp.SendMail(addr, auth, data.From, []string{data.To}, msg); err != nil {
		return fmt.Errorf("sending email via SMTP: %w", err)
	}
	return nil
}

// buildMultipartMessage assembles a multipart/alternative body with both
// plaintext and HTML parts, base64 encoded so Indonesian characters survive
// older relays.
func buildMultipartMessage(data EmailData, htmlContent, textContent string) []byte {
	boundary := fmt.Sprintf("_RUKUNHUB_BOUNDARY_%d", time.Now().UnixNano())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s <%s>\r\n", data.FromName, data.From)
	fmt.Fprintf(&buf, "To: %s\r\n", data.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", data.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	writePart := func(contentType, body string) {
		fmt.Fprintf(&buf, "--%s\r\n", boundary)
		fmt.Fprintf(&buf, "Content-Type: %s; charset=utf-8\r\n", contentType)
		buf.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
		buf.WriteString(base64.StdEncoding.EncodeToString([]byte(body)))
		buf.WriteString("\r\n\r\n")
	}

	writePart("text/plain", textContent)
	writePart("text/html", htmlContent)
	fmt.Fprintf(&buf, "--%s--", boundary)

	return buf.Bytes()
}

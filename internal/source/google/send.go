package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"google.golang.org/api/gmail/v1"
)

// SendEmail delivers a multipart/alternative message (plain text plus
// HTML) from the authenticated account.
func (s *Source) SendEmail(ctx context.Context, to, subject, textBody, htmlBody string) error {
	raw, err := buildMIMEMessage(to, subject, textBody, htmlBody)
	if err != nil {
		return err
	}
	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString([]byte(raw))}
	if _, err := s.gmail.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("google: send message: %w", err)
	}
	return nil
}

func buildMIMEMessage(to, subject, textBody, htmlBody string) (string, error) {
	var b strings.Builder
	w := multipart.NewWriter(&b)

	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", w.Boundary())

	text, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=UTF-8"}})
	if err != nil {
		return "", fmt.Errorf("google: build text part: %w", err)
	}
	if _, err := text.Write([]byte(textBody)); err != nil {
		return "", err
	}
	if htmlBody != "" {
		html, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=UTF-8"}})
		if err != nil {
			return "", fmt.Errorf("google: build html part: %w", err)
		}
		if _, err := html.Write([]byte(htmlBody)); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}

package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	activationSubject = "Activate your Instamedia account"
	resetSubject      = "Reset your Instamedia password"
)

// Notifier renders account emails and hands them to a Sender. Links point
// at the frontend, which forwards the token to the API.
type Notifier struct {
	sender  Sender
	baseURL string
}

func NewNotifier(sender Sender, frontendURL string) *Notifier {
	return &Notifier{
		sender:  sender,
		baseURL: strings.TrimRight(frontendURL, "/"),
	}
}

// SendActivation mails the account activation link.
func (n *Notifier) SendActivation(ctx context.Context, to, token string) error {
	return n.send(ctx, to, activationSubject, "activation.html", n.link("activate", token))
}

// SendPasswordReset mails the password reset link.
func (n *Notifier) SendPasswordReset(ctx context.Context, to, token string) error {
	return n.send(ctx, to, resetSubject, "reset.html", n.link("reset-password", token))
}

func (n *Notifier) link(route, token string) string {
	return n.baseURL + "/" + route + "/" + url.PathEscape(token)
}

func (n *Notifier) send(ctx context.Context, to, subject, tmpl, link string) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, tmpl, map[string]string{"URL": link}); err != nil {
		return fmt.Errorf("mail: render %s: %w", tmpl, err)
	}
	return n.sender.Send(ctx, Message{
		To:       to,
		Subject:  subject,
		HTMLBody: buf.String(),
	})
}

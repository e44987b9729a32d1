package mailer

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"text/template"
)

const (
	FromName             = "Ruchi Spots"
	maxRetires           = 3
	SpotApprovedTemplate = "spot_approved.tmpl"
	WelcomeTemplate      = "welcome.tmpl"
)

//go:embed "templates"
var FS embed.FS

var ErrTemplateNotFound = errors.New("mail template not found")

type Client interface {
	Send(ctx context.Context, templateFile, username, email string, data any) (int, error)
}

// render executes the "subject", "plainBody" and "htmlBody" blocks of a
// template. htmlBody is optional and goes through html/template so user
// supplied names are escaped.
func render(templateFile string, data any) (subject, plain, html string, err error) {
	name := "templates/" + templateFile

	tmpl, err := template.ParseFS(FS, name)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: %s", ErrTemplateNotFound, templateFile)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "subject", data); err != nil {
		return "", "", "", err
	}
	subject = buf.String()

	buf.Reset()
	if err := tmpl.ExecuteTemplate(&buf, "plainBody", data); err != nil {
		return "", "", "", err
	}
	plain = buf.String()

	if tmpl.Lookup("htmlBody") == nil {
		return subject, plain, "", nil
	}

	htmlTmpl, err := htmltemplate.ParseFS(FS, name)
	if err != nil {
		return "", "", "", err
	}

	buf.Reset()
	if err := htmlTmpl.ExecuteTemplate(&buf, "htmlBody", data); err != nil {
		return "", "", "", err
	}
	html = buf.String()

	return subject, plain, html, nil
}

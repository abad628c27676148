package service

import (
	"bytes"
	"html/template"
)

var (
	confirmationTmpl = template.Must(template.New("confirmation").Parse(`<h1>You're on the list!</h1>
<p>Thanks for your interest. We'll reach out to {{.Email}} as soon as a spot opens up.</p>
<p>In the meantime, try the savings calculator on our site to size up your facility.</p>`))

	teamNotificationTmpl = template.Must(template.New("team").Parse(`<h2>New waitlist signup</h2>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Source}}<p><strong>Source:</strong> {{.Source}}</p>{{end}}
<p><strong>Received:</strong> {{.CreatedAt.Format "2006-01-02 15:04 MST"}}</p>`))
)

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

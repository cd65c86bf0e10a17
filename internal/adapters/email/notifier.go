package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"chapterhub/internal/domain"
)

var notificationHTML = template.Must(template.New("submission").Parse(`<p>New {{.Type}} submission from <strong>{{.Name}}</strong> ({{.Email}}).</p>
{{if .Subject}}<p>Subject: {{.Subject}}</p>{{end}}
{{if .Message}}<p>{{.Message}}</p>{{end}}
{{if .Department}}<p>Department: {{.Department}}, year {{.Year}}</p>{{end}}
{{if .Reason}}<p>{{.Reason}}</p>{{end}}`))

// SubmissionNotifier emails the chapter inbox whenever a form submission
// arrives. A missing notify address disables it.
type SubmissionNotifier struct {
	mailer domain.Mailer
	to     string
}

// NewSubmissionNotifier returns a notifier sending through mailer to the
// given address.
func NewSubmissionNotifier(mailer domain.Mailer, to string) *SubmissionNotifier {
	return &SubmissionNotifier{mailer: mailer, to: to}
}

// Notify sends the notification for one submission.
func (n *SubmissionNotifier) Notify(sub *domain.FormSubmission) error {
	if n.to == "" {
		return nil
	}
	subject := fmt.Sprintf("New %s submission from %s", sub.Type, sub.Name)

	var htmlBuf bytes.Buffer
	if err := notificationHTML.Execute(&htmlBuf, sub); err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "New %s submission from %s (%s).\n", sub.Type, sub.Name, sub.Email)
	if sub.Subject != "" {
		fmt.Fprintf(&text, "Subject: %s\n", sub.Subject)
	}
	if sub.Message != "" {
		fmt.Fprintf(&text, "%s\n", sub.Message)
	}
	if sub.Department != "" {
		fmt.Fprintf(&text, "Department: %s, year %s\n", sub.Department, sub.Year)
	}
	if sub.Reason != "" {
		fmt.Fprintf(&text, "%s\n", sub.Reason)
	}

	if err := n.mailer.Send(n.to, subject, htmlBuf.String(), text.String()); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

package notification

import (
	"bytes"
	"html/template"

	"wingman/internal/errors"
)

// Rendered with html/template so display names and venues are escaped.
var emailTemplates = template.Must(template.New("emails").Parse(`
{{define "match_accepted"}}<p>Hi {{.RecipientName}},</p>
<p>You and {{.PartnerName}} both accepted. Your chat channel is open, so say hello and plan a session.</p>{{end}}
{{define "match_declined"}}<p>Hi {{.RecipientName}},</p>
<p>One of your pending wingman matches has ended. Request a new match whenever you are ready.</p>{{end}}
{{define "session_scheduled"}}<p>Hi {{.RecipientName}},</p>
<p>{{.PartnerName}} scheduled a session at <strong>{{.VenueName}}</strong> on {{.ScheduledTime}}.</p>{{end}}
`))

type emailData struct {
	RecipientName string
	PartnerName   string
	VenueName     string
	ScheduledTime string
}

func renderEmail(name string, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "render %s email", name)
	}

	return buf.String(), nil
}

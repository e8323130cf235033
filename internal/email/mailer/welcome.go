// internal/email/mailer/welcome.go
package mailer

import "github.com/rukunhub/rukunhub/internal/email"

// WelcomeTemplateData contains data for the welcome email template
type WelcomeTemplateData struct {
	FullName  string
	GroupName string
}

// SendWelcomeEmail greets a newly registered community member.
func SendWelcomeEmail(s *email.Service, to, fullName, groupName string) error {
	templateData := WelcomeTemplateData{
		FullName:  fullName,
		GroupName: groupName,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "RukunHub",
		Subject:      "Welcome to your community on RukunHub",
		TemplateName: "welcome",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}

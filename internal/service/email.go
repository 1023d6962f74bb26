package service

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ojonugwa/igala-names/backend/internal/models"
)

// EmailService sends review outcome notifications over SMTP. When SMTP is
// not configured the message is logged instead, so development and tests
// run without a mail relay.
type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func NewEmailService() ReviewNotifier {
	return &EmailService{
		smtpHost:     readSecret("smtp_host"),
		smtpPort:     readSecret("smtp_port"),
		smtpUsername: readSecret("smtp_username"),
		smtpPassword: readSecret("smtp_password"),
		fromEmail:    readSecret("email_from"),
		fromName:     readSecret("email_from_name"),
	}
}

// SendReviewNotification tells the submitter how their name submission was
// settled.
func (s *EmailService) SendReviewNotification(submission *models.NameSubmission, recipientEmail string) error {
	caser := cases.Title(language.English)
	subject := fmt.Sprintf("[Ìgálá Names] Submission %s: %s", caser.String(submission.Status), submission.Name)
	body := s.buildReviewEmailBody(submission)
	return s.SendEmail(recipientEmail, subject, body)
}

func (s *EmailService) buildReviewEmailBody(submission *models.NameSubmission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your submission %q (%s) has been %s.\n\n", submission.Name, submission.Meaning, submission.Status)
	if submission.ReviewerNotes != nil && *submission.ReviewerNotes != "" {
		fmt.Fprintf(&b, "Reviewer notes:\n%s\n\n", *submission.ReviewerNotes)
	}
	if submission.Status == models.StatusAccepted {
		b.WriteString("Thank you for helping preserve Ìgálá heritage. Your name will appear in a future catalog release.\n")
	} else {
		b.WriteString("You are welcome to submit again with more detail.\n")
	}
	return b.String()
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	// If SMTP is not configured, log the email instead
	if s.smtpHost == "" || s.smtpPort == "" {
		log.Printf("SMTP not configured, logging email: to=%s subject=%q", to, subject)
		return nil
	}

	from := s.fromEmail
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	msg := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := s.smtpHost + ":" + s.smtpPort
	var auth smtp.Auth
	if s.smtpUsername != "" {
		auth = smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)
	}

	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

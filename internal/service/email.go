package service

import (
	"context"
	"fmt"

	"arena-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) SendJoinRequestDecision(ctx context.Context, email, name, teamName string, status domain.JoinRequestStatus) error {
	subject := fmt.Sprintf("Your application to %s", teamName)

	var body string
	switch status {
	case domain.JoinRequestStatusAccepted:
		body = fmt.Sprintf("Hello %s,\n\nYour application to join %s has been accepted. Welcome to the team!", name, teamName)
	case domain.JoinRequestStatusRejected:
		body = fmt.Sprintf("Hello %s,\n\nYour application to join %s has been declined.", name, teamName)
	default:
		return fmt.Errorf("no notification defined for status %q", status)
	}
	body += "\n\nBest regards,\nThe Arena Team"

	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

package notifications

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"log/slog"

	"praxis/internal/shared/config"
	"praxis/pkg/logger"
)

// EmailSender delivers the human-facing side of an appointment event.
type EmailSender interface {
	SendAppointmentEmail(ctx context.Context, event *AppointmentEvent, recipient string) error
}

// SMTPEmailSender sends via the configured SMTP relay. When no host is
// configured it degrades to logging the message, which keeps local
// development free of mail setup.
type SMTPEmailSender struct {
	cfg config.EmailConfig
	log *logger.Logger
}

func NewSMTPEmailSender(cfg config.EmailConfig, log *logger.Logger) *SMTPEmailSender {
	return &SMTPEmailSender{cfg: cfg, log: log}
}

func (s *SMTPEmailSender) SendAppointmentEmail(ctx context.Context, event *AppointmentEvent, recipient string) error {
	subject, body := composeAppointmentEmail(event)

	if s.cfg.SMTPHost == "" {
		s.log.Info("email delivery skipped (no SMTP host configured)",
			slog.String("recipient", recipient),
			slog.String("subject", subject),
			slog.String("event_type", string(event.Type)),
		)
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.FromEmail,
		"To: " + recipient,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send appointment email: %w", err)
	}
	return nil
}

func composeAppointmentEmail(event *AppointmentEvent) (string, string) {
	when := event.ScheduledAt.Format("Monday, 2 January 2006 at 15:04")

	switch event.Type {
	case EventAppointmentBooked:
		return "Your appointment is confirmed",
			fmt.Sprintf("Your appointment on %s at %s has been confirmed.", when, event.Location)
	case EventAppointmentCancelled:
		return "Your appointment was cancelled",
			fmt.Sprintf("Your appointment on %s at %s has been cancelled. Please contact the practice to reschedule.", when, event.Location)
	case EventAppointmentCompleted:
		return "Thank you for your visit",
			fmt.Sprintf("Your appointment on %s has been marked as completed.", when)
	default:
		return "Appointment update",
			fmt.Sprintf("There is an update for your appointment on %s at %s.", when, event.Location)
	}
}

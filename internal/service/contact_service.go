package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/validator"
)

// ContactService forwards contact form messages to the site owner.
type ContactService struct {
	mailer    Mailer
	validator *validator.Validator
	to        string
}

// NewContactService creates a new ContactService delivering to the address to.
func NewContactService(mailer Mailer, v *validator.Validator, to string) *ContactService {
	return &ContactService{mailer: mailer, validator: v, to: to}
}

// Send validates and mails a contact message.
func (s *ContactService) Send(ctx context.Context, msg domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)
	if err := s.validator.ValidateContact(&msg); err != nil {
		return err
	}

	if err := s.mailer.SendContact(s.to, msg); err != nil {
		if errors.Is(err, domain.ErrMailDisabled) {
			logger.WarnContext(ctx, "Contact message dropped, SMTP is not configured",
				slog.String("from", msg.Email),
				slog.String("subject", msg.Subject),
			)
			return err
		}
		return fmt.Errorf("send contact message: %w", err)
	}

	logger.InfoContext(ctx, "Contact message sent", slog.String("from", msg.Email))
	return nil
}

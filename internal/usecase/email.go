package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"MarketLens/internal/domain/models"
	"MarketLens/internal/domain/repository"
	"MarketLens/internal/service/mailtemplate"
	"MarketLens/pkg/config"
	xlogger "MarketLens/pkg/logger"
)

// DefaultVerificationExpiryHours is the expiry window stated in verification
// emails.
const DefaultVerificationExpiryHours = 24

// EmailService validates mail configuration, builds message bodies, and
// delegates delivery to the transport. Exactly one send attempt per call.
type EmailService struct {
	cfg       config.MailConfig
	transport repository.MailTransport
	metrics   repository.Metrics
	logger    *xlogger.Logger
}

// NewEmailService creates the dispatcher.
func NewEmailService(
	cfg config.MailConfig,
	transport repository.MailTransport,
	metrics repository.Metrics,
	logger *xlogger.Logger,
) *EmailService {
	return &EmailService{
		cfg:       cfg,
		transport: transport,
		metrics:   metrics,
		logger:    logger,
	}
}

// ConfigComplete reports whether every required mail field is present.
func (s *EmailService) ConfigComplete() bool { return s.cfg.Complete() }

// Readiness exposes the per-field presence map for diagnostics.
func (s *EmailService) Readiness() map[string]bool { return s.cfg.Readiness() }

// Sender returns the configured sender address.
func (s *EmailService) Sender() string { return s.cfg.SenderEmail }

// Dispatch performs one send attempt. Configuration incompleteness fails fast
// before any network I/O and is distinguishable from a transport failure by
// never having invoked the transport.
func (s *EmailService) Dispatch(ctx context.Context, msg *models.MailMessage) models.DispatchResult {
	if msg.To == "" || !strings.Contains(msg.To, "@") {
		return models.DispatchResult{Success: false, Error: "invalid recipient address"}
	}

	if !s.cfg.Complete() {
		s.metrics.RecordError("mail_config")
		return models.DispatchResult{Success: false, Error: "mail configuration incomplete"}
	}

	if err := s.transport.Send(ctx, msg); err != nil {
		s.logger.Error("email dispatch failed",
			xlogger.String("to", msg.To),
			xlogger.String("subject", msg.Subject),
			xlogger.Error(err),
		)
		s.metrics.RecordEmailResult(false)
		return models.DispatchResult{Success: false, Error: err.Error()}
	}

	now := time.Now().UTC()
	s.logger.Info("email dispatched",
		xlogger.String("to", msg.To),
		xlogger.String("subject", msg.Subject),
	)
	s.metrics.RecordEmailResult(true)
	return models.DispatchResult{Success: true, Timestamp: &now}
}

// SendVerification renders the verification template for recipient and
// dispatches it.
func (s *EmailService) SendVerification(ctx context.Context, to, token string) models.DispatchResult {
	verificationURL := fmt.Sprintf("%s/verify-email?token=%s",
		strings.TrimRight(s.cfg.PublicAppURL, "/"), token)

	body, err := mailtemplate.BuildVerificationEmail(models.VerificationParams{
		Email:           to,
		VerificationURL: verificationURL,
		ExpiresInHours:  DefaultVerificationExpiryHours,
	})
	if err != nil {
		s.metrics.RecordError("mail_template")
		return models.DispatchResult{Success: false, Error: err.Error()}
	}

	return s.Dispatch(ctx, &models.MailMessage{
		To:          to,
		Subject:     "Verify your email address",
		Body:        body,
		ContentType: "HTML",
	})
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/archiveone/bookingcore/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// WebhookService reconciles signed provider events into booking, subscription
// and identity state. Deliveries are at-least-once: every transition is
// guarded by the processed-event marker, and replays are acknowledged as
// no-op successes so the provider stops retrying.
type WebhookService struct {
	verifier ports.SignatureVerifier
	events   ports.WebhookEventRepo
	itemRepo ports.ItemRepo
	notifier ports.NotificationDispatcher
	logger   logger.Logger
}

func NewWebhookService(
	verifier ports.SignatureVerifier,
	events ports.WebhookEventRepo,
	itemRepo ports.ItemRepo,
	notifier ports.NotificationDispatcher,
	logger logger.Logger,
) *WebhookService {
	return &WebhookService{
		verifier: verifier,
		events:   events,
		itemRepo: itemRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// providerEvent is the wire envelope. Data.Object is decoded per event kind.
type providerEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type paymentIntentObject struct {
	ID string `json:"id"`
}

type subscriptionObject struct {
	ID               string `json:"id"`
	Customer         string `json:"customer"`
	CurrentPeriodEnd int64  `json:"current_period_end"`
	Metadata         struct {
		UserID string `json:"user_id"`
	} `json:"metadata"`
}

type verificationSessionObject struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Metadata struct {
		UserID string `json:"user_id"`
	} `json:"metadata"`
}

// Process authenticates the raw body, then applies the event. A nil return
// means the delivery must be acknowledged with 200, including no-op replays
// and unmatched payment references. domain.ErrInvalidSignature and
// domain.ErrValidation are the only caller-facing rejections.
func (s *WebhookService) Process(ctx context.Context, body []byte, signatureHeader string) error {
	if err := s.verifier.Verify(body, signatureHeader); err != nil {
		s.logger.Warn("webhook signature verification failed")
		return err
	}

	var event providerEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: malformed event body", domain.ErrValidation)
	}
	if event.ID == "" || event.Type == "" {
		return fmt.Errorf("%w: event id and type are required", domain.ErrValidation)
	}

	switch event.Type {
	case domain.EventPaymentSucceeded:
		return s.applyPaymentSucceeded(ctx, event)
	case domain.EventSubscriptionCreated, domain.EventSubscriptionUpdated, domain.EventSubscriptionDeleted:
		return s.applySubscriptionChange(ctx, event)
	case domain.EventIdentityVerification:
		return s.applyIdentityOutcome(ctx, event)
	default:
		// Незнакомые события подтверждаем без обработки
		s.logger.Debug("unrecognized webhook event acknowledged",
			logger.String("event_id", event.ID),
			logger.String("event_type", event.Type),
		)
		return nil
	}
}

func (s *WebhookService) applyPaymentSucceeded(ctx context.Context, event providerEvent) error {
	var pi paymentIntentObject
	if err := json.Unmarshal(event.Data.Object, &pi); err != nil || pi.ID == "" {
		return fmt.Errorf("%w: malformed payment object", domain.ErrValidation)
	}

	bookings, err := s.events.ApplyPaymentSucceeded(ctx, event.ID, pi.ID)
	switch {
	case errors.Is(err, domain.ErrEventAlreadyProcessed):
		s.logger.Debug("payment event replayed, no-op",
			logger.String("event_id", event.ID),
		)
		return nil
	case errors.Is(err, domain.ErrBookingCancelled):
		// The reservation expired before the payment landed. The rows are
		// flagged paid downstream; refunding is an operator concern.
		s.logger.Warn("payment received for cancelled booking",
			logger.String("event_id", event.ID),
			logger.String("payment_intent_id", pi.ID),
		)
		return nil
	case errors.Is(err, domain.ErrBookingNotFound):
		// Ack anyway: the provider would retry forever for a reference
		// this system can never resolve.
		s.logger.Warn("payment event matched no booking",
			logger.String("event_id", event.ID),
			logger.String("payment_intent_id", pi.ID),
		)
		return nil
	case err != nil:
		return fmt.Errorf("apply payment succeeded: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("event_id", event.ID),
		logger.String("payment_intent_id", pi.ID),
		logger.Int("days", len(bookings)),
	)

	go s.fanOutConfirmation(context.WithoutCancel(ctx), bookings)

	return nil
}

// fanOutConfirmation notifies both parties of a confirmed reservation,
// once each regardless of how many days it spans. The transition is
// already committed; failures here are logged and left to the
// dispatcher's own delivery semantics.
func (s *WebhookService) fanOutConfirmation(ctx context.Context, bookings []*domain.Booking) {
	if len(bookings) == 0 {
		return
	}
	first := bookings[0]

	ids := make([]string, 0, len(bookings))
	dates := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
		dates = append(dates, b.Date.Format(domain.DateLayout))
	}

	payload := map[string]any{
		"booking_ids": ids,
		"dates":       dates,
		"item_id":     first.ItemID,
		"item_type":   string(first.ItemType),
	}

	s.notifier.Enqueue(ctx, first.UserID, domain.NotificationBookingConfirmed, payload)

	item, err := s.itemRepo.GetByID(ctx, first.ItemID, first.ItemType)
	if err != nil {
		s.logger.Error("failed to get item for owner notification",
			logger.String("item_id", first.ItemID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.Enqueue(ctx, item.OwnerID, domain.NotificationBookingReceived, payload)
}

func (s *WebhookService) applySubscriptionChange(ctx context.Context, event providerEvent) error {
	var sub subscriptionObject
	if err := json.Unmarshal(event.Data.Object, &sub); err != nil || sub.Metadata.UserID == "" {
		return fmt.Errorf("%w: malformed subscription object", domain.ErrValidation)
	}
	renewsAt := time.Unix(sub.CurrentPeriodEnd, 0).UTC()

	var err error
	switch event.Type {
	case domain.EventSubscriptionCreated:
		_, err = s.events.ApplySubscriptionCreated(ctx, event.ID, sub.Metadata.UserID, sub.Customer, sub.ID, renewsAt)
	case domain.EventSubscriptionUpdated:
		_, err = s.events.ApplySubscriptionUpdated(ctx, event.ID, sub.Metadata.UserID, renewsAt)
	case domain.EventSubscriptionDeleted:
		_, err = s.events.ApplySubscriptionDeleted(ctx, event.ID, sub.Metadata.UserID)
	}

	switch {
	case errors.Is(err, domain.ErrEventAlreadyProcessed):
		return nil
	case errors.Is(err, domain.ErrUserNotFound):
		s.logger.Warn("subscription event matched no user",
			logger.String("event_id", event.ID),
			logger.String("user_id", sub.Metadata.UserID),
		)
		return nil
	case err != nil:
		return fmt.Errorf("apply %s: %w", event.Type, err)
	}

	s.logger.Info("subscription state applied",
		logger.String("event_id", event.ID),
		logger.String("event_type", event.Type),
		logger.String("user_id", sub.Metadata.UserID),
	)

	return nil
}

// applyIdentityOutcome advances verification only on a verified outcome.
// Every other outcome is still marked processed so replays stay no-ops,
// but the user's status is left untouched.
func (s *WebhookService) applyIdentityOutcome(ctx context.Context, event providerEvent) error {
	var session verificationSessionObject
	if err := json.Unmarshal(event.Data.Object, &session); err != nil || session.Metadata.UserID == "" {
		return fmt.Errorf("%w: malformed verification session object", domain.ErrValidation)
	}

	switch session.Status {
	case domain.IdentityOutcomeVerified:
		_, err := s.events.ApplyIdentityVerified(ctx, event.ID, session.Metadata.UserID)
		switch {
		case errors.Is(err, domain.ErrEventAlreadyProcessed):
			return nil
		case errors.Is(err, domain.ErrUserNotFound):
			s.logger.Warn("identity event matched no user",
				logger.String("event_id", event.ID),
				logger.String("user_id", session.Metadata.UserID),
			)
			return nil
		case err != nil:
			return fmt.Errorf("apply identity verified: %w", err)
		}

		s.logger.Info("user identity verified",
			logger.String("event_id", event.ID),
			logger.String("user_id", session.Metadata.UserID),
		)
		return nil

	case domain.IdentityOutcomeRequiresInput, domain.IdentityOutcomeCanceled:
		s.logger.Info("identity session ended without verification",
			logger.String("event_id", event.ID),
			logger.String("user_id", session.Metadata.UserID),
			logger.String("outcome", session.Status),
		)
	default:
		s.logger.Warn("unknown identity session outcome",
			logger.String("event_id", event.ID),
			logger.String("outcome", session.Status),
		)
	}

	if err := s.events.MarkProcessed(ctx, event.ID, domain.EventIdentityVerification); err != nil {
		if errors.Is(err, domain.ErrEventAlreadyProcessed) {
			return nil
		}
		return fmt.Errorf("mark identity event processed: %w", err)
	}

	return nil
}

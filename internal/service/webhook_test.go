package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/archiveone/bookingcore/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWebhookService(t *testing.T) (*mocks.MockSignatureVerifier, *mocks.MockWebhookEventRepo, *mocks.MockItemRepo, *mocks.MockNotificationDispatcher, *WebhookService) {
	t.Helper()
	verifier := mocks.NewMockSignatureVerifier(t)
	events := mocks.NewMockWebhookEventRepo(t)
	itemRepo := mocks.NewMockItemRepo(t)
	notifier := mocks.NewMockNotificationDispatcher(t)
	log := newTestLogger(t)

	svc := NewWebhookService(verifier, events, itemRepo, notifier, log)
	return verifier, events, itemRepo, notifier, svc
}

func paymentEventBody(eventID, intentID string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":%q,"type":"payment_intent.succeeded","data":{"object":{"id":%q}}}`,
		eventID, intentID,
	))
}

func TestWebhookService_Process_InvalidSignature(t *testing.T) {
	verifier, _, _, _, svc := newWebhookService(t)

	body := paymentEventBody("evt_1", "pi_1")
	verifier.EXPECT().Verify(body, "sha256=bad").Return(domain.ErrInvalidSignature)

	err := svc.Process(context.Background(), body, "sha256=bad")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestWebhookService_Process_MalformedBody(t *testing.T) {
	verifier, _, _, _, svc := newWebhookService(t)

	body := []byte(`{not json`)
	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWebhookService_Process_MissingEventID(t *testing.T) {
	verifier, _, _, _, svc := newWebhookService(t)

	body := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)
	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWebhookService_Process_UnknownEventAcked(t *testing.T) {
	verifier, _, _, _, svc := newWebhookService(t)

	body := []byte(`{"id":"evt_1","type":"charge.refunded","data":{"object":{}}}`)
	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
}

func TestWebhookService_PaymentSucceeded_ConfirmsAndNotifies(t *testing.T) {
	verifier, events, itemRepo, notifier, svc := newWebhookService(t)

	bookings := []*domain.Booking{
		{
			ID:       "b1",
			ItemID:   "i1",
			ItemType: domain.ItemTypeProperty,
			UserID:   "guest",
			Status:   domain.BookingStatusConfirmed,
		},
	}
	item := &domain.Item{ID: "i1", Type: domain.ItemTypeProperty, OwnerID: "owner"}

	body := paymentEventBody("evt_1", "pi_1")
	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().ApplyPaymentSucceeded(mock.Anything, "evt_1", "pi_1").Return(bookings, nil)
	itemRepo.EXPECT().GetByID(mock.Anything, "i1", domain.ItemTypeProperty).Return(item, nil)
	notifier.EXPECT().Enqueue(mock.Anything, "guest", domain.NotificationBookingConfirmed, mock.Anything).Return()
	notifier.EXPECT().Enqueue(mock.Anything, "owner", domain.NotificationBookingReceived, mock.Anything).Return()

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine fan-out
}

func TestWebhookService_PaymentSucceeded_RangeNotifiesOnce(t *testing.T) {
	verifier, events, itemRepo, notifier, svc := newWebhookService(t)

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	bookings := []*domain.Booking{
		{ID: "b1", ItemID: "i1", ItemType: domain.ItemTypeProperty, UserID: "guest", Date: start},
		{ID: "b2", ItemID: "i1", ItemType: domain.ItemTypeProperty, UserID: "guest", Date: start.AddDate(0, 0, 1)},
		{ID: "b3", ItemID: "i1", ItemType: domain.ItemTypeProperty, UserID: "guest", Date: start.AddDate(0, 0, 2)},
	}
	item := &domain.Item{ID: "i1", Type: domain.ItemTypeProperty, OwnerID: "owner"}

	body := paymentEventBody("evt_1", "pi_1")
	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().ApplyPaymentSucceeded(mock.Anything, "evt_1", "pi_1").Return(bookings, nil)
	itemRepo.EXPECT().GetByID(mock.Anything, "i1", domain.ItemTypeProperty).Return(item, nil)

	// one notification per party, not per day
	notifier.EXPECT().Enqueue(mock.Anything, "guest", domain.NotificationBookingConfirmed, mock.Anything).Return().Once()
	notifier.EXPECT().Enqueue(mock.Anything, "owner", domain.NotificationBookingReceived, mock.Anything).Return().Once()

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestWebhookService_PaymentSucceeded_CancelledBookingAcked(t *testing.T) {
	verifier, events, _, _, svc := newWebhookService(t)

	body := paymentEventBody("evt_1", "pi_1")
	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().ApplyPaymentSucceeded(mock.Anything, "evt_1", "pi_1").Return(nil, domain.ErrBookingCancelled)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
}

func TestWebhookService_PaymentSucceeded_ReplayIsNoOp(t *testing.T) {
	verifier, events, _, _, svc := newWebhookService(t)

	body := paymentEventBody("evt_1", "pi_1")
	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().ApplyPaymentSucceeded(mock.Anything, "evt_1", "pi_1").Return(nil, domain.ErrEventAlreadyProcessed)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
}

func TestWebhookService_PaymentSucceeded_UnmatchedReferenceAcked(t *testing.T) {
	verifier, events, _, _, svc := newWebhookService(t)

	body := paymentEventBody("evt_1", "pi_unknown")
	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().ApplyPaymentSucceeded(mock.Anything, "evt_1", "pi_unknown").Return(nil, domain.ErrBookingNotFound)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
}

func TestWebhookService_PaymentSucceeded_RepoError(t *testing.T) {
	verifier, events, _, _, svc := newWebhookService(t)

	body := paymentEventBody("evt_1", "pi_1")
	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().ApplyPaymentSucceeded(mock.Anything, "evt_1", "pi_1").Return(nil, errors.New("db error"))

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.Error(t, err)
}

func TestWebhookService_SubscriptionCreated(t *testing.T) {
	verifier, events, _, _, svc := newWebhookService(t)

	body := []byte(`{"id":"evt_2","type":"customer.subscription.created","data":{"object":{"id":"sub_1","customer":"cus_1","current_period_end":1790000000,"metadata":{"user_id":"u1"}}}}`)
	renewsAt := time.Unix(1790000000, 0).UTC()

	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().ApplySubscriptionCreated(mock.Anything, "evt_2", "u1", "cus_1", "sub_1", renewsAt).
		Return(&domain.User{ID: "u1", SubscriptionTier: domain.TierPro}, nil)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
}

func TestWebhookService_SubscriptionDeleted(t *testing.T) {
	verifier, events, _, _, svc := newWebhookService(t)

	body := []byte(`{"id":"evt_3","type":"customer.subscription.deleted","data":{"object":{"id":"sub_1","metadata":{"user_id":"u1"}}}}`)

	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().ApplySubscriptionDeleted(mock.Anything, "evt_3", "u1").
		Return(&domain.User{ID: "u1", SubscriptionTier: domain.TierFree}, nil)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
}

func TestWebhookService_SubscriptionEvent_MissingUserID(t *testing.T) {
	verifier, _, _, _, svc := newWebhookService(t)

	body := []byte(`{"id":"evt_4","type":"customer.subscription.updated","data":{"object":{"id":"sub_1","metadata":{}}}}`)
	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWebhookService_SubscriptionEvent_UserNotFoundAcked(t *testing.T) {
	verifier, events, _, _, svc := newWebhookService(t)

	body := []byte(`{"id":"evt_5","type":"customer.subscription.deleted","data":{"object":{"id":"sub_1","metadata":{"user_id":"ghost"}}}}`)
	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().ApplySubscriptionDeleted(mock.Anything, "evt_5", "ghost").Return(nil, domain.ErrUserNotFound)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
}

func TestWebhookService_IdentityVerified(t *testing.T) {
	verifier, events, _, _, svc := newWebhookService(t)

	body := []byte(`{"id":"evt_6","type":"identity.verification_session.completed","data":{"object":{"id":"vs_1","status":"verified","metadata":{"user_id":"u1"}}}}`)

	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().ApplyIdentityVerified(mock.Anything, "evt_6", "u1").
		Return(&domain.User{ID: "u1", VerificationStatus: domain.VerificationVerified}, nil)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
}

func TestWebhookService_IdentityRequiresInput_StatusUntouched(t *testing.T) {
	verifier, events, _, _, svc := newWebhookService(t)

	body := []byte(`{"id":"evt_7","type":"identity.verification_session.completed","data":{"object":{"id":"vs_1","status":"requires_input","metadata":{"user_id":"u1"}}}}`)

	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().MarkProcessed(mock.Anything, "evt_7", domain.EventIdentityVerification).Return(nil)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
}

func TestWebhookService_IdentityReplay_NoOp(t *testing.T) {
	verifier, events, _, _, svc := newWebhookService(t)

	body := []byte(`{"id":"evt_8","type":"identity.verification_session.completed","data":{"object":{"id":"vs_1","status":"canceled","metadata":{"user_id":"u1"}}}}`)

	verifier.EXPECT().Verify(body, mock.Anything).Return(nil)
	events.EXPECT().MarkProcessed(mock.Anything, "evt_8", domain.EventIdentityVerification).Return(domain.ErrEventAlreadyProcessed)

	err := svc.Process(context.Background(), body, "sha256=ok")

	require.NoError(t, err)
}

package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/archiveone/bookingcore/internal/domain"
	hmocks "github.com/archiveone/bookingcore/internal/handler/mocks"
	"github.com/archiveone/bookingcore/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
)

func setupWebhookRouter(t *testing.T) (*hmocks.MockWebhookSvc, http.Handler) {
	t.Helper()
	svc := hmocks.NewMockWebhookSvc(t)
	h := NewWebhookHandler(svc)

	r := ginext.New("test")
	r.POST("/webhooks/provider", h.HandleProviderEvent)

	return svc, r
}

func TestWebhookHandler_ValidEvent(t *testing.T) {
	svc, r := setupWebhookRouter(t)

	body := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)
	svc.EXPECT().Process(mock.Anything, body, "sha256=abc").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/provider", bytes.NewReader(body))
	req.Header.Set(webhook.SignatureHeader, "sha256=abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestWebhookHandler_InvalidSignature(t *testing.T) {
	svc, r := setupWebhookRouter(t)

	body := []byte(`{"id":"evt_1"}`)
	svc.EXPECT().Process(mock.Anything, body, "sha256=bad").Return(domain.ErrInvalidSignature)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/provider", bytes.NewReader(body))
	req.Header.Set(webhook.SignatureHeader, "sha256=bad")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookHandler_MalformedEvent(t *testing.T) {
	svc, r := setupWebhookRouter(t)

	body := []byte(`{not json`)
	svc.EXPECT().Process(mock.Anything, body, mock.Anything).Return(domain.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/provider", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookHandler_TransientFailureRetriable(t *testing.T) {
	svc, r := setupWebhookRouter(t)

	body := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)
	svc.EXPECT().Process(mock.Anything, body, mock.Anything).Return(assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/provider", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

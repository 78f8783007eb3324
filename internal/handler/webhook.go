package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/archiveone/bookingcore/internal/webhook"
	"github.com/wb-go/wbf/ginext"
)

type WebhookSvc interface {
	Process(ctx context.Context, body []byte, signatureHeader string) error
}

// WebhookHandler is the inbound edge for provider events. Responses carry
// a status code only: providers do not parse bodies, they only decide
// whether to retry.
type WebhookHandler struct {
	service WebhookSvc
}

func NewWebhookHandler(service WebhookSvc) *WebhookHandler {
	return &WebhookHandler{service: service}
}

func (h *WebhookHandler) HandleProviderEvent(c *ginext.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err = h.service.Process(c.Request.Context(), body, c.Request.Header.Get(webhook.SignatureHeader))
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrValidation):
		c.Status(http.StatusBadRequest)
	default:
		// 5xx keeps the provider retrying; idempotency markers make the
		// retry safe.
		c.Set("error", err.Error())
		c.Status(http.StatusInternalServerError)
	}
}

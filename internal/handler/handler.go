package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/archiveone/bookingcore/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type AvailabilitySvc interface {
	Project(ctx context.Context, itemID, itemType string, start, end time.Time, guests int) (*domain.AvailabilityProjection, error)
}

type BookingSvc interface {
	Reserve(ctx context.Context, input domain.ReserveInput) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type CommissionSvc interface {
	Create(ctx context.Context, input domain.CreateCommissionInput) (*domain.Commission, error)
}

type ItemSvc interface {
	Create(ctx context.Context, input domain.CreateItemInput) (*domain.Item, error)
	Get(ctx context.Context, id, itemType string) (*domain.Item, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
}

type Handler struct {
	availabilityService AvailabilitySvc
	bookingService      BookingSvc
	commissionService   CommissionSvc
	itemService         ItemSvc
	userService         UserSvc
}

func NewHandler(
	availabilityService AvailabilitySvc,
	bookingService BookingSvc,
	commissionService CommissionSvc,
	itemService ItemSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		availabilityService: availabilityService,
		bookingService:      bookingService,
		commissionService:   commissionService,
		itemService:         itemService,
		userService:         userService,
	}
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	itemID := c.Param("id")
	if _, err := uuid.Parse(itemID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid item id"})
		return
	}
	itemType := c.Param("type")

	q := c.Request.URL.Query()
	start, err := time.Parse(domain.DateLayout, q.Get("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date, expected YYYY-MM-DD",
		})
		return
	}
	end, err := time.Parse(domain.DateLayout, q.Get("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_date, expected YYYY-MM-DD",
		})
		return
	}

	guests := 0
	if raw := q.Get("guests"); raw != "" {
		if guests, err = strconv.Atoi(raw); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guests"})
			return
		}
	}

	projection, err := h.availabilityService.Project(c.Request.Context(), itemID, itemType, start, end, guests)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(projection))
}

// Bookings

func (h *Handler) Reserve(c *ginext.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date, expected YYYY-MM-DD",
		})
		return
	}

	var end time.Time
	if req.EndDate != "" {
		if end, err = time.Parse(domain.DateLayout, req.EndDate); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid end_date, expected YYYY-MM-DD",
			})
			return
		}
	}

	input := domain.ReserveInput{
		ItemID:          req.ItemID,
		ItemType:        req.ItemType,
		StartDate:       start,
		EndDate:         end,
		Guests:          req.Guests,
		UserID:          req.UserID,
		PaymentIntentID: req.PaymentIntentID,
	}

	bookings, err := h.bookingService.Reserve(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Commissions

func (h *Handler) CreateCommission(c *ginext.Context) {
	var req dto.CreateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateCommissionInput{
		PropertyID: req.PropertyID,
		AgentID:    req.AgentID,
		SaleAmount: req.SaleAmount,
	}

	commission, err := h.commissionService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommissionResponse(commission))
}

// Items

func (h *Handler) CreateItem(c *ginext.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateItemInput{
		Type:        req.Type,
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		MaxGuests:   req.MaxGuests,
		Price:       req.Price,
		Currency:    req.Currency,
		CleaningFee: req.CleaningFee,
	}

	item, err := h.itemService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *Handler) GetItem(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid item id"})
		return
	}

	item, err := h.itemService.Get(c.Request.Context(), id, c.Param("type"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		IsAgent:  req.IsAgent,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoCapacity),
		errors.Is(err, domain.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAgentNotVerified):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

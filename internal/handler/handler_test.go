package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/archiveone/bookingcore/internal/handler/dto"
	hmocks "github.com/archiveone/bookingcore/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type handlerMocks struct {
	availability *hmocks.MockAvailabilitySvc
	booking      *hmocks.MockBookingSvc
	commission   *hmocks.MockCommissionSvc
	item         *hmocks.MockItemSvc
	user         *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		availability: hmocks.NewMockAvailabilitySvc(t),
		booking:      hmocks.NewMockBookingSvc(t),
		commission:   hmocks.NewMockCommissionSvc(t),
		item:         hmocks.NewMockItemSvc(t),
		user:         hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.availability, m.booking, m.commission, m.item, m.user)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/items", h.CreateItem)
		api.GET("/items/:type/:id", h.GetItem)
		api.GET("/items/:type/:id/availability", h.GetAvailability)
		api.POST("/bookings", h.Reserve)
		api.POST("/commissions", h.CreateCommission)
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	return m, r
}

// --- Availability ---

func TestHandler_GetAvailability_Success(t *testing.T) {
	m, r := setupRouter(t)

	itemID := uuid.New().String()
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC)

	projection := &domain.AvailabilityProjection{
		Available: true,
		Slots: []domain.DaySlot{
			{Date: start, Available: true, MaxGuests: 2, Price: 10000, Currency: "EUR"},
			{Date: start.AddDate(0, 0, 1), Available: false, MaxGuests: 2, BookedGuests: 2, Price: 10000, Currency: "EUR"},
			{Date: end, Available: true, MaxGuests: 2, Price: 10000, Currency: "EUR"},
		},
		Pricing: domain.Pricing{
			BasePrice: 10000,
			Currency:  "EUR",
			AdditionalFees: []domain.PriceLine{
				{Name: "cleaning_fee", Amount: 5000},
				{Name: "service_fee", Amount: 1000},
			},
		},
	}

	m.availability.EXPECT().Project(mock.Anything, itemID, "property", start, end, 2).Return(projection, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/items/property/"+itemID+"/availability?start_date=2026-07-01&end_date=2026-07-03&guests=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, "2026-07-02", resp.Slots[1].Date)
	assert.False(t, resp.Slots[1].Available)
	assert.Equal(t, 2, resp.Slots[1].CurrentBookings)
	require.Len(t, resp.Pricing.AdditionalFees, 2)
	assert.Equal(t, int64(1000), resp.Pricing.AdditionalFees[1].Amount)
}

func TestHandler_GetAvailability_InvalidItemID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/items/property/not-a-uuid/availability?start_date=2026-07-01&end_date=2026-07-03", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAvailability_MissingDates(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/items/property/"+uuid.New().String()+"/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAvailability_ItemNotFound(t *testing.T) {
	m, r := setupRouter(t)

	itemID := uuid.New().String()
	m.availability.EXPECT().Project(mock.Anything, itemID, "property", mock.Anything, mock.Anything, 0).
		Return(nil, domain.ErrItemNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/items/property/"+itemID+"/availability?start_date=2026-07-01&end_date=2026-07-03", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_Reserve_Success(t *testing.T) {
	m, r := setupRouter(t)

	itemID := uuid.New().String()
	userID := uuid.New().String()
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{
			ID:            uuid.New().String(),
			ItemID:        itemID,
			ItemType:      domain.ItemTypeProperty,
			Date:          start,
			Guests:        2,
			Status:        domain.BookingStatusPending,
			PaymentStatus: domain.PaymentStatusUnpaid,
			UserID:        userID,
			CreatedAt:     time.Now(),
		},
	}

	m.booking.EXPECT().Reserve(mock.Anything, mock.Anything).Return(bookings, nil)

	body, _ := json.Marshal(dto.ReserveRequest{
		ItemID:    itemID,
		ItemType:  "property",
		StartDate: "2026-07-01",
		Guests:    2,
		UserID:    userID,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "pending", resp[0].Status)
	assert.Equal(t, "2026-07-01", resp[0].Date)
}

func TestHandler_Reserve_CarriesPaymentReference(t *testing.T) {
	m, r := setupRouter(t)

	itemID := uuid.New().String()
	userID := uuid.New().String()
	intentID := "pi_12345"

	var got domain.ReserveInput
	m.booking.EXPECT().Reserve(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, input domain.ReserveInput) {
			got = input
		}).
		Return([]*domain.Booking{
			{ID: uuid.New().String(), ItemID: itemID, UserID: userID, PaymentIntentID: &intentID, CreatedAt: time.Now()},
		}, nil)

	body, _ := json.Marshal(dto.ReserveRequest{
		ItemID:          itemID,
		ItemType:        "property",
		StartDate:       "2026-07-01",
		Guests:          2,
		UserID:          userID,
		PaymentIntentID: &intentID,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, got.PaymentIntentID)
	assert.Equal(t, "pi_12345", *got.PaymentIntentID)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].PaymentIntentID)
	assert.Equal(t, "pi_12345", *resp[0].PaymentIntentID)
}

func TestHandler_Reserve_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	body, _ := json.Marshal(dto.ReserveRequest{
		ItemID:    uuid.New().String(),
		ItemType:  "property",
		StartDate: "01.07.2026",
		Guests:    2,
		UserID:    uuid.New().String(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Reserve_NoCapacity(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, domain.ErrNoCapacity)

	body, _ := json.Marshal(dto.ReserveRequest{
		ItemID:    uuid.New().String(),
		ItemType:  "property",
		StartDate: "2026-07-01",
		Guests:    4,
		UserID:    uuid.New().String(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Reserve_AlreadyBooked(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, domain.ErrAlreadyBooked)

	body, _ := json.Marshal(dto.ReserveRequest{
		ItemID:    uuid.New().String(),
		ItemType:  "property",
		StartDate: "2026-07-01",
		Guests:    1,
		UserID:    uuid.New().String(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: "b1", ItemID: "i1", UserID: userID, Status: domain.BookingStatusConfirmed, CreatedAt: time.Now()},
	}
	m.booking.EXPECT().ListByUser(mock.Anything, userID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserBookings_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/bad-id/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Commissions ---

func TestHandler_CreateCommission_Success(t *testing.T) {
	m, r := setupRouter(t)

	propertyID := uuid.New().String()
	agentID := uuid.New().String()

	commission := &domain.Commission{
		ID:              uuid.New().String(),
		PropertyID:      propertyID,
		AgentID:         agentID,
		SaleAmount:      100000,
		TotalCommission: 3000,
		PlatformFee:     150,
		AgentCommission: 2850,
		Status:          domain.CommissionStatusPending,
		CreatedAt:       time.Now(),
	}

	m.commission.EXPECT().Create(mock.Anything, mock.Anything).Return(commission, nil)

	body, _ := json.Marshal(dto.CreateCommissionRequest{
		PropertyID: propertyID,
		AgentID:    agentID,
		SaleAmount: 100000,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/commissions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CommissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3000), resp.TotalCommission)
	assert.Equal(t, int64(150), resp.PlatformFee)
	assert.Equal(t, int64(2850), resp.AgentCommission)
}

func TestHandler_CreateCommission_AgentNotVerified(t *testing.T) {
	m, r := setupRouter(t)

	m.commission.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrAgentNotVerified)

	body, _ := json.Marshal(dto.CreateCommissionRequest{
		PropertyID: uuid.New().String(),
		AgentID:    uuid.New().String(),
		SaleAmount: 100000,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/commissions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateCommission_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"property_id":"not-a-uuid","agent_id":"x","sale_amount":-1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/commissions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Items ---

func TestHandler_CreateItem_Success(t *testing.T) {
	m, r := setupRouter(t)

	ownerID := uuid.New().String()
	item := &domain.Item{
		ID:        uuid.New().String(),
		Type:      domain.ItemTypeProperty,
		OwnerID:   ownerID,
		Title:     "Seaside flat",
		MaxGuests: 4,
		Price:     10000,
		Currency:  "EUR",
		CreatedAt: time.Now(),
	}

	m.item.EXPECT().Create(mock.Anything, mock.Anything).Return(item, nil)

	body, _ := json.Marshal(dto.CreateItemRequest{
		Type:      "property",
		OwnerID:   ownerID,
		Title:     "Seaside flat",
		MaxGuests: 4,
		Price:     10000,
		Currency:  "EUR",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Seaside flat", resp.Title)
}

func TestHandler_GetItem_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	itemID := uuid.New().String()
	m.item.EXPECT().Get(mock.Anything, itemID, "property").Return(nil, domain.ErrItemNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/items/property/"+itemID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:                 uuid.New().String(),
		Username:           "alice",
		Email:              "alice@example.com",
		SubscriptionTier:   domain.TierFree,
		VerificationStatus: domain.VerificationPending,
		CreatedAt:          time.Now(),
	}
	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice", Email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "FREE", resp.SubscriptionTier)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "taken", Email: "taken@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.booking.EXPECT().ListByUser(mock.Anything, userID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/archiveone/bookingcore/internal/service/ports"
	"github.com/google/uuid"
)

type ItemService struct {
	repo ports.ItemRepo
}

func NewItemService(repo ports.ItemRepo) *ItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) Create(ctx context.Context, input domain.CreateItemInput) (*domain.Item, error) {
	typ := domain.ItemType(input.Type)
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: unsupported item type %q", domain.ErrValidation, input.Type)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner_id is required", domain.ErrValidation)
	}
	if input.MaxGuests < 1 {
		return nil, fmt.Errorf("%w: max_guests must be positive", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if len(input.Currency) != 3 {
		return nil, fmt.Errorf("%w: currency must be an ISO 4217 code", domain.ErrValidation)
	}
	if input.CleaningFee != nil && typ != domain.ItemTypeProperty {
		return nil, fmt.Errorf("%w: cleaning_fee is only valid for properties", domain.ErrValidation)
	}

	now := time.Now().UTC()
	item := &domain.Item{
		ID:          uuid.New().String(),
		Type:        typ,
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		MaxGuests:   input.MaxGuests,
		Price:       input.Price,
		Currency:    input.Currency,
		CleaningFee: input.CleaningFee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

func (s *ItemService) Get(ctx context.Context, id, itemType string) (*domain.Item, error) {
	typ := domain.ItemType(itemType)
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: unsupported item type %q", domain.ErrValidation, itemType)
	}

	return s.repo.GetByID(ctx, id, typ)
}

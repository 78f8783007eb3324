package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ItemRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewItemRepo(db *dbpg.DB) *ItemRepository {
	return &ItemRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (id, item_type, owner_id, title, max_guests, price, currency, cleaning_fee, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		item.ID, item.Type, item.OwnerID, item.Title,
		item.MaxGuests, item.Price, item.Currency, item.CleaningFee, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string, itemType domain.ItemType) (*domain.Item, error) {
	query := `SELECT id, item_type, owner_id, title, max_guests, price, currency, cleaning_fee, created_at, updated_at
			  FROM items
			  WHERE id=$1 AND item_type=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, itemType)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	var item domain.Item
	if err = row.Scan(
		&item.ID, &item.Type, &item.OwnerID, &item.Title, &item.MaxGuests,
		&item.Price, &item.Currency, &item.CleaningFee, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	return &item, nil
}

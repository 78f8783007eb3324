package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, email, is_agent, subscription_tier, verification_status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Username, user.Email, user.IsAgent,
		user.SubscriptionTier, user.VerificationStatus, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, username, email, is_agent, subscription_tier, customer_id, subscription_id, subscription_renews_at, verification_status, created_at, updated_at
			  FROM users
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(
		&u.ID, &u.Username, &u.Email, &u.IsAgent, &u.SubscriptionTier,
		&u.CustomerID, &u.SubscriptionID, &u.SubscriptionRenewsAt,
		&u.VerificationStatus, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

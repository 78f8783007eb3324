package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CommissionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCommissionRepo(db *dbpg.DB) *CommissionRepository {
	return &CommissionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CommissionRepository) Create(ctx context.Context, c *domain.Commission) error {
	query := `INSERT INTO commissions (id, property_id, agent_id, sale_amount, total_commission, platform_fee, agent_commission, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.PropertyID, c.AgentID, c.SaleAmount,
		c.TotalCommission, c.PlatformFee, c.AgentCommission,
		c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert commission: %w", err)
	}

	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/archiveone/bookingcore/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type CommissionService struct {
	commissionRepo ports.CommissionRepo
	itemRepo       ports.ItemRepo
	userRepo       ports.UserRepo
	notifier       ports.NotificationDispatcher
	logger         logger.Logger
}

func NewCommissionService(
	commissionRepo ports.CommissionRepo,
	itemRepo ports.ItemRepo,
	userRepo ports.UserRepo,
	notifier ports.NotificationDispatcher,
	logger logger.Logger,
) *CommissionService {
	return &CommissionService{
		commissionRepo: commissionRepo,
		itemRepo:       itemRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// Create records the fee split for one sale: split computation is pure
// (domain.ComputeCommission), the record lands with status pending, and
// the agent gets one notification. There is no built-in dedup key, so the
// caller must guard against duplicate submission.
func (s *CommissionService) Create(ctx context.Context, input domain.CreateCommissionInput) (*domain.Commission, error) {
	if input.PropertyID == "" || input.AgentID == "" {
		return nil, fmt.Errorf("%w: property_id and agent_id are required", domain.ErrValidation)
	}
	if input.SaleAmount <= 0 {
		return nil, fmt.Errorf("%w: sale_amount must be positive", domain.ErrValidation)
	}

	property, err := s.itemRepo.GetByID(ctx, input.PropertyID, domain.ItemTypeProperty)
	if err != nil {
		return nil, fmt.Errorf("check property: %w", err)
	}

	agent, err := s.userRepo.GetByID(ctx, input.AgentID)
	if err != nil {
		return nil, fmt.Errorf("check agent: %w", err)
	}
	if !agent.IsAgent || agent.VerificationStatus != domain.VerificationVerified {
		return nil, domain.ErrAgentNotVerified
	}

	split := domain.ComputeCommission(input.SaleAmount)
	now := time.Now().UTC()
	commission := &domain.Commission{
		ID:              uuid.New().String(),
		PropertyID:      property.ID,
		AgentID:         agent.ID,
		SaleAmount:      input.SaleAmount,
		TotalCommission: split.TotalCommission,
		PlatformFee:     split.PlatformFee,
		AgentCommission: split.AgentCommission,
		Status:          domain.CommissionStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.commissionRepo.Create(ctx, commission); err != nil {
		return nil, fmt.Errorf("create commission: %w", err)
	}

	s.logger.Info("commission recorded",
		logger.String("commission_id", commission.ID),
		logger.String("property_id", property.ID),
		logger.String("agent_id", agent.ID),
		logger.Int64("sale_amount", input.SaleAmount),
	)

	go s.notifier.Enqueue(context.WithoutCancel(ctx), agent.ID, domain.NotificationCommissionEarned, map[string]any{
		"commission_id":    commission.ID,
		"property_id":      property.ID,
		"agent_commission": commission.AgentCommission,
	})

	return commission, nil
}

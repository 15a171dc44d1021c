package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

// RefundConfigRequest carries one full generation of refund rates.
// Configuration is always replaced wholesale, never patched.
type RefundConfigRequest struct {
	CompanyRate  decimal.Decimal `json:"company_rate"`
	PersonalRate decimal.Decimal `json:"personal_rate"`
	LandRate     decimal.Decimal `json:"land_rate"`
	PropertyRate decimal.Decimal `json:"property_rate"`
	OtherRate    decimal.Decimal `json:"other_rate"`
	TotalRate    decimal.Decimal `json:"total_rate"`
}

// --- Interface ---

type RefundConfigService interface {
	// GetActiveRates returns the active generation as a name -> rate map.
	GetActiveRates(ctx context.Context) (map[string]decimal.Decimal, error)
	// List returns every generation, newest first, for the audit view.
	List(ctx context.Context) ([]model.TaxRefundConfig, error)
	// ReplaceAll atomically swaps the active generation for the given rates.
	ReplaceAll(ctx context.Context, req RefundConfigRequest, userID string) error
}

type refundConfigService struct {
	repo   repository.RefundConfigRepository
	txMgr  repository.TransactionManager
	opLogs repository.OperationLogRepository
}

// NewRefundConfigService returns a new instance of RefundConfigService
func NewRefundConfigService(repo repository.RefundConfigRepository, txMgr repository.TransactionManager, opLogs repository.OperationLogRepository) RefundConfigService {
	return &refundConfigService{repo: repo, txMgr: txMgr, opLogs: opLogs}
}

// --- Implementation ---

func (s *refundConfigService) GetActiveRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	configs, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active refund configs: %w", err)
	}

	rates := make(map[string]decimal.Decimal, len(configs))
	for _, c := range configs {
		rates[c.Name] = c.Rate
	}
	return rates, nil
}

func (s *refundConfigService) List(ctx context.Context) ([]model.TaxRefundConfig, error) {
	configs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list refund configs: %w", err)
	}
	return configs, nil
}

func (s *refundConfigService) ReplaceAll(ctx context.Context, req RefundConfigRequest, userID string) error {
	named := []struct {
		name string
		rate decimal.Decimal
	}{
		{model.ConfigNameCorporate, req.CompanyRate},
		{model.ConfigNamePersonal, req.PersonalRate},
		{model.ConfigNameLandUse, req.LandRate},
		{model.ConfigNameProperty, req.PropertyRate},
		{model.ConfigNameOther, req.OtherRate},
		{model.ConfigNameTotal, req.TotalRate},
	}

	var invalid []string
	hundred := decimal.NewFromInt(100)
	for _, n := range named {
		if n.rate.IsNegative() || n.rate.GreaterThan(hundred) {
			invalid = append(invalid, n.name)
		}
	}
	if len(invalid) > 0 {
		return &ValidationError{Fields: invalid}
	}

	configs := make([]model.TaxRefundConfig, 0, len(named))
	for _, n := range named {
		configs = append(configs, model.TaxRefundConfig{
			Name:     n.name,
			Rate:     n.rate,
			IsActive: true,
		})
	}

	// Deactivation and insertion must land together: a failure partway
	// would otherwise leave a window with no active generation.
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.DeactivateAll(txCtx); err != nil {
			return err
		}
		return s.repo.CreateBatch(txCtx, configs)
	})
	if err != nil {
		return fmt.Errorf("failed to replace refund configs: %w", err)
	}

	s.writeOpLog(ctx, userID, fmt.Sprintf("更新返税配置 总计 %s%%", req.TotalRate))

	return nil
}

func (s *refundConfigService) writeOpLog(ctx context.Context, userID, description string) {
	entry := &model.OperationLog{
		Action:      model.ActionUpdate,
		Module:      model.ModuleRefundConfig,
		Description: description,
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		entry.UserID = &parsed
	}
	_ = s.opLogs.Create(ctx, entry)
}

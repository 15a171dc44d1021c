package service

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

// RefundTaxRecordInput is one tax record consumed by a refund
// calculation. The caller pre-filters to paid, not-yet-refunded records
// of a single enterprise and period; homogeneity is not re-verified here.
type RefundTaxRecordInput struct {
	ID            uuid.UUID       `json:"id"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TaxType       string          `json:"tax_type"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
}

type CalculateRefundRequest struct {
	EnterpriseID string                 `json:"enterprise_id" binding:"required"`
	TaxRecords   []RefundTaxRecordInput `json:"tax_records" binding:"required"`
}

type UpdateRefundStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- Interface ---

type RefundService interface {
	Calculate(ctx context.Context, req CalculateRefundRequest, userID string) (*model.TaxRefund, error)
	List(ctx context.Context, query repository.TaxRefundListQuery) ([]model.TaxRefund, error)
	UpdateStatus(ctx context.Context, id string, req UpdateRefundStatusRequest, userID string) error
}

type refundService struct {
	refunds    repository.TaxRefundRepository
	records    repository.TaxRecordRepository
	configs    RefundConfigService
	enterprise repository.EnterpriseRepository
	txMgr      repository.TransactionManager
	opLogs     repository.OperationLogRepository
	hub        *websocket.Hub
}

// NewRefundService returns a new instance of RefundService
func NewRefundService(
	refunds repository.TaxRefundRepository,
	records repository.TaxRecordRepository,
	configs RefundConfigService,
	enterprise repository.EnterpriseRepository,
	txMgr repository.TransactionManager,
	opLogs repository.OperationLogRepository,
	hub *websocket.Hub,
) RefundService {
	return &refundService{
		refunds:    refunds,
		records:    records,
		configs:    configs,
		enterprise: enterprise,
		txMgr:      txMgr,
		opLogs:     opLogs,
		hub:        hub,
	}
}

// --- Implementation ---

// Calculate converts a batch of paid, unlinked tax records for one
// enterprise into exactly one TaxRefund. Each record's tax amount is
// priced with the active rate of its category; tax types outside the four
// named categories are priced at the 其他税费 rate.
func (s *refundService) Calculate(ctx context.Context, req CalculateRefundRequest, userID string) (*model.TaxRefund, error) {
	if len(req.TaxRecords) == 0 {
		return nil, &ValidationError{Fields: []string{"tax_records"}}
	}
	entID, err := uuid.Parse(req.EnterpriseID)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"enterprise_id"}}
	}

	enterprise, err := s.enterprise.GetByID(ctx, req.EnterpriseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch enterprise: %w", err)
	}

	rates, err := s.configs.GetActiveRates(ctx)
	if err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		return nil, ErrNoActiveConfig
	}

	hundred := decimal.NewFromInt(100)
	var (
		totalTaxAmount  decimal.Decimal
		totalBaseAmount decimal.Decimal
		personalAmount  decimal.Decimal
		companyAmount   decimal.Decimal
		landAmount      decimal.Decimal
		propertyAmount  decimal.Decimal
		otherAmount     decimal.Decimal
	)

	recordIDs := make([]uuid.UUID, 0, len(req.TaxRecords))
	for _, record := range req.TaxRecords {
		totalTaxAmount = totalTaxAmount.Add(record.TaxAmount)
		totalBaseAmount = totalBaseAmount.Add(record.TaxableIncome)

		switch record.TaxType {
		case model.TaxTypePersonalIncome:
			personalAmount = personalAmount.Add(record.TaxAmount.Mul(rates[model.ConfigNamePersonal]).Div(hundred))
		case model.TaxTypeCorporateIncome:
			companyAmount = companyAmount.Add(record.TaxAmount.Mul(rates[model.ConfigNameCorporate]).Div(hundred))
		case model.TaxTypeLandUse:
			landAmount = landAmount.Add(record.TaxAmount.Mul(rates[model.ConfigNameLandUse]).Div(hundred))
		case model.TaxTypeProperty:
			propertyAmount = propertyAmount.Add(record.TaxAmount.Mul(rates[model.ConfigNameProperty]).Div(hundred))
		default:
			otherAmount = otherAmount.Add(record.TaxAmount.Mul(rates[model.ConfigNameOther]).Div(hundred))
		}

		if record.ID != uuid.Nil {
			recordIDs = append(recordIDs, record.ID)
		}
	}

	totalRefundAmount := personalAmount.Add(companyAmount).Add(landAmount).Add(propertyAmount).Add(otherAmount)

	first := req.TaxRecords[0]
	refund := &model.TaxRefund{
		EnterpriseID:   entID,
		TaxNumber:      enterprise.UnifiedSocialCode,
		TaxPeriod:      fmt.Sprintf("%04d-%02d", first.Year, first.Month),
		TaxAmount:      totalTaxAmount,
		BaseAmount:     totalBaseAmount,
		RefundRate:     rates[model.ConfigNameTotal],
		RefundAmount:   totalRefundAmount,
		PersonalAmount: personalAmount,
		CompanyAmount:  companyAmount,
		LandAmount:     landAmount,
		PropertyAmount: propertyAmount,
		OtherAmount:    otherAmount,
		TotalAmount:    totalRefundAmount,
		Status:         model.RefundStatusPending,
	}

	// Insert and back-link inside one transaction so consumed records stop
	// showing up as unprocessed the moment the refund exists. The unique
	// (enterprise, period) index backstops the duplicate check under
	// concurrent calls.
	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.refunds.List(txCtx, repository.TaxRefundListQuery{
			StartPeriod: refund.TaxPeriod,
			EndPeriod:   refund.TaxPeriod,
		})
		if err != nil {
			return err
		}
		for _, e := range existing {
			if e.EnterpriseID == entID {
				return ErrDuplicateRefundPeriod
			}
		}

		if err := s.refunds.Create(txCtx, refund); err != nil {
			return err
		}
		return s.records.LinkToRefund(txCtx, recordIDs, refund.ID)
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateRefundPeriod) {
			return nil, ErrDuplicateRefundPeriod
		}
		return nil, fmt.Errorf("failed to create tax refund: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionCreate,
		fmt.Sprintf("计算返税 %s %s 金额 %s", enterprise.Name, refund.TaxPeriod, refund.TotalAmount))
	s.hub.BroadcastEvent(websocket.EventRefundCreated, refund)

	return refund, nil
}

func (s *refundService) List(ctx context.Context, query repository.TaxRefundListQuery) ([]model.TaxRefund, error) {
	refunds, err := s.refunds.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax refunds: %w", err)
	}
	return refunds, nil
}

func (s *refundService) UpdateStatus(ctx context.Context, id string, req UpdateRefundStatusRequest, userID string) error {
	switch req.Status {
	case model.RefundStatusPending, model.RefundStatusProcessing, model.RefundStatusDone:
	default:
		return &ValidationError{Fields: []string{"status"}}
	}

	if err := s.refunds.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update refund status: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionUpdate, fmt.Sprintf("返税记录 %s 状态变更为 %s", id, req.Status))

	return nil
}

func (s *refundService) writeOpLog(ctx context.Context, userID, action, description string) {
	entry := &model.OperationLog{
		Action:      action,
		Module:      model.ModuleTaxRefund,
		Description: description,
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		entry.UserID = &parsed
	}
	_ = s.opLogs.Create(ctx, entry)
}

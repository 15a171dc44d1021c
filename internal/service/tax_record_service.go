package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type TaxRecordRequest struct {
	Year          int             `json:"year" binding:"required"`
	Month         int             `json:"month" binding:"required"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	TaxType       string          `json:"tax_type"`
	PaymentStatus string          `json:"payment_status"`
	DueDate       string          `json:"due_date"` // YYYY-MM-DD
	PaymentDate   string          `json:"payment_date"`
	Remarks       *string         `json:"remarks"`
}

// --- Interface ---

type TaxRecordService interface {
	List(ctx context.Context, enterpriseID string) ([]model.TaxRecord, error)
	Get(ctx context.Context, enterpriseID, recordID string) (*model.TaxRecord, error)
	Create(ctx context.Context, enterpriseID string, req TaxRecordRequest, userID string) (*model.TaxRecord, error)
	Update(ctx context.Context, enterpriseID, recordID string, req TaxRecordRequest, userID string) (*model.TaxRecord, error)
	Delete(ctx context.Context, enterpriseID, recordID string, userID string) (*model.TaxRecord, error)
	ListUnprocessed(ctx context.Context) ([]model.TaxRecord, error)
}

type taxRecordService struct {
	repo   repository.TaxRecordRepository
	opLogs repository.OperationLogRepository
	hub    *websocket.Hub
}

// NewTaxRecordService returns a new instance of TaxRecordService
func NewTaxRecordService(repo repository.TaxRecordRepository, opLogs repository.OperationLogRepository, hub *websocket.Hub) TaxRecordService {
	return &taxRecordService{repo: repo, opLogs: opLogs, hub: hub}
}

// --- Implementation ---

func (s *taxRecordService) List(ctx context.Context, enterpriseID string) ([]model.TaxRecord, error) {
	records, err := s.repo.ListByEnterprise(ctx, enterpriseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax records: %w", err)
	}
	return records, nil
}

func (s *taxRecordService) Get(ctx context.Context, enterpriseID, recordID string) (*model.TaxRecord, error) {
	record, err := s.repo.FindByID(ctx, enterpriseID, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch tax record: %w", err)
	}
	return record, nil
}

func (s *taxRecordService) Create(ctx context.Context, enterpriseID string, req TaxRecordRequest, userID string) (*model.TaxRecord, error) {
	entID, err := uuid.Parse(enterpriseID)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"enterprise_id"}}
	}

	dueDate, paymentDate, err := validateTaxRecordRequest(req)
	if err != nil {
		return nil, err
	}

	record := &model.TaxRecord{
		EnterpriseID:  entID,
		Year:          req.Year,
		Month:         req.Month,
		TaxableIncome: req.TaxableIncome,
		TaxAmount:     req.TaxAmount,
		PaidAmount:    req.PaidAmount,
		TaxType:       req.TaxType,
		PaymentStatus: req.PaymentStatus,
		DueDate:       dueDate,
		PaymentDate:   paymentDate,
		Remarks:       req.Remarks,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create tax record: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionCreate,
		fmt.Sprintf("创建税收记录 %s %d-%02d %s", record.TaxType, record.Year, record.Month, record.TaxAmount))
	s.hub.BroadcastEvent(websocket.EventTaxRecordCreated, record)

	return record, nil
}

func (s *taxRecordService) Update(ctx context.Context, enterpriseID, recordID string, req TaxRecordRequest, userID string) (*model.TaxRecord, error) {
	record, err := s.repo.FindByID(ctx, enterpriseID, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch tax record: %w", err)
	}

	dueDate, paymentDate, err := validateTaxRecordRequest(req)
	if err != nil {
		return nil, err
	}

	// paymentStatus is taken as given; it is not re-derived from
	// paidAmount vs taxAmount here.
	record.Year = req.Year
	record.Month = req.Month
	record.TaxableIncome = req.TaxableIncome
	record.TaxAmount = req.TaxAmount
	record.PaidAmount = req.PaidAmount
	record.TaxType = req.TaxType
	record.PaymentStatus = req.PaymentStatus
	record.DueDate = dueDate
	record.PaymentDate = paymentDate
	record.Remarks = req.Remarks

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update tax record: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionUpdate,
		fmt.Sprintf("更新税收记录 %s %d-%02d", record.TaxType, record.Year, record.Month))
	s.hub.BroadcastEvent(websocket.EventTaxRecordUpdated, record)

	return record, nil
}

func (s *taxRecordService) Delete(ctx context.Context, enterpriseID, recordID string, userID string) (*model.TaxRecord, error) {
	record, err := s.repo.SoftDelete(ctx, enterpriseID, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete tax record: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionDelete,
		fmt.Sprintf("删除税收记录 %s %d-%02d", record.TaxType, record.Year, record.Month))
	s.hub.BroadcastEvent(websocket.EventTaxRecordDeleted, record)

	return record, nil
}

func (s *taxRecordService) ListUnprocessed(ctx context.Context) ([]model.TaxRecord, error) {
	records, err := s.repo.ListUnprocessed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unprocessed tax records: %w", err)
	}
	return records, nil
}

// --- Helpers ---

// validateTaxRecordRequest checks the field constraints and collects every
// violated field into one ValidationError.
func validateTaxRecordRequest(req TaxRecordRequest) (time.Time, *time.Time, error) {
	var invalid []string

	if req.Year < 2000 || req.Year > 2100 {
		invalid = append(invalid, "year")
	}
	if req.Month < 1 || req.Month > 12 {
		invalid = append(invalid, "month")
	}
	if req.TaxableIncome.IsNegative() {
		invalid = append(invalid, "taxable_income")
	}
	if req.TaxAmount.IsNegative() {
		invalid = append(invalid, "tax_amount")
	}
	if req.PaidAmount.IsNegative() {
		invalid = append(invalid, "paid_amount")
	}
	if req.TaxType == "" {
		invalid = append(invalid, "tax_type")
	}
	if req.PaymentStatus == "" {
		invalid = append(invalid, "payment_status")
	}

	var dueDate time.Time
	if req.DueDate == "" {
		invalid = append(invalid, "due_date")
	} else {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			invalid = append(invalid, "due_date")
		} else {
			dueDate = parsed
		}
	}

	var paymentDate *time.Time
	if req.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			invalid = append(invalid, "payment_date")
		} else {
			paymentDate = &parsed
		}
	}

	if len(invalid) > 0 {
		return time.Time{}, nil, &ValidationError{Fields: invalid}
	}
	return dueDate, paymentDate, nil
}

func (s *taxRecordService) writeOpLog(ctx context.Context, userID, action, description string) {
	entry := &model.OperationLog{
		Action:      action,
		Module:      model.ModuleTaxRecord,
		Description: description,
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		entry.UserID = &parsed
	}
	// Best-effort log write; never fails the operation
	_ = s.opLogs.Create(ctx, entry)
}

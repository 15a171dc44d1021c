package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type SocialRecordRequest struct {
	EnterpriseID   string          `json:"enterprise_id" binding:"required"`
	EmployeeName   string          `json:"employee_name" binding:"required"`
	IDNumber       string          `json:"id_number" binding:"required"`
	InsuranceType  string          `json:"insurance_type" binding:"required"`
	BaseAmount     decimal.Decimal `json:"base_amount"`
	PersonalAmount decimal.Decimal `json:"personal_amount"`
	CompanyAmount  decimal.Decimal `json:"company_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentStatus  string          `json:"payment_status"`
	PaymentDate    string          `json:"payment_date"` // YYYY-MM-DD
}

// SocialRecordList bundles one page of records with the dashboard stats
type SocialRecordList struct {
	Records []model.SocialRecord          `json:"records"`
	Total   int64                         `json:"total"`
	Stats   *repository.SocialRecordStats `json:"stats"`
}

// --- Interface ---

type SocialRecordService interface {
	List(ctx context.Context, page, limit int) (*SocialRecordList, error)
	Create(ctx context.Context, req SocialRecordRequest, userID string) (*model.SocialRecord, error)
	Update(ctx context.Context, id string, req SocialRecordRequest, userID string) (*model.SocialRecord, error)
	Delete(ctx context.Context, id string, userID string) error
}

type socialRecordService struct {
	repo   repository.SocialRecordRepository
	opLogs repository.OperationLogRepository
}

// NewSocialRecordService returns a new instance of SocialRecordService
func NewSocialRecordService(repo repository.SocialRecordRepository, opLogs repository.OperationLogRepository) SocialRecordService {
	return &socialRecordService{repo: repo, opLogs: opLogs}
}

// --- Implementation ---

func (s *socialRecordService) List(ctx context.Context, page, limit int) (*SocialRecordList, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	records, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list social records: %w", err)
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute social record stats: %w", err)
	}

	return &SocialRecordList{Records: records, Total: total, Stats: stats}, nil
}

func (s *socialRecordService) Create(ctx context.Context, req SocialRecordRequest, userID string) (*model.SocialRecord, error) {
	entID, err := uuid.Parse(req.EnterpriseID)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"enterprise_id"}}
	}

	paymentDate, err := parseOptionalDate(req.PaymentDate)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"payment_date"}}
	}

	status := req.PaymentStatus
	if status == "" {
		status = model.PaymentStatusUnpaid
	}

	record := &model.SocialRecord{
		EnterpriseID:   entID,
		EmployeeName:   req.EmployeeName,
		IDNumber:       req.IDNumber,
		InsuranceType:  req.InsuranceType,
		BaseAmount:     req.BaseAmount,
		PersonalAmount: req.PersonalAmount,
		CompanyAmount:  req.CompanyAmount,
		TotalAmount:    req.TotalAmount,
		PaymentStatus:  status,
		PaymentDate:    paymentDate,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create social record: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionCreate,
		fmt.Sprintf("创建社保记录 %s %s", record.EmployeeName, record.InsuranceType))

	return record, nil
}

func (s *socialRecordService) Update(ctx context.Context, id string, req SocialRecordRequest, userID string) (*model.SocialRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch social record: %w", err)
	}

	var paymentDate *time.Time
	if req.PaymentDate != "" {
		paymentDate, err = parseOptionalDate(req.PaymentDate)
		if err != nil {
			return nil, &ValidationError{Fields: []string{"payment_date"}}
		}
	}

	record.EmployeeName = req.EmployeeName
	record.IDNumber = req.IDNumber
	record.InsuranceType = req.InsuranceType
	record.BaseAmount = req.BaseAmount
	record.PersonalAmount = req.PersonalAmount
	record.CompanyAmount = req.CompanyAmount
	record.TotalAmount = req.TotalAmount
	if req.PaymentStatus != "" {
		record.PaymentStatus = req.PaymentStatus
	}
	if paymentDate != nil {
		record.PaymentDate = paymentDate
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update social record: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionUpdate,
		fmt.Sprintf("更新社保记录 %s %s", record.EmployeeName, record.InsuranceType))

	return record, nil
}

func (s *socialRecordService) Delete(ctx context.Context, id string, userID string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete social record: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionDelete, fmt.Sprintf("删除社保记录 %s", id))

	return nil
}

func (s *socialRecordService) writeOpLog(ctx context.Context, userID, action, description string) {
	entry := &model.OperationLog{
		Action:      action,
		Module:      model.ModuleSocialRecord,
		Description: description,
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		entry.UserID = &parsed
	}
	_ = s.opLogs.Create(ctx, entry)
}

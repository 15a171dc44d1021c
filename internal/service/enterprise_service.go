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

type EnterpriseRequest struct {
	Name              string          `json:"name" binding:"required"`
	UnifiedSocialCode string          `json:"unified_social_code" binding:"required,len=18"`
	LegalPerson       string          `json:"legal_person" binding:"required"`
	RegisteredCapital decimal.Decimal `json:"registered_capital"`
	FoundingDate      string          `json:"founding_date"` // YYYY-MM-DD
	BusinessScope     string          `json:"business_scope"`
	Industry          string          `json:"industry"`
	District          string          `json:"district"`
	Address           string          `json:"address"`
	ContactNumber     string          `json:"contact_number"`
	Email             string          `json:"email" binding:"omitempty,email"`
	Status            string          `json:"status"`
}

// --- Interface ---

type EnterpriseService interface {
	Create(ctx context.Context, req EnterpriseRequest, userID string) (*model.Enterprise, error)
	Update(ctx context.Context, id string, req EnterpriseRequest, userID string) (*model.Enterprise, error)
	Delete(ctx context.Context, id string, userID string) error
	GetByID(ctx context.Context, id string) (*model.Enterprise, error)
	List(ctx context.Context, query repository.EnterpriseListQuery) (*repository.EnterpriseList, error)
}

type enterpriseService struct {
	repo   repository.EnterpriseRepository
	opLogs repository.OperationLogRepository
}

// NewEnterpriseService returns a new instance of EnterpriseService
func NewEnterpriseService(repo repository.EnterpriseRepository, opLogs repository.OperationLogRepository) EnterpriseService {
	return &enterpriseService{repo: repo, opLogs: opLogs}
}

// --- Implementation ---

func (s *enterpriseService) Create(ctx context.Context, req EnterpriseRequest, userID string) (*model.Enterprise, error) {
	foundingDate, err := parseOptionalDate(req.FoundingDate)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"founding_date"}}
	}
	if req.RegisteredCapital.IsNegative() {
		return nil, &ValidationError{Fields: []string{"registered_capital"}}
	}

	status := req.Status
	if status == "" {
		status = model.EnterpriseStatusNormal
	}

	enterprise := &model.Enterprise{
		Name:              req.Name,
		UnifiedSocialCode: req.UnifiedSocialCode,
		LegalPerson:       req.LegalPerson,
		RegisteredCapital: req.RegisteredCapital,
		FoundingDate:      foundingDate,
		BusinessScope:     req.BusinessScope,
		Industry:          req.Industry,
		District:          req.District,
		Address:           req.Address,
		ContactNumber:     req.ContactNumber,
		Email:             req.Email,
		Status:            status,
		DataSource:        model.DataSourceManual,
	}

	if err := s.repo.Create(ctx, enterprise); err != nil {
		return nil, fmt.Errorf("failed to create enterprise: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionCreate, fmt.Sprintf("创建企业 %s (%s)", enterprise.Name, enterprise.UnifiedSocialCode))

	return enterprise, nil
}

func (s *enterpriseService) Update(ctx context.Context, id string, req EnterpriseRequest, userID string) (*model.Enterprise, error) {
	enterprise, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch enterprise: %w", err)
	}

	foundingDate, err := parseOptionalDate(req.FoundingDate)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"founding_date"}}
	}
	if req.RegisteredCapital.IsNegative() {
		return nil, &ValidationError{Fields: []string{"registered_capital"}}
	}

	enterprise.Name = req.Name
	enterprise.UnifiedSocialCode = req.UnifiedSocialCode
	enterprise.LegalPerson = req.LegalPerson
	enterprise.RegisteredCapital = req.RegisteredCapital
	enterprise.FoundingDate = foundingDate
	enterprise.BusinessScope = req.BusinessScope
	enterprise.Industry = req.Industry
	enterprise.District = req.District
	enterprise.Address = req.Address
	enterprise.ContactNumber = req.ContactNumber
	enterprise.Email = req.Email
	if req.Status != "" {
		enterprise.Status = req.Status
	}

	if err := s.repo.Update(ctx, enterprise); err != nil {
		return nil, fmt.Errorf("failed to update enterprise: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionUpdate, fmt.Sprintf("更新企业 %s", enterprise.Name))

	return enterprise, nil
}

func (s *enterpriseService) Delete(ctx context.Context, id string, userID string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete enterprise: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionDelete, fmt.Sprintf("删除企业 %s", id))

	return nil
}

func (s *enterpriseService) GetByID(ctx context.Context, id string) (*model.Enterprise, error) {
	enterprise, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch enterprise: %w", err)
	}
	return enterprise, nil
}

func (s *enterpriseService) List(ctx context.Context, query repository.EnterpriseListQuery) (*repository.EnterpriseList, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = 10
	}

	list, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list enterprises: %w", err)
	}
	return list, nil
}

// --- Helpers ---

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (s *enterpriseService) writeOpLog(ctx context.Context, userID, action, description string) {
	entry := &model.OperationLog{
		Action:      action,
		Module:      model.ModuleEnterprise,
		Description: description,
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		entry.UserID = &parsed
	}
	_ = s.opLogs.Create(ctx, entry)
}

package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type FinancialReportRequest struct {
	EnterpriseID string  `json:"enterprise_id" binding:"required"`
	ReportType   string  `json:"report_type" binding:"required"`
	ReportPeriod string  `json:"report_period" binding:"required"`
	FileName     string  `json:"file_name"`
	Remarks      *string `json:"remarks"`
}

type FinancialReportListQuery struct {
	StartDate      string // YYYY-MM-DD
	EndDate        string // YYYY-MM-DD
	EnterpriseName string
	ProcessStatus  string
	ReportType     string
}

// --- Interface ---

type FinancialReportService interface {
	List(ctx context.Context, query FinancialReportListQuery) ([]model.FinancialReport, error)
	Create(ctx context.Context, req FinancialReportRequest, userID string) (*model.FinancialReport, error)
}

type financialReportService struct {
	repo   repository.FinancialReportRepository
	opLogs repository.OperationLogRepository
}

// NewFinancialReportService returns a new instance of FinancialReportService
func NewFinancialReportService(repo repository.FinancialReportRepository, opLogs repository.OperationLogRepository) FinancialReportService {
	return &financialReportService{repo: repo, opLogs: opLogs}
}

// --- Implementation ---

func (s *financialReportService) List(ctx context.Context, query FinancialReportListQuery) ([]model.FinancialReport, error) {
	repoQuery := repository.FinancialReportListQuery{
		EnterpriseName: query.EnterpriseName,
		ProcessStatus:  query.ProcessStatus,
		ReportType:     query.ReportType,
	}

	var invalid []string
	if query.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			invalid = append(invalid, "start_date")
		} else {
			repoQuery.StartDate = &parsed
		}
	}
	if query.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			invalid = append(invalid, "end_date")
		} else {
			repoQuery.EndDate = &parsed
		}
	}
	if len(invalid) > 0 {
		return nil, &ValidationError{Fields: invalid}
	}

	reports, err := s.repo.List(ctx, repoQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial reports: %w", err)
	}
	return reports, nil
}

func (s *financialReportService) Create(ctx context.Context, req FinancialReportRequest, userID string) (*model.FinancialReport, error) {
	entID, err := uuid.Parse(req.EnterpriseID)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"enterprise_id"}}
	}

	report := &model.FinancialReport{
		EnterpriseID:  entID,
		ReportType:    req.ReportType,
		ReportPeriod:  req.ReportPeriod,
		FileName:      req.FileName,
		UploadTime:    time.Now(),
		ProcessStatus: model.ProcessStatusPending,
		Remarks:       req.Remarks,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create financial report: %w", err)
	}

	s.writeOpLog(ctx, userID, fmt.Sprintf("上传财报 %s %s", report.ReportType, report.ReportPeriod))

	return report, nil
}

func (s *financialReportService) writeOpLog(ctx context.Context, userID, description string) {
	entry := &model.OperationLog{
		Action:      model.ActionCreate,
		Module:      model.ModuleFinancialReport,
		Description: description,
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		entry.UserID = &parsed
	}
	_ = s.opLogs.Create(ctx, entry)
}

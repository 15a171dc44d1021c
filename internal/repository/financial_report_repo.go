package repository

import (
	"context"
	"time"

	"backend/internal/model"

	"gorm.io/gorm"
)

// FinancialReportListQuery holds the filter parameters for listing reports
type FinancialReportListQuery struct {
	StartDate      *time.Time
	EndDate        *time.Time
	EnterpriseName string
	ProcessStatus  string
	ReportType     string
}

// FinancialReportRepository defines the interface for data access of
// FinancialReport entities
type FinancialReportRepository interface {
	Create(ctx context.Context, report *model.FinancialReport) error
	FindByID(ctx context.Context, id string) (*model.FinancialReport, error)
	List(ctx context.Context, query FinancialReportListQuery) ([]model.FinancialReport, error)
}

type financialReportRepository struct {
	db *gorm.DB
}

// NewFinancialReportRepository returns a new instance of FinancialReportRepository
func NewFinancialReportRepository(db *gorm.DB) FinancialReportRepository {
	return &financialReportRepository{db: db}
}

func (r *financialReportRepository) Create(ctx context.Context, report *model.FinancialReport) error {
	return GetDB(ctx, r.db).Create(report).Error
}

func (r *financialReportRepository) FindByID(ctx context.Context, id string) (*model.FinancialReport, error) {
	var report model.FinancialReport
	if err := GetDB(ctx, r.db).Preload("Enterprise").First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *financialReportRepository) List(ctx context.Context, query FinancialReportListQuery) ([]model.FinancialReport, error) {
	db := GetDB(ctx, r.db).Model(&model.FinancialReport{})

	if query.StartDate != nil {
		db = db.Where("upload_time >= ?", *query.StartDate)
	}
	if query.EndDate != nil {
		db = db.Where("upload_time <= ?", *query.EndDate)
	}
	if query.EnterpriseName != "" {
		db = db.Joins("JOIN enterprises ON enterprises.id = financial_reports.enterprise_id").
			Where("enterprises.name LIKE ?", "%"+query.EnterpriseName+"%")
	}
	if query.ProcessStatus != "" {
		db = db.Where("process_status = ?", query.ProcessStatus)
	}
	if query.ReportType != "" {
		db = db.Where("report_type = ?", query.ReportType)
	}

	var reports []model.FinancialReport
	if err := db.Preload("Enterprise").Order("upload_time DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

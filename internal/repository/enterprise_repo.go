package repository

import (
	"context"
	"time"

	"backend/internal/model"

	"gorm.io/gorm"
)

// EnterpriseListQuery holds the filter/pagination parameters for listing
// enterprises. The serialized form of this struct is also the list cache
// key suffix, so distinct filter combinations occupy distinct keys.
type EnterpriseListQuery struct {
	Page      int        `json:"page"`
	PageSize  int        `json:"page_size"`
	Keyword   string     `json:"keyword,omitempty"`
	Status    string     `json:"status,omitempty"`
	Industry  string     `json:"industry,omitempty"`
	District  string     `json:"district,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// EnterpriseList is one page of enterprises plus the unpaged total
type EnterpriseList struct {
	Items []model.Enterprise `json:"items"`
	Total int64              `json:"total"`
}

// EnterpriseRepository defines the interface for data access of Enterprise
// entities. Deletion is a soft delete; reads exclude deleted rows.
type EnterpriseRepository interface {
	Create(ctx context.Context, enterprise *model.Enterprise) error
	Update(ctx context.Context, enterprise *model.Enterprise) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Enterprise, error)
	List(ctx context.Context, query EnterpriseListQuery) (*EnterpriseList, error)
}

type enterpriseRepository struct {
	db *gorm.DB
}

// NewEnterpriseRepository returns a new instance of EnterpriseRepository
func NewEnterpriseRepository(db *gorm.DB) EnterpriseRepository {
	return &enterpriseRepository{db: db}
}

func (r *enterpriseRepository) Create(ctx context.Context, enterprise *model.Enterprise) error {
	return GetDB(ctx, r.db).Create(enterprise).Error
}

func (r *enterpriseRepository) Update(ctx context.Context, enterprise *model.Enterprise) error {
	return GetDB(ctx, r.db).Save(enterprise).Error
}

func (r *enterpriseRepository) Delete(ctx context.Context, id string) error {
	// gorm.DeletedAt rewrites this to UPDATE deleted_at = now()
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Enterprise{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *enterpriseRepository) GetByID(ctx context.Context, id string) (*model.Enterprise, error) {
	var enterprise model.Enterprise
	if err := GetDB(ctx, r.db).First(&enterprise, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &enterprise, nil
}

func (r *enterpriseRepository) List(ctx context.Context, query EnterpriseListQuery) (*EnterpriseList, error) {
	db := GetDB(ctx, r.db).Model(&model.Enterprise{})

	if query.Keyword != "" {
		kw := "%" + query.Keyword + "%"
		db = db.Where("name LIKE ? OR unified_social_code LIKE ? OR legal_person LIKE ?", kw, kw, kw)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.Industry != "" {
		db = db.Where("industry = ?", query.Industry)
	}
	if query.District != "" {
		db = db.Where("district = ?", query.District)
	}
	if query.StartDate != nil && query.EndDate != nil {
		db = db.Where("founding_date BETWEEN ? AND ?", *query.StartDate, *query.EndDate)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []model.Enterprise
	offset := (query.Page - 1) * query.PageSize
	if err := db.Order("created_at DESC").Offset(offset).Limit(query.PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return &EnterpriseList{Items: items, Total: total}, nil
}

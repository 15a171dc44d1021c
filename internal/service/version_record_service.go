package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs ---

type VersionRecordRequest struct {
	Version     string `json:"version" binding:"required"`
	Description string `json:"description"`
	FileName    string `json:"file_name"`
}

type ReviewVersionRequest struct {
	Approve bool `json:"approve"`
}

// --- Interface ---

type VersionRecordService interface {
	List(ctx context.Context, page, limit int) ([]model.VersionRecord, int64, error)
	Create(ctx context.Context, req VersionRecordRequest, userID string) (*model.VersionRecord, error)
	Review(ctx context.Context, id string, req ReviewVersionRequest, reviewerID string) (*model.VersionRecord, error)
}

type versionRecordService struct {
	repo   repository.VersionRecordRepository
	opLogs repository.OperationLogRepository
}

// NewVersionRecordService returns a new instance of VersionRecordService
func NewVersionRecordService(repo repository.VersionRecordRepository, opLogs repository.OperationLogRepository) VersionRecordService {
	return &versionRecordService{repo: repo, opLogs: opLogs}
}

// --- Implementation ---

func (s *versionRecordService) List(ctx context.Context, page, limit int) ([]model.VersionRecord, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	records, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list version records: %w", err)
	}
	return records, total, nil
}

func (s *versionRecordService) Create(ctx context.Context, req VersionRecordRequest, userID string) (*model.VersionRecord, error) {
	record := &model.VersionRecord{
		Version:     req.Version,
		Description: req.Description,
		FileName:    req.FileName,
		Status:      model.VersionStatusPending,
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		record.UploadedBy = &parsed
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create version record: %w", err)
	}

	s.writeOpLog(ctx, userID, model.ActionCreate, fmt.Sprintf("上传版本 %s", record.Version))

	return record, nil
}

func (s *versionRecordService) Review(ctx context.Context, id string, req ReviewVersionRequest, reviewerID string) (*model.VersionRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch version record: %w", err)
	}

	if record.Status != model.VersionStatusPending {
		return nil, &ValidationError{Fields: []string{"status"}}
	}

	if req.Approve {
		record.Status = model.VersionStatusApproved
	} else {
		record.Status = model.VersionStatusRejected
	}
	now := time.Now()
	record.ReviewedAt = &now
	if parsed, err := uuid.Parse(reviewerID); err == nil {
		record.ReviewedBy = &parsed
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to review version record: %w", err)
	}

	s.writeOpLog(ctx, reviewerID, model.ActionReview,
		fmt.Sprintf("审核版本 %s -> %s", record.Version, record.Status))

	return record, nil
}

func (s *versionRecordService) writeOpLog(ctx context.Context, userID, action, description string) {
	entry := &model.OperationLog{
		Action:      action,
		Module:      model.ModuleVersionRecord,
		Description: description,
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		entry.UserID = &parsed
	}
	_ = s.opLogs.Create(ctx, entry)
}

package service

import (
	"context"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVersionService(t *testing.T) VersionRecordService {
	t.Helper()
	db := newTestDB(t)
	return NewVersionRecordService(
		repository.NewVersionRecordRepository(db),
		repository.NewOperationLogRepository(db),
	)
}

func TestReviewVersionRecord(t *testing.T) {
	svc := newVersionService(t)
	ctx := context.Background()
	reviewer := uuid.NewString()

	record, err := svc.Create(ctx, VersionRecordRequest{
		Version:  "v2024.06",
		FileName: "enterprises-2024-06.xlsx",
	}, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, model.VersionStatusPending, record.Status)

	reviewed, err := svc.Review(ctx, record.ID.String(), ReviewVersionRequest{Approve: true}, reviewer)
	require.NoError(t, err)
	assert.Equal(t, model.VersionStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, reviewer, reviewed.ReviewedBy.String())
	assert.NotNil(t, reviewed.ReviewedAt)

	// Only pending submissions can be reviewed.
	_, err = svc.Review(ctx, record.ID.String(), ReviewVersionRequest{Approve: false}, reviewer)
	_, ok := AsValidationError(err)
	assert.True(t, ok)

	_, err = svc.Review(ctx, uuid.NewString(), ReviewVersionRequest{Approve: true}, reviewer)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewVersionRecordRejection(t *testing.T) {
	svc := newVersionService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, VersionRecordRequest{Version: "v2024.07"}, uuid.NewString())
	require.NoError(t, err)

	reviewed, err := svc.Review(ctx, record.ID.String(), ReviewVersionRequest{Approve: false}, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, model.VersionStatusRejected, reviewed.Status)
}

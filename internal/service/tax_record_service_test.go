package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type taxRecordFixture struct {
	db         *gorm.DB
	repo       repository.TaxRecordRepository
	service    TaxRecordService
	enterprise *model.Enterprise
}

func newTaxRecordFixture(t *testing.T) *taxRecordFixture {
	t.Helper()

	db := newTestDB(t)
	repo := repository.NewTaxRecordRepository(db)
	opLogs := repository.NewOperationLogRepository(db)

	enterprise := &model.Enterprise{
		Name:              "北京示例贸易有限公司",
		UnifiedSocialCode: "91110000MA01C8Q29K",
		LegalPerson:       "李娜",
	}
	require.NoError(t, repository.NewEnterpriseRepository(db).Create(context.Background(), enterprise))

	return &taxRecordFixture{
		db:         db,
		repo:       repo,
		service:    NewTaxRecordService(repo, opLogs, websocket.NewHub()),
		enterprise: enterprise,
	}
}

func validTaxRecordRequest() TaxRecordRequest {
	return TaxRecordRequest{
		Year:          2024,
		Month:         6,
		TaxableIncome: dec("400000"),
		TaxAmount:     dec("100000"),
		PaidAmount:    dec("100000"),
		TaxType:       model.TaxTypeCorporateIncome,
		PaymentStatus: model.PaymentStatusPaid,
		DueDate:       "2024-07-15",
		PaymentDate:   "2024-07-10",
	}
}

func TestCreateTaxRecordCollectsInvalidFields(t *testing.T) {
	f := newTaxRecordFixture(t)

	req := TaxRecordRequest{
		Year:          1999,
		Month:         13,
		TaxableIncome: dec("-1"),
		TaxAmount:     dec("-2"),
		PaidAmount:    dec("-3"),
		PaymentDate:   "07/10/2024",
	}
	_, err := f.service.Create(context.Background(), f.enterprise.ID.String(), req, "")
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{
		"year", "month", "taxable_income", "tax_amount", "paid_amount",
		"tax_type", "payment_status", "due_date", "payment_date",
	}, ve.Fields)
}

func TestTaxRecordLifecycle(t *testing.T) {
	f := newTaxRecordFixture(t)
	ctx := context.Background()
	entID := f.enterprise.ID.String()

	created, err := f.service.Create(ctx, entID, validTaxRecordRequest(), "")
	require.NoError(t, err)
	require.NotNil(t, created.PaymentDate)

	req := validTaxRecordRequest()
	req.PaidAmount = dec("60000")
	req.PaymentStatus = model.PaymentStatusPartial
	updated, err := f.service.Update(ctx, entID, created.ID.String(), req, "")
	require.NoError(t, err)
	// The stored status is whatever the caller sent, even when paid and
	// tax amounts disagree with it.
	assert.Equal(t, model.PaymentStatusPartial, updated.PaymentStatus)
	assert.True(t, updated.PaidAmount.Equal(dec("60000")))

	deleted, err := f.service.Delete(ctx, entID, created.ID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = f.service.Get(ctx, entID, created.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)

	records, err := f.service.List(ctx, entID)
	require.NoError(t, err)
	assert.Empty(t, records)

	// The row survives deletion with the tombstone set.
	kept, err := f.repo.FindByIDAny(ctx, created.ID.String())
	require.NoError(t, err)
	assert.True(t, kept.DeletedAt.Valid)
}

func TestTaxRecordListOrdersByPeriodDesc(t *testing.T) {
	f := newTaxRecordFixture(t)
	ctx := context.Background()
	entID := f.enterprise.ID.String()

	for _, period := range []struct{ year, month int }{
		{2023, 12}, {2024, 6}, {2024, 1},
	} {
		req := validTaxRecordRequest()
		req.Year = period.year
		req.Month = period.month
		_, err := f.service.Create(ctx, entID, req, "")
		require.NoError(t, err)
	}

	records, err := f.service.List(ctx, entID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []int{2024, 2024, 2023}, []int{records[0].Year, records[1].Year, records[2].Year})
	assert.Equal(t, []int{6, 1, 12}, []int{records[0].Month, records[1].Month, records[2].Month})
}

func TestListUnprocessedFiltersAndOrders(t *testing.T) {
	f := newTaxRecordFixture(t)
	ctx := context.Background()

	mkRecord := func(paymentDate time.Time, status string) *model.TaxRecord {
		record := &model.TaxRecord{
			EnterpriseID:  f.enterprise.ID,
			Year:          paymentDate.Year(),
			Month:         int(paymentDate.Month()),
			TaxAmount:     dec("1000"),
			PaidAmount:    dec("1000"),
			TaxType:       model.TaxTypeVAT,
			PaymentStatus: status,
			DueDate:       paymentDate,
			PaymentDate:   &paymentDate,
		}
		require.NoError(t, f.repo.Create(ctx, record))
		return record
	}

	newer := mkRecord(time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), model.PaymentStatusPaid)
	older := mkRecord(time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), model.PaymentStatusPaid)
	mkRecord(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), model.PaymentStatusUnpaid)

	linked := mkRecord(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), model.PaymentStatusPaid)
	refund := &model.TaxRefund{
		EnterpriseID: f.enterprise.ID,
		TaxPeriod:    "2024-03",
		Status:       model.RefundStatusPending,
	}
	require.NoError(t, repository.NewTaxRefundRepository(f.db).Create(ctx, refund))
	require.NoError(t, f.repo.LinkToRefund(ctx, []uuid.UUID{linked.ID}, refund.ID))

	unprocessed, err := f.service.ListUnprocessed(ctx)
	require.NoError(t, err)
	require.Len(t, unprocessed, 2)
	assert.Equal(t, older.ID, unprocessed[0].ID)
	assert.Equal(t, newer.ID, unprocessed[1].ID)
	// Joined enterprise data rides along for the refund picker.
	require.NotNil(t, unprocessed[0].Enterprise)
	assert.Equal(t, f.enterprise.Name, unprocessed[0].Enterprise.Name)
}

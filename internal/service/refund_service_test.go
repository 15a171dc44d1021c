package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite gives each connection its own database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Enterprise{},
		&model.TaxRecord{},
		&model.TaxRefundConfig{},
		&model.TaxRefund{},
		&model.SocialRecord{},
		&model.FinancialReport{},
		&model.VersionRecord{},
		&model.OperationLog{},
	))

	return db
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type refundFixture struct {
	db          *gorm.DB
	enterprises repository.EnterpriseRepository
	records     repository.TaxRecordRepository
	refunds     repository.TaxRefundRepository
	configs     RefundConfigService
	service     RefundService
	enterprise  *model.Enterprise
}

func newRefundFixture(t *testing.T) *refundFixture {
	t.Helper()

	db := newTestDB(t)
	txMgr := repository.NewTransactionManager(db)
	opLogs := repository.NewOperationLogRepository(db)
	hub := websocket.NewHub()

	enterprises := repository.NewEnterpriseRepository(db)
	records := repository.NewTaxRecordRepository(db)
	refunds := repository.NewTaxRefundRepository(db)
	configs := NewRefundConfigService(repository.NewRefundConfigRepository(db), txMgr, opLogs)

	enterprise := &model.Enterprise{
		Name:              "上海示例科技有限公司",
		UnifiedSocialCode: "91310000MA1K35Y12X",
		LegalPerson:       "张伟",
	}
	require.NoError(t, enterprises.Create(context.Background(), enterprise))

	return &refundFixture{
		db:          db,
		enterprises: enterprises,
		records:     records,
		refunds:     refunds,
		configs:     configs,
		service:     NewRefundService(refunds, records, configs, enterprises, txMgr, opLogs, hub),
		enterprise:  enterprise,
	}
}

func (f *refundFixture) seedConfig(t *testing.T) {
	t.Helper()
	require.NoError(t, f.configs.ReplaceAll(context.Background(), RefundConfigRequest{
		CompanyRate:  dec("45"),
		PersonalRate: dec("40"),
		LandRate:     dec("35"),
		PropertyRate: dec("30"),
		OtherRate:    dec("25"),
		TotalRate:    dec("35"),
	}, ""))
}

func (f *refundFixture) seedPaidRecord(t *testing.T, taxType string, taxAmount, taxableIncome decimal.Decimal) *model.TaxRecord {
	t.Helper()
	paid := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	record := &model.TaxRecord{
		EnterpriseID:  f.enterprise.ID,
		Year:          2024,
		Month:         6,
		TaxableIncome: taxableIncome,
		TaxAmount:     taxAmount,
		PaidAmount:    taxAmount,
		TaxType:       taxType,
		PaymentStatus: model.PaymentStatusPaid,
		DueDate:       time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		PaymentDate:   &paid,
	}
	require.NoError(t, f.records.Create(context.Background(), record))
	return record
}

func TestCalculateRefund(t *testing.T) {
	f := newRefundFixture(t)
	f.seedConfig(t)
	ctx := context.Background()

	corporate := f.seedPaidRecord(t, model.TaxTypeCorporateIncome, dec("100000"), dec("400000"))
	personal := f.seedPaidRecord(t, model.TaxTypePersonalIncome, dec("50000"), dec("200000"))

	refund, err := f.service.Calculate(ctx, CalculateRefundRequest{
		EnterpriseID: f.enterprise.ID.String(),
		TaxRecords: []RefundTaxRecordInput{
			{ID: corporate.ID, Year: 2024, Month: 6, TaxType: corporate.TaxType, TaxAmount: corporate.TaxAmount, TaxableIncome: corporate.TaxableIncome},
			{ID: personal.ID, Year: 2024, Month: 6, TaxType: personal.TaxType, TaxAmount: personal.TaxAmount, TaxableIncome: personal.TaxableIncome},
		},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "2024-06", refund.TaxPeriod)
	assert.Equal(t, f.enterprise.UnifiedSocialCode, refund.TaxNumber)
	assert.Equal(t, model.RefundStatusPending, refund.Status)
	assert.True(t, refund.CompanyAmount.Equal(dec("45000")), "company amount = %s", refund.CompanyAmount)
	assert.True(t, refund.PersonalAmount.Equal(dec("20000")), "personal amount = %s", refund.PersonalAmount)
	assert.True(t, refund.LandAmount.IsZero())
	assert.True(t, refund.PropertyAmount.IsZero())
	assert.True(t, refund.OtherAmount.IsZero())
	assert.True(t, refund.TotalAmount.Equal(dec("65000")), "total amount = %s", refund.TotalAmount)
	assert.True(t, refund.TaxAmount.Equal(dec("150000")))
	assert.True(t, refund.BaseAmount.Equal(dec("600000")))
	assert.True(t, refund.RefundRate.Equal(dec("35")))

	// Consumed records carry the back-reference and drop out of the
	// unprocessed pool.
	for _, id := range []uuid.UUID{corporate.ID, personal.ID} {
		stored, err := f.records.FindByIDAny(ctx, id.String())
		require.NoError(t, err)
		require.NotNil(t, stored.TaxRefundID)
		assert.Equal(t, refund.ID, *stored.TaxRefundID)
	}
	unprocessed, err := f.records.ListUnprocessed(ctx)
	require.NoError(t, err)
	assert.Empty(t, unprocessed)
}

func TestCalculateRefundBucketsUnknownTypesAsOther(t *testing.T) {
	f := newRefundFixture(t)
	f.seedConfig(t)

	vat := f.seedPaidRecord(t, model.TaxTypeVAT, dec("10000"), dec("50000"))

	refund, err := f.service.Calculate(context.Background(), CalculateRefundRequest{
		EnterpriseID: f.enterprise.ID.String(),
		TaxRecords: []RefundTaxRecordInput{
			{ID: vat.ID, Year: 2024, Month: 6, TaxType: vat.TaxType, TaxAmount: vat.TaxAmount, TaxableIncome: vat.TaxableIncome},
		},
	}, "")
	require.NoError(t, err)

	assert.True(t, refund.OtherAmount.Equal(dec("2500")), "other amount = %s", refund.OtherAmount)
	assert.True(t, refund.CompanyAmount.IsZero())
	assert.True(t, refund.TotalAmount.Equal(dec("2500")))
}

func TestCalculateRefundRequiresActiveConfig(t *testing.T) {
	f := newRefundFixture(t)

	record := f.seedPaidRecord(t, model.TaxTypeCorporateIncome, dec("1000"), dec("5000"))

	_, err := f.service.Calculate(context.Background(), CalculateRefundRequest{
		EnterpriseID: f.enterprise.ID.String(),
		TaxRecords: []RefundTaxRecordInput{
			{ID: record.ID, Year: 2024, Month: 6, TaxType: record.TaxType, TaxAmount: record.TaxAmount},
		},
	}, "")
	assert.ErrorIs(t, err, ErrNoActiveConfig)
}

func TestCalculateRefundRejectsDuplicatePeriod(t *testing.T) {
	f := newRefundFixture(t)
	f.seedConfig(t)
	ctx := context.Background()

	first := f.seedPaidRecord(t, model.TaxTypeCorporateIncome, dec("1000"), dec("5000"))
	second := f.seedPaidRecord(t, model.TaxTypePersonalIncome, dec("2000"), dec("8000"))

	_, err := f.service.Calculate(ctx, CalculateRefundRequest{
		EnterpriseID: f.enterprise.ID.String(),
		TaxRecords: []RefundTaxRecordInput{
			{ID: first.ID, Year: 2024, Month: 6, TaxType: first.TaxType, TaxAmount: first.TaxAmount},
		},
	}, "")
	require.NoError(t, err)

	_, err = f.service.Calculate(ctx, CalculateRefundRequest{
		EnterpriseID: f.enterprise.ID.String(),
		TaxRecords: []RefundTaxRecordInput{
			{ID: second.ID, Year: 2024, Month: 6, TaxType: second.TaxType, TaxAmount: second.TaxAmount},
		},
	}, "")
	assert.ErrorIs(t, err, ErrDuplicateRefundPeriod)

	// Same enterprise, different period is fine.
	third := f.seedPaidRecord(t, model.TaxTypeCorporateIncome, dec("3000"), dec("9000"))
	_, err = f.service.Calculate(ctx, CalculateRefundRequest{
		EnterpriseID: f.enterprise.ID.String(),
		TaxRecords: []RefundTaxRecordInput{
			{ID: third.ID, Year: 2024, Month: 7, TaxType: third.TaxType, TaxAmount: third.TaxAmount},
		},
	}, "")
	assert.NoError(t, err)
}

func TestCalculateRefundValidatesInput(t *testing.T) {
	f := newRefundFixture(t)
	f.seedConfig(t)
	ctx := context.Background()

	_, err := f.service.Calculate(ctx, CalculateRefundRequest{
		EnterpriseID: f.enterprise.ID.String(),
	}, "")
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"tax_records"}, ve.Fields)

	_, err = f.service.Calculate(ctx, CalculateRefundRequest{
		EnterpriseID: "not-a-uuid",
		TaxRecords:   []RefundTaxRecordInput{{Year: 2024, Month: 6, TaxType: model.TaxTypeVAT}},
	}, "")
	ve, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"enterprise_id"}, ve.Fields)

	_, err = f.service.Calculate(ctx, CalculateRefundRequest{
		EnterpriseID: uuid.NewString(),
		TaxRecords:   []RefundTaxRecordInput{{Year: 2024, Month: 6, TaxType: model.TaxTypeVAT}},
	}, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRefundStatus(t *testing.T) {
	f := newRefundFixture(t)
	f.seedConfig(t)
	ctx := context.Background()

	record := f.seedPaidRecord(t, model.TaxTypeCorporateIncome, dec("1000"), dec("5000"))
	refund, err := f.service.Calculate(ctx, CalculateRefundRequest{
		EnterpriseID: f.enterprise.ID.String(),
		TaxRecords: []RefundTaxRecordInput{
			{ID: record.ID, Year: 2024, Month: 6, TaxType: record.TaxType, TaxAmount: record.TaxAmount},
		},
	}, "")
	require.NoError(t, err)

	err = f.service.UpdateStatus(ctx, refund.ID.String(), UpdateRefundStatusRequest{Status: model.RefundStatusProcessing}, "")
	require.NoError(t, err)

	stored, err := f.refunds.FindByID(ctx, refund.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.RefundStatusProcessing, stored.Status)

	err = f.service.UpdateStatus(ctx, refund.ID.String(), UpdateRefundStatusRequest{Status: "想当然"}, "")
	_, ok := AsValidationError(err)
	assert.True(t, ok)

	err = f.service.UpdateStatus(ctx, uuid.NewString(), UpdateRefundStatusRequest{Status: model.RefundStatusDone}, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

package service

import (
	"context"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSocialRecordFixture(t *testing.T) (SocialRecordService, *model.Enterprise) {
	t.Helper()
	db := newTestDB(t)

	enterprise := &model.Enterprise{
		Name:              "南京示例制造有限公司",
		UnifiedSocialCode: "91320100MA1Y7D5H2J",
		LegalPerson:       "陈静",
	}
	require.NoError(t, repository.NewEnterpriseRepository(db).Create(context.Background(), enterprise))

	svc := NewSocialRecordService(
		repository.NewSocialRecordRepository(db),
		repository.NewOperationLogRepository(db),
	)
	return svc, enterprise
}

func TestSocialRecordStats(t *testing.T) {
	svc, enterprise := newSocialRecordFixture(t)
	ctx := context.Background()

	// 张明 holds two insurance rows; the employee count must still see one
	// person.
	seed := []SocialRecordRequest{
		{EnterpriseID: enterprise.ID.String(), EmployeeName: "张明", IDNumber: "110101199001011234", InsuranceType: model.InsurancePension, TotalAmount: dec("1500"), PaymentStatus: model.PaymentStatusPaid, PaymentDate: "2024-06-10"},
		{EnterpriseID: enterprise.ID.String(), EmployeeName: "张明", IDNumber: "110101199001011234", InsuranceType: model.InsuranceMedical, TotalAmount: dec("800"), PaymentStatus: model.PaymentStatusUnpaid},
		{EnterpriseID: enterprise.ID.String(), EmployeeName: "刘芳", IDNumber: "320101199202022345", InsuranceType: model.InsurancePension, TotalAmount: dec("1200"), PaymentStatus: model.PaymentStatusPaid, PaymentDate: "2024-06-12"},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req, "")
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 3, list.Total)
	require.NotNil(t, list.Stats)
	assert.True(t, list.Stats.TotalAmount.Equal(dec("3500")), "total = %s", list.Stats.TotalAmount)
	assert.True(t, list.Stats.PaidAmount.Equal(dec("2700")), "paid = %s", list.Stats.PaidAmount)
	assert.EqualValues(t, 2, list.Stats.EmployeeCount)
}

func TestSocialRecordDeleteExcludesFromStats(t *testing.T) {
	svc, enterprise := newSocialRecordFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, SocialRecordRequest{
		EnterpriseID:  enterprise.ID.String(),
		EmployeeName:  "赵云",
		IDNumber:      "510101199303033456",
		InsuranceType: model.InsuranceInjury,
		TotalAmount:   dec("600"),
		PaymentStatus: model.PaymentStatusPaid,
		PaymentDate:   "2024-06-15",
	}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.String(), ""))

	list, err := svc.List(ctx, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 0, list.Total)
	assert.EqualValues(t, 0, list.Stats.EmployeeCount)
	assert.True(t, list.Stats.TotalAmount.IsZero())

	assert.ErrorIs(t, svc.Delete(ctx, created.ID.String(), ""), ErrNotFound)
}

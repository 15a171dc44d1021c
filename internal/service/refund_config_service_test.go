package service

import (
	"context"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfigService(t *testing.T) RefundConfigService {
	t.Helper()
	db := newTestDB(t)
	return NewRefundConfigService(
		repository.NewRefundConfigRepository(db),
		repository.NewTransactionManager(db),
		repository.NewOperationLogRepository(db),
	)
}

func TestReplaceAllRoundTrip(t *testing.T) {
	svc := newConfigService(t)
	ctx := context.Background()

	rates, err := svc.GetActiveRates(ctx)
	require.NoError(t, err)
	assert.Empty(t, rates)

	err = svc.ReplaceAll(ctx, RefundConfigRequest{
		CompanyRate:  dec("45"),
		PersonalRate: dec("40"),
		LandRate:     dec("35"),
		PropertyRate: dec("30"),
		OtherRate:    dec("25"),
		TotalRate:    dec("35"),
	}, "")
	require.NoError(t, err)

	rates, err = svc.GetActiveRates(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 6)
	assert.True(t, rates[model.ConfigNameCorporate].Equal(dec("45")))
	assert.True(t, rates[model.ConfigNamePersonal].Equal(dec("40")))
	assert.True(t, rates[model.ConfigNameLandUse].Equal(dec("35")))
	assert.True(t, rates[model.ConfigNameProperty].Equal(dec("30")))
	assert.True(t, rates[model.ConfigNameOther].Equal(dec("25")))
	assert.True(t, rates[model.ConfigNameTotal].Equal(dec("35")))
}

func TestReplaceAllSupersedesPreviousGeneration(t *testing.T) {
	svc := newConfigService(t)
	ctx := context.Background()

	first := RefundConfigRequest{
		CompanyRate:  dec("10"),
		PersonalRate: dec("10"),
		LandRate:     dec("10"),
		PropertyRate: dec("10"),
		OtherRate:    dec("10"),
		TotalRate:    dec("10"),
	}
	require.NoError(t, svc.ReplaceAll(ctx, first, ""))

	second := first
	second.TotalRate = dec("50")
	require.NoError(t, svc.ReplaceAll(ctx, second, ""))

	rates, err := svc.GetActiveRates(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 6)
	assert.True(t, rates[model.ConfigNameTotal].Equal(dec("50")))

	// Replaced generations stay on record, inactive.
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 12)
	active := 0
	for _, c := range all {
		if c.IsActive {
			active++
		}
	}
	assert.Equal(t, 6, active)
}

func TestReplaceAllRejectsOutOfRangeRates(t *testing.T) {
	svc := newConfigService(t)
	ctx := context.Background()

	err := svc.ReplaceAll(ctx, RefundConfigRequest{
		CompanyRate:  dec("150"),
		PersonalRate: dec("-1"),
		LandRate:     dec("35"),
		PropertyRate: dec("30"),
		OtherRate:    dec("25"),
		TotalRate:    dec("35"),
	}, "")
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{model.ConfigNameCorporate, model.ConfigNamePersonal}, ve.Fields)

	// A rejected request must not disturb the store.
	rates, err := svc.GetActiveRates(ctx)
	require.NoError(t, err)
	assert.Empty(t, rates)
}

package service

import (
	"context"
	"testing"

	"github.com/praveenm/billing-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDenomination(t *testing.T) {
	ctx := context.Background()

	t.Run("create and list largest first", func(t *testing.T) {
		ts := newTestStore(t)
		svc := ts.denominationService()

		for _, v := range []float64{10, 500, 50} {
			_, err := svc.CreateDenomination(ctx, v)
			require.NoError(t, err)
		}

		denominations, err := svc.ListDenominations(ctx)
		require.NoError(t, err)
		require.Len(t, denominations, 3)
		assert.Equal(t, int64(50000), denominations[0].Value)
		assert.Equal(t, int64(5000), denominations[1].Value)
		assert.Equal(t, int64(1000), denominations[2].Value)
	})

	t.Run("duplicate value conflicts", func(t *testing.T) {
		ts := newTestStore(t)
		svc := ts.denominationService()

		_, err := svc.CreateDenomination(ctx, 50)
		require.NoError(t, err)

		_, err = svc.CreateDenomination(ctx, 50)
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})

	t.Run("rejects non positive values", func(t *testing.T) {
		ts := newTestStore(t)
		svc := ts.denominationService()

		_, err := svc.CreateDenomination(ctx, 0)
		require.Error(t, err)
		_, err = svc.CreateDenomination(ctx, -5)
		require.Error(t, err)
	})

	t.Run("fractional denominations keep cent precision", func(t *testing.T) {
		ts := newTestStore(t)
		svc := ts.denominationService()

		created, err := svc.CreateDenomination(ctx, 0.50)
		require.NoError(t, err)
		assert.Equal(t, int64(50), created.Value)
		assert.Equal(t, 0.50, created.GetValueDecimal())
	})
}

func TestDeleteDenomination(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t)
	svc := ts.denominationService()

	created, err := svc.CreateDenomination(ctx, 100)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDenomination(ctx, created.ID))

	err = svc.DeleteDenomination(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestResolveChange(t *testing.T) {
	ctx := context.Background()

	t.Run("greedy breakdown with residual", func(t *testing.T) {
		ts := newTestStore(t)
		ts.seedDenominations(t, 5000, 1000, 200)
		svc := ts.denominationService()

		resolution, err := svc.ResolveChange(ctx, 64)
		require.NoError(t, err)
		assert.Equal(t, 64.0, resolution.Amount)
		assert.Equal(t, map[string]int{"50": 1, "10": 1, "2": 2}, resolution.Denominations)
		assert.Equal(t, 0.0, resolution.Residual)
	})

	t.Run("uncoverable remainder surfaces as residual", func(t *testing.T) {
		ts := newTestStore(t)
		ts.seedDenominations(t, 500)
		svc := ts.denominationService()

		resolution, err := svc.ResolveChange(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"5": 1}, resolution.Denominations)
		assert.Equal(t, 2.0, resolution.Residual)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		ts := newTestStore(t)
		svc := ts.denominationService()

		_, err := svc.ResolveChange(ctx, -1)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}

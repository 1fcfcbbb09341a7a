package discount_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lacancha/court-booking-backend/discount"
	dc_mocks "github.com/lacancha/court-booking-backend/discount/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServiceDeps(t *testing.T) (*gomock.Controller, *dc_mocks.MockDiscountRepository, *discount.Service, context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := dc_mocks.NewMockDiscountRepository(ctrl)
	svc := discount.NewService(repo)

	return ctrl, repo, svc, context.Background()
}

func TestValidateCode(t *testing.T) {

	t.Run("valid code", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByCode(ctx, "SAVE10").Return(save10(), nil).Times(1)

		v, err := svc.ValidateCode(ctx, "SAVE10", 25000, "2030-06-06", "19:00")

		require.NoError(t, err)
		require.True(t, v.Valid)
		require.Equal(t, 2500, v.Discount)
	})

	t.Run("unknown code is a rejection, not an error", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByCode(ctx, "NOPE").Return(discount.DiscountCode{}, discount.ErrCodeNotFound).Times(1)

		v, err := svc.ValidateCode(ctx, "NOPE", 25000, "2030-06-06", "19:00")

		require.NoError(t, err)
		require.False(t, v.Valid)
		require.Equal(t, "Código de descuento no válido", v.Message)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByCode(ctx, "SAVE10").Return(discount.DiscountCode{}, errors.New("connection lost")).Times(1)

		_, err := svc.ValidateCode(ctx, "SAVE10", 25000, "2030-06-06", "19:00")

		require.Error(t, err)
	})
}

func TestRedeem(t *testing.T) {

	t.Run("passes through to the repository", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().RedeemCode(ctx, "code-1").Return(nil).Times(1)

		require.NoError(t, svc.Redeem(ctx, "code-1"))
	})

	t.Run("limit reached", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().RedeemCode(ctx, "code-1").Return(discount.ErrCodeLimitReached).Times(1)

		require.ErrorIs(t, svc.Redeem(ctx, "code-1"), discount.ErrCodeLimitReached)
	})
}

func TestAvailableCodesFor(t *testing.T) {

	t.Run("filters by window, uses, day and time", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		open := save10()

		exhausted := save10()
		exhausted.Code = "GONE"
		exhausted.MaxUses = 1
		exhausted.UsedCount = 1

		wrongDay := save10()
		wrongDay.Code = "MONDAYS"
		wrongDay.DayRestrictions = []string{"monday"}

		wrongTime := save10()
		wrongTime.Code = "EARLY"
		wrongTime.TimeStart = "10:00"
		wrongTime.TimeEnd = "12:00"

		repo.EXPECT().GetActiveCodes(ctx).
			Return([]discount.DiscountCode{open, exhausted, wrongDay, wrongTime}, nil).Times(1)

		// 2030-06-06 is a Thursday.
		codes, err := svc.AvailableCodesFor(ctx, "2030-06-06", "19:00")

		require.NoError(t, err)
		require.Len(t, codes, 1)
		require.Equal(t, "SAVE10", codes[0].Code)
	})

	t.Run("minimum amount does not exclude a code", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		code := save10()
		code.MinAmount = 1000000

		repo.EXPECT().GetActiveCodes(ctx).Return([]discount.DiscountCode{code}, nil).Times(1)

		codes, err := svc.AvailableCodesFor(ctx, "2030-06-06", "19:00")

		require.NoError(t, err)
		require.Len(t, codes, 1)
	})
}

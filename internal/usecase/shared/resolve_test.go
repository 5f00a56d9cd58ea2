//go:build unit

package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"book-rental-tracker/internal/infra"
	"book-rental-tracker/internal/pkg/errs"
	"book-rental-tracker/internal/usecase/shared"
	"book-rental-tracker/tests/common/builder"
	"book-rental-tracker/tests/mock/storemock"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreErr(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    errs.EntityKind
		wantIs  error
		message string
	}{
		{
			name:    "not found becomes entity miss",
			err:     infra.WrapRepoErr("book not found", nil, infra.KindNotFound),
			kind:    errs.KindBook,
			wantIs:  errs.ErrBookNotFound,
			message: "Book not found",
		},
		{
			name:    "db failure keeps driver message",
			err:     infra.WrapRepoErr("failed to find users", errors.New("connection reset by peer")),
			kind:    errs.KindUser,
			wantIs:  errs.ErrQueryFailed,
			message: "connection reset by peer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := shared.StoreErr(tt.err, tt.kind)

			assert.ErrorIs(t, err, tt.wantIs)
			assert.Equal(t, tt.message, err.Error())
		})
	}

	assert.NoError(t, shared.StoreErr(nil, errs.KindBook))
}

func TestResolveBook(t *testing.T) {
	ctx := context.Background()
	stored := builder.NewBookBuilder().BuildStored(time.Now())

	t.Run("substring lookup", func(t *testing.T) {
		store := new(storemock.MockBookStore)
		store.On("FindOne", mock.Anything, shared.BookFilter{NameContains: lo.ToPtr("go prog")}).Return(stored, nil)

		got, err := shared.ResolveBook(ctx, store, "go prog")

		require.NoError(t, err)
		assert.Same(t, stored, got)
		store.AssertExpectations(t)
	})

	t.Run("exact lookup", func(t *testing.T) {
		store := new(storemock.MockBookStore)
		store.On("FindOne", mock.Anything, shared.BookFilter{NameEquals: lo.ToPtr(stored.Name())}).Return(stored, nil)

		got, err := shared.ResolveBookExact(ctx, store, stored.Name())

		require.NoError(t, err)
		assert.Same(t, stored, got)
		store.AssertExpectations(t)
	})

	t.Run("miss", func(t *testing.T) {
		store := new(storemock.MockBookStore)
		store.On("FindOne", mock.Anything, mock.Anything).
			Return(nil, infra.WrapRepoErr("book not found", nil, infra.KindNotFound))

		got, err := shared.ResolveBook(ctx, store, "missing")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrBookNotFound)
	})
}

func TestResolveUser(t *testing.T) {
	store := new(storemock.MockUserStore)
	store.On("FindOne", mock.Anything, shared.UserFilter{NameContains: lo.ToPtr("ali")}).
		Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

	got, err := shared.ResolveUser(context.Background(), store, "ali")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
	store.AssertExpectations(t)
}

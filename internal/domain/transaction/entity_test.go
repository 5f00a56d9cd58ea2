//go:build unit

package transaction_test

import (
	"testing"
	"time"

	"book-rental-tracker/internal/domain/transaction"
	"book-rental-tracker/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issued = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDaysRented(t *testing.T) {
	tests := []struct {
		name     string
		returned time.Time
		want     int64
	}{
		{name: "same instant", returned: issued, want: 0},
		{name: "one millisecond starts a day", returned: issued.Add(time.Millisecond), want: 1},
		{name: "exactly three days", returned: issued.AddDate(0, 0, 3), want: 3},
		{name: "partial fourth day", returned: issued.AddDate(0, 0, 3).Add(time.Hour), want: 4},
		{name: "returned before issue", returned: issued.Add(-36 * time.Hour), want: -1},
		{name: "returned two days before issue", returned: issued.AddDate(0, 0, -2), want: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transaction.DaysRented(issued, tt.returned))
		})
	}
}

func TestTransaction_Close(t *testing.T) {
	t.Run("new transaction is open", func(t *testing.T) {
		tx := transaction.NewTransaction(uuid.New(), uuid.New(), issued)

		assert.True(t, tx.IsOpen())
		assert.Equal(t, transaction.StatusOpen, tx.Status())
		assert.Nil(t, tx.ReturnDate())
		assert.Nil(t, tx.RentGenerated())
		assert.Zero(t, tx.DaysRented())
	})

	t.Run("three days at ten per day costs thirty", func(t *testing.T) {
		tx := transaction.NewTransaction(uuid.New(), uuid.New(), issued)

		require.NoError(t, tx.Close(issued.AddDate(0, 0, 3), 10))

		assert.False(t, tx.IsOpen())
		assert.Equal(t, transaction.StatusClosed, tx.Status())
		require.NotNil(t, tx.ReturnDate())
		require.NotNil(t, tx.RentGenerated())
		assert.Equal(t, issued.AddDate(0, 0, 3), *tx.ReturnDate())
		assert.InDelta(t, 30.0, *tx.RentGenerated(), 0)
		assert.Equal(t, int64(3), tx.DaysRented())
	})

	t.Run("same day return is free", func(t *testing.T) {
		tx := transaction.NewTransaction(uuid.New(), uuid.New(), issued)

		require.NoError(t, tx.Close(issued, 10))

		assert.InDelta(t, 0.0, *tx.RentGenerated(), 0)
	})

	t.Run("early return date yields negative rent", func(t *testing.T) {
		tx := transaction.NewTransaction(uuid.New(), uuid.New(), issued)

		require.NoError(t, tx.Close(issued.AddDate(0, 0, -2), 5))

		assert.InDelta(t, -10.0, *tx.RentGenerated(), 0)
	})

	t.Run("closed transaction cannot close again", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().Returned(issued.AddDate(0, 0, 1), 10).BuildDomain()

		err := tx.Close(issued.AddDate(0, 0, 5), 10)

		assert.ErrorIs(t, err, transaction.ErrAlreadyClosed)
		assert.InDelta(t, 10.0, *tx.RentGenerated(), 0)
	})
}

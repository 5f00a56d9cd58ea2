//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"book-rental-tracker/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("relation \"books\" does not exist")

	t.Run("defaults to db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to find books", cause)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "DB_FAILURE: failed to find books")
	})

	t.Run("explicit kind", func(t *testing.T) {
		err := infra.WrapRepoErr("book not found", nil, infra.KindNotFound)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, "NOT_FOUND: book not found", err.Error())
	})

	t.Run("plain errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(cause, infra.KindDBFailure))
	})
}

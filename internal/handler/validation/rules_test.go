//go:build unit

package validation_test

import (
	"testing"

	"book-rental-tracker/internal/handler/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedRequest struct {
	Name string `binding:"notblank"`
}

func TestNotBlank(t *testing.T) {
	require.NoError(t, validation.Register())

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "plain", value: "Dune"},
		{name: "padded", value: "  Dune "},
		{name: "empty", value: "", wantErr: true},
		{name: "whitespace only", value: " \t ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(namedRequest{Name: tt.value})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

//go:build unit

package bootstrap

import (
	"bytes"
	"log/slog"
	"testing"

	"book-rental-tracker/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestLogConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := config.NewTestConfig()
	cfg.DB.Password = "s3cret"

	logConfig(cfg, logger)

	out := buf.String()
	assert.Contains(t, out, "port=8889")
	assert.Contains(t, out, "db.name=test_db")
	assert.Contains(t, out, "rate_limit.enabled=false")
	assert.Contains(t, out, "fanout_limit=8")
	assert.NotContains(t, out, "s3cret")
}

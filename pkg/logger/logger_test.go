package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jacobisaldana/signature-mail/pkg/logger"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestNewDefaultsToJSONInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	assert.Empty(t, buf.Bytes())

	log.Info("visible", slog.String("k", "v"))
	record := logLine(t, &buf)
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "v", record["k"])
}

func TestNewTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestWithServiceTagsEveryRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithService("signature-mail", "production"))

	log.Info("hello")
	record := logLine(t, &buf)
	assert.Equal(t, "signature-mail", record["service"])
	assert.Equal(t, "production", record["env"])
}

func TestWithContextValueInjectsRequestID(t *testing.T) {
	t.Parallel()

	type ctxKey struct{}

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithContextValue("request_id", ctxKey{}))

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-123")
	log.InfoContext(ctx, "handled")

	record := logLine(t, &buf)
	assert.Equal(t, "req-123", record["request_id"])
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewFromConfig(
		logger.Config{Level: "debug", Format: logger.FormatJSON},
		logger.WithOutput(&buf),
	)

	log.Debug("detailed")
	record := logLine(t, &buf)
	assert.Equal(t, "detailed", record["msg"])
}

func TestErrorAttr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	attr := logger.Error(assert.AnError)
	assert.Equal(t, "error", attr.Key)
}

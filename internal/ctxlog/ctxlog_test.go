package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_Missing(t *testing.T) {
	logger := FromContext(context.Background())
	assert.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Info("dropped") })
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := With(WithLogger(context.Background(), base), "kind", "team")
	FromContext(ctx).Info("loaded")

	assert.Contains(t, buf.String(), "kind=team")
	assert.Contains(t, buf.String(), "msg=loaded")
}

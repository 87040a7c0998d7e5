package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_Fallback(t *testing.T) {
	t.Parallel()

	require.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith_AddsAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	ctx, derived := With(ctx, "alg", "shift")
	derived.Info("derived")
	FromContext(ctx).Info("from context")

	out := buf.String()
	assert.Contains(t, out, "msg=derived alg=shift")
	assert.Contains(t, out, `msg="from context" alg=shift`)
}

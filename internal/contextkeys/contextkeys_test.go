package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerFromContext_FallsBackToDiscard(t *testing.T) {
	logger := LoggerFromContext(context.Background())
	require.NotNil(t, logger)
	require.NotPanics(t, func() {
		logger.WithFields(nil).Error("boom", nil, nil)
	})
}

func TestTraceID(t *testing.T) {
	require.Empty(t, TraceIDFromContext(context.Background()))

	ctx := ContextWithTraceID(context.Background(), "abc")
	require.Equal(t, "abc", TraceIDFromContext(ctx))
}

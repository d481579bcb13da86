package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopService_DropsSends(t *testing.T) {
	svc := NewNoopService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	require.NoError(t, svc.SendSingleNotification(ctx, "token", "title", "body", nil))

	success, failure, invalid, err := svc.SendBatchNotification(ctx, []string{"a", "b"}, "title", "body", nil)
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
}

package notification

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/service"
)

// noopService is a no-op implementation when Firebase is not configured.
type noopService struct {
	logger *slog.Logger
}

// NewNoopService creates a push service that drops every send.
func NewNoopService(logger *slog.Logger) service.PushService {
	return &noopService{logger: logger}
}

func (s *noopService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping",
		slog.String("title", title),
	)

	return nil
}

func (s *noopService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping batch",
		slog.String("title", title),
		slog.Int("tokens", len(tokens)),
	)

	return 0, 0, nil, nil
}

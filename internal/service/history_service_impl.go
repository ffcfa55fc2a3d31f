package service

import (
	"context"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/repository"
)

type historyService struct {
	attempts repository.AttemptRepo
}

// NewHistoryService exposes the attempt log.
func NewHistoryService(attempts repository.AttemptRepo) HistoryService {
	return &historyService{attempts: attempts}
}

func (s *historyService) ListRecent(ctx context.Context, limit int) ([]*domain.AttemptLog, error) {
	return s.attempts.ListRecent(ctx, limit)
}

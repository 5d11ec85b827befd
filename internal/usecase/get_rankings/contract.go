package get_rankings

import (
	"context"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetActiveAgents(ctx context.Context) ([]*domain.AgentProfile, error)
	GetClients(ctx context.Context) ([]*domain.ClientProfile, error)
}

// FollowerServiceClient интерфейс клиента для FollowerService
type FollowerServiceClient interface {
	GetFollowerCountsWithGracefulDegradation(ctx context.Context, agentIDs []string) (map[string]int, error)
}

// RankingsCache интерфейс кэша снимков рейтинга
type RankingsCache interface {
	Get(ctx context.Context) (*domain.Rankings, error)
	Set(ctx context.Context, rankings *domain.Rankings) error
}

// MetricsRecorder интерфейс для учета отданных рейтингов
type MetricsRecorder interface {
	ObserveRankingsServed(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

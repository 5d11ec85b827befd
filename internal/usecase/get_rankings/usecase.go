package get_rankings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
	rankingsCache "github.com/m04kA/SMC-RealtyService/internal/infra/cache/rankings"
)

// UseCase use case для получения рейтинга агентов
type UseCase struct {
	profileRepo    ProfileRepository
	followerClient FollowerServiceClient
	cache          RankingsCache
	metrics        MetricsRecorder
	areas          []string
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// cache и metrics могут быть nil
func NewUseCase(
	profileRepo ProfileRepository,
	followerClient FollowerServiceClient,
	cache RankingsCache,
	metrics MetricsRecorder,
	areas []string,
	logger Logger,
) *UseCase {
	return &UseCase{
		profileRepo:    profileRepo,
		followerClient: followerClient,
		cache:          cache,
		metrics:        metrics,
		areas:          append([]string(nil), areas...),
		logger:         logger,
	}
}

// Execute возвращает рейтинг из кэша или вычисляет его заново
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRankings: refresh=%t", req.Refresh)

	if !req.Refresh {
		if cached := uc.fromCache(ctx); cached != nil {
			uc.observe(SourceCache)
			return &Response{Rankings: cached, Source: SourceCache}, nil
		}
	}

	// 1. Активные агенты и клиенты
	agents, err := uc.profileRepo.GetActiveAgents(ctx)
	if err != nil {
		uc.logger.Error("GetRankings: failed to get active agents: %v", err)
		return nil, fmt.Errorf("%w: failed to get active agents: %v", ErrInternal, err)
	}

	clients, err := uc.profileRepo.GetClients(ctx)
	if err != nil {
		uc.logger.Error("GetRankings: failed to get clients: %v", err)
		return nil, fmt.Errorf("%w: failed to get clients: %v", ErrInternal, err)
	}

	// 2. Количество подписчиков одним запросом
	counts := uc.followerCounts(ctx, agents)

	// 3. Рейтинг
	rankings := Rank(agents, uc.areas, func(agentID string) int {
		return counts[agentID]
	}, clients)

	// 4. Кэш не влияет на результат запроса
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, rankings); err != nil {
			uc.logger.Warn("GetRankings: failed to store rankings in cache: %v", err)
		}
	}

	uc.observe(SourceComputed)
	uc.logger.Info("GetRankings: computed rankings for %d agents, %d areas, %d clients",
		len(rankings.Global), len(rankings.ByArea), len(clients))

	return &Response{Rankings: rankings, Source: SourceComputed}, nil
}

func (uc *UseCase) fromCache(ctx context.Context) *domain.Rankings {
	if uc.cache == nil {
		return nil
	}

	cached, err := uc.cache.Get(ctx)
	if err != nil {
		if !errors.Is(err, rankingsCache.ErrCacheMiss) {
			uc.logger.Warn("GetRankings: cache unavailable, computing rankings: %v", err)
		}
		return nil
	}

	uc.logger.Info("GetRankings: served from cache")
	return cached
}

// followerCounts возвращает пустую карту при недоступности FollowerService: все значения считаются нулевыми
func (uc *UseCase) followerCounts(ctx context.Context, agents []*domain.AgentProfile) map[string]int {
	ids := make([]string, 0, len(agents))
	for _, a := range agents {
		if a != nil {
			ids = append(ids, a.UserID)
		}
	}

	counts, err := uc.followerClient.GetFollowerCountsWithGracefulDegradation(ctx, ids)
	if err != nil {
		uc.logger.Warn("GetRankings: follower counts unavailable, using zero for all agents: %v", err)
		return map[string]int{}
	}

	return counts
}

func (uc *UseCase) observe(source string) {
	if uc.metrics != nil {
		uc.metrics.ObserveRankingsServed(source)
	}
}

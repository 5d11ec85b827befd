package get_rankings

import (
	"context"

	getRankings "github.com/m04kA/SMC-RealtyService/internal/usecase/get_rankings"
)

type GetRankingsUseCase interface {
	Execute(ctx context.Context, req *getRankings.Request) (*getRankings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

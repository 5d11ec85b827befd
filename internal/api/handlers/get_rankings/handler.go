package get_rankings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RealtyService/internal/api/handlers"
	getRankings "github.com/m04kA/SMC-RealtyService/internal/usecase/get_rankings"
)

const msgInvalidRefresh = "некорректное значение refresh, ожидается true или false"

type Handler struct {
	useCase GetRankingsUseCase
	logger  Logger
}

func NewHandler(useCase GetRankingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rankings
// Query params: refresh (optional, bool) - пересчитать рейтинг, минуя кэш
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	refresh := false
	if raw := r.URL.Query().Get("refresh"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /rankings - Invalid refresh value: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidRefresh)
			return
		}
		refresh = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getRankings.Request{Refresh: refresh})
	if err != nil {
		h.logger.Error("GET /rankings - Failed to get rankings: refresh=%t, error=%v", refresh, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rankings - Rankings retrieved successfully: agents=%d, areas=%d, source=%s",
		len(result.Rankings.Global), len(result.Rankings.ByArea), result.Source)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

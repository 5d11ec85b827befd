package get_rankings

import "github.com/m04kA/SMC-RealtyService/internal/domain"

// Источники рейтинга
const (
	SourceCache    = "cache"
	SourceComputed = "computed"
)

// Request модель запроса рейтинга
type Request struct {
	Refresh bool // Пересчитать рейтинг, минуя кэш
}

// Response модель ответа с рейтингом
type Response struct {
	Rankings *domain.Rankings
	Source   string // SourceCache или SourceComputed
}

package followerservice

// FollowerCountsRequest запрос количества подписчиков агентов
type FollowerCountsRequest struct {
	AgentIDs []string `json:"agent_ids"`
}

// FollowerCountsResponse количество подписчиков по ID агента
// Агенты, которых сервис не знает, в ответ не попадают
type FollowerCountsResponse struct {
	Counts map[string]int `json:"counts"`
}

// ErrorResponse модель ошибки от FollowerService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

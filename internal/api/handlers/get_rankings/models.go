package get_rankings

import (
	"github.com/m04kA/SMC-RealtyService/internal/domain"
	getRankings "github.com/m04kA/SMC-RealtyService/internal/usecase/get_rankings"
)

// RankingsResponse HTTP response model
type RankingsResponse struct {
	Global []AgentRanking `json:"global"`
	ByArea []AreaRanking  `json:"byArea"`
	Source string         `json:"source"` // "cache" или "computed"
}

// AgentRanking позиция агента в рейтинге
type AgentRanking struct {
	AgentID       string   `json:"agentId"`
	Name          string   `json:"name"`
	Photo         string   `json:"photo,omitempty"`
	Username      string   `json:"username"`
	Areas         []string `json:"areas"`
	FollowerCount int      `json:"followerCount"`
	Rank          int      `json:"rank"`
}

// AreaRanking рейтинг района
type AreaRanking struct {
	Area   string         `json:"area"`
	Agents []AgentRanking `json:"agents"`
	Stats  AreaStats      `json:"stats"`
}

// AreaStats статистика района
type AreaStats struct {
	AgentCount  int `json:"agentCount"`
	ClientCount int `json:"clientCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRankings.Response) *RankingsResponse {
	byArea := make([]AreaRanking, len(resp.Rankings.ByArea))
	for i, area := range resp.Rankings.ByArea {
		byArea[i] = AreaRanking{
			Area:   area.Area,
			Agents: fromEntries(area.Agents),
			Stats: AreaStats{
				AgentCount:  area.Stats.AgentCount,
				ClientCount: area.Stats.ClientCount,
			},
		}
	}

	return &RankingsResponse{
		Global: fromEntries(resp.Rankings.Global),
		ByArea: byArea,
		Source: resp.Source,
	}
}

func fromEntries(entries []domain.AgentRankingEntry) []AgentRanking {
	result := make([]AgentRanking, len(entries))
	for i, e := range entries {
		areas := e.Areas
		if areas == nil {
			areas = []string{}
		}
		result[i] = AgentRanking{
			AgentID:       e.AgentID,
			Name:          e.Name,
			Photo:         e.Photo,
			Username:      e.Username,
			Areas:         areas,
			FollowerCount: e.FollowerCount,
			Rank:          e.Rank,
		}
	}
	return result
}

package get_rankings

import (
	"slices"
	"sort"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
)

// Rank строит общий рейтинг агентов и рейтинги по районам
//
// Агенты упорядочиваются по количеству подписчиков по убыванию, при равенстве
// сохраняется входной порядок профилей. Ранг - позиция в списке начиная с 1,
// без пропусков. Для каждого района из areas (в их порядке) берется подпоследовательность
// общего рейтинга, обрезается до domain.AreaLeaderboardSize и ранжируется заново.
// AgentCount района считается по всем агентам района, ClientCount - по клиентам,
// у которых район входит в интересующие.
//
// Функция чистая: входные данные не изменяются, followerCountOf вызывается один раз на профиль.
func Rank(
	profiles []*domain.AgentProfile,
	areas []string,
	followerCountOf func(agentID string) int,
	clients []*domain.ClientProfile,
) *domain.Rankings {
	global := rankGlobal(profiles, followerCountOf)

	byArea := make([]domain.AreaRanking, 0, len(areas))
	for _, area := range areas {
		byArea = append(byArea, rankArea(global, area, clients))
	}

	return &domain.Rankings{
		Global: global,
		ByArea: byArea,
	}
}

func rankGlobal(profiles []*domain.AgentProfile, followerCountOf func(agentID string) int) []domain.AgentRankingEntry {
	entries := make([]domain.AgentRankingEntry, 0, len(profiles))
	for _, p := range profiles {
		if p == nil {
			continue
		}
		entries = append(entries, domain.AgentRankingEntry{
			AgentID:       p.UserID,
			Name:          p.Name,
			Photo:         p.PhotoURL,
			Username:      p.Username(),
			Areas:         slices.Clone(p.Areas),
			FollowerCount: followerCountOf(p.UserID),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].FollowerCount > entries[j].FollowerCount
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

func rankArea(global []domain.AgentRankingEntry, area string, clients []*domain.ClientProfile) domain.AreaRanking {
	agents := make([]domain.AgentRankingEntry, 0, domain.AreaLeaderboardSize)
	agentCount := 0

	for _, entry := range global {
		if !entry.ServesArea(area) {
			continue
		}
		agentCount++
		if len(agents) < domain.AreaLeaderboardSize {
			e := entry
			e.Areas = slices.Clone(entry.Areas)
			e.Rank = len(agents) + 1
			agents = append(agents, e)
		}
	}

	clientCount := 0
	for _, c := range clients {
		if c != nil && c.IsInterestedIn(area) {
			clientCount++
		}
	}

	return domain.AreaRanking{
		Area:   area,
		Agents: agents,
		Stats: domain.AreaStats{
			AgentCount:  agentCount,
			ClientCount: clientCount,
		},
	}
}

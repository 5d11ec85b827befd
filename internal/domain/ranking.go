package domain

import (
	"slices"
	"time"
)

// AgentProfile профиль агента по недвижимости
type AgentProfile struct {
	UserID             string
	Name               string
	PhotoURL           string
	Areas              []string
	SubscriptionStatus string
	SubscriptionTier   string
	CreatedAt          time.Time
}

// IsActive returns true if the agent has an active subscription
func (p *AgentProfile) IsActive() bool {
	return p.SubscriptionStatus == SubscriptionStatusActive
}

// Username возвращает публичное имя агента: префикс и первые символы идентификатора
func (p *AgentProfile) Username() string {
	id := p.UserID
	if len(id) > UsernameIDLength {
		id = id[:UsernameIDLength]
	}
	return UsernamePrefix + id
}

// ClientProfile профиль клиента с интересующими его районами
type ClientProfile struct {
	UserID          string
	Name            string
	AreasOfInterest []string
}

// IsInterestedIn returns true if the client follows listings in the area
func (c *ClientProfile) IsInterestedIn(area string) bool {
	return slices.Contains(c.AreasOfInterest, area)
}

// AgentRankingEntry позиция агента в рейтинге
type AgentRankingEntry struct {
	AgentID       string
	Name          string
	Photo         string
	Username      string
	Areas         []string
	FollowerCount int
	Rank          int // 1-based, без пропусков; равные значения упорядочены по входному порядку
}

// ServesArea returns true if the agent works in the area
func (e *AgentRankingEntry) ServesArea(area string) bool {
	return slices.Contains(e.Areas, area)
}

// AreaStats статистика района
type AreaStats struct {
	AgentCount  int // Все агенты района, без ограничения топом
	ClientCount int
}

// AreaRanking рейтинг агентов в одном районе
type AreaRanking struct {
	Area   string
	Agents []AgentRankingEntry
	Stats  AreaStats
}

// Rankings общий рейтинг и рейтинги по районам
type Rankings struct {
	Global []AgentRankingEntry
	ByArea []AreaRanking
}

package followerservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с FollowerService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента FollowerService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetFollowerCounts получает количество подписчиков для списка агентов одним запросом
func (c *Client) GetFollowerCounts(ctx context.Context, agentIDs []string) (map[string]int, error) {
	if len(agentIDs) == 0 {
		return map[string]int{}, nil
	}

	body, err := json.Marshal(FollowerCountsRequest{AgentIDs: agentIDs})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/followers/counts", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid agent IDs", ErrInvalidResponse)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var payload FollowerCountsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	counts := make(map[string]int, len(payload.Counts))
	for id, count := range payload.Counts {
		if count < 0 {
			count = 0
		}
		counts[id] = count
	}

	return counts, nil
}

// GetFollowerCountsWithGracefulDegradation получает количество подписчиков с graceful degradation
// При недоступности FollowerService возвращает ErrServiceDegraded, рейтинг строится с нулевыми значениями
func (c *Client) GetFollowerCountsWithGracefulDegradation(ctx context.Context, agentIDs []string) (map[string]int, error) {
	c.log.Info("Fetching follower counts for %d agents", len(agentIDs))

	counts, err := c.GetFollowerCounts(ctx, agentIDs)
	if err != nil {
		c.log.Error("FollowerService unavailable, applying graceful degradation for %d agents: %v", len(agentIDs), err)
		return nil, fmt.Errorf("%w: agents=%d, error=%v", ErrServiceDegraded, len(agentIDs), err)
	}

	c.log.Info("Successfully fetched follower counts for %d of %d agents", len(counts), len(agentIDs))
	return counts, nil
}

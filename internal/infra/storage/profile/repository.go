package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
	"github.com/m04kA/SMC-RealtyService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RealtyService/pkg/psqlbuilder"
)

const (
	agentsTable  = "agent_profiles"
	clientsTable = "client_profiles"
)

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий профилей агентов и клиентов (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveAgents получает агентов с активной подпиской, сначала новые
// Порядок важен: при равном количестве подписчиков он сохраняется в рейтинге
func (r *Repository) GetActiveAgents(ctx context.Context) ([]*domain.AgentProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := activeAgentsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveAgents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveAgents - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	agents := make([]*domain.AgentProfile, 0)
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveAgents - scan row: %v", ErrScanRow, err)
		}
		agents = append(agents, agent)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveAgents - rows error: %v", ErrScanRow, err)
	}

	return agents, nil
}

// GetClients получает профили клиентов с интересующими их районами
func (r *Repository) GetClients(ctx context.Context) ([]*domain.ClientProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id", "name", "areas_of_interest").
		From(clientsTable).
		OrderBy("user_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetClients - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetClients - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.ClientProfile, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetClients - scan row: %v", ErrScanRow, err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetClients - rows error: %v", ErrScanRow, err)
	}

	return clients, nil
}

func activeAgentsQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"user_id",
		"name",
		"photo_url",
		"areas",
		"subscription_status",
		"subscription_tier",
		"created_at",
	).
		From(agentsTable).
		Where(squirrel.Eq{"subscription_status": domain.SubscriptionStatusActive}).
		OrderBy("created_at DESC")
}

func scanAgent(row scanner) (*domain.AgentProfile, error) {
	var agent domain.AgentProfile
	var name, photoURL, tier sql.NullString
	var areas pq.StringArray
	var createdAt sql.NullTime

	err := row.Scan(
		&agent.UserID,
		&name,
		&photoURL,
		&areas,
		&agent.SubscriptionStatus,
		&tier,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	agent.Name = name.String
	agent.PhotoURL = photoURL.String
	agent.SubscriptionTier = tier.String
	agent.Areas = nonNilStrings(areas)
	agent.CreatedAt = createdAt.Time

	return &agent, nil
}

func scanClient(row scanner) (*domain.ClientProfile, error) {
	var client domain.ClientProfile
	var name sql.NullString
	var areas pq.StringArray

	if err := row.Scan(&client.UserID, &name, &areas); err != nil {
		return nil, err
	}

	client.Name = name.String
	client.AreasOfInterest = nonNilStrings(areas)

	return &client, nil
}

func nonNilStrings(values pq.StringArray) []string {
	if values == nil {
		return []string{}
	}
	return []string(values)
}

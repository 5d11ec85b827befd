package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rowStub struct {
	values []interface{}
}

func (r rowStub) Scan(dest ...interface{}) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case interface{ Scan(interface{}) error }:
			if err := p.Scan(r.values[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func TestActiveAgentsQuery(t *testing.T) {
	query, args, err := activeAgentsQuery().ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "FROM agent_profiles")
	assert.Contains(t, query, "WHERE subscription_status = $1")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Equal(t, []interface{}{"active"}, args)
}

func TestScanAgent(t *testing.T) {
	row := rowStub{values: []interface{}{
		"0123456789", "Jane", nil, []byte(`{Vancouver,"North Vancouver"}`), "active", "premium", nil,
	}}

	agent, err := scanAgent(row)

	require.NoError(t, err)
	assert.Equal(t, "0123456789", agent.UserID)
	assert.Equal(t, "Jane", agent.Name)
	assert.Empty(t, agent.PhotoURL)
	assert.Equal(t, []string{"Vancouver", "North Vancouver"}, agent.Areas)
	assert.Equal(t, "premium", agent.SubscriptionTier)
	assert.True(t, agent.IsActive())
}

func TestScanClient_NullAreas(t *testing.T) {
	row := rowStub{values: []interface{}{"c1", "Bob", nil}}

	client, err := scanClient(row)

	require.NoError(t, err)
	assert.Equal(t, "Bob", client.Name)
	assert.NotNil(t, client.AreasOfInterest)
	assert.False(t, client.IsInterestedIn("Vancouver"))
}

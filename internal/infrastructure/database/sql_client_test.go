package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenSQL_SQLite(t *testing.T) {
	db, err := OpenSQL(context.Background(), "sqlite", "file:open_sql_test?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestOpenSQL_UnknownBackend(t *testing.T) {
	_, err := OpenSQL(context.Background(), "mongo", "x", nil)
	assert.Error(t, err)
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), DynamoDBOptions{
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}

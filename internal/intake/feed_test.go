package intake

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSQLFeed_RejectsBadTableName(t *testing.T) {
	_, err := NewSQLFeed("mysql", "dsn", "intake; DROP TABLE tickets", "general", 100)
	require.Error(t, err)
	require.ErrorContains(t, err, "invalid external feed table name")
}

func TestNewSQLFeed_RejectsUnknownDriver(t *testing.T) {
	_, err := NewSQLFeed("oracle", "dsn", "intake_records", "general", 100)
	require.Error(t, err)
	require.ErrorContains(t, err, "unsupported external feed driver")
}

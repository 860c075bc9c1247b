package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationsToRun(t *testing.T) {
	// Arrange
	all := []Migration{
		{Key: "2024-01-01-create-users"},
		{Key: "2024-03-15-add-user-status"},
		{Key: "2024-06-02-backfill-roles"},
	}

	// Act
	toRun := migrationsToRun(nil, all)

	// Assert
	require.Len(t, toRun, 3)

	// Act
	toRun = migrationsToRun([]string{"2024-01-01-create-users", "2024-03-15-add-user-status"}, all)

	// Assert
	require.Len(t, toRun, 1)
	require.Equal(t, "2024-06-02-backfill-roles", toRun[0].Key)

	// Act
	toRun = migrationsToRun([]string{"2024-01-01-create-users", "2024-03-15-add-user-status", "2024-06-02-backfill-roles"}, all)

	// Assert
	require.Empty(t, toRun)
}

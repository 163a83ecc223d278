package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUsers(t *testing.T) {
	t.Run("parses multiple entries", func(t *testing.T) {
		users, err := ParseUsers("alice:Alice Jones:$2a$10$abc,bob:Bob:$2a$10$def")

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].Username)
		assert.Equal(t, "Alice Jones", users[0].Name)
		assert.Equal(t, "$2a$10$abc", users[0].PasswordHash)
		assert.Equal(t, "bob", users[1].Username)
	})

	t.Run("empty input yields no users", func(t *testing.T) {
		users, err := ParseUsers("  ")

		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("entry without hash is rejected", func(t *testing.T) {
		_, err := ParseUsers("alice:Alice")

		assert.Error(t, err)
	})

	t.Run("entry without username is rejected", func(t *testing.T) {
		_, err := ParseUsers(":Alice:$2a$10$abc")

		assert.Error(t, err)
	})
}

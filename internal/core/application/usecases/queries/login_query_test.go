package queries_test

import (
	"testing"

	"eats/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoginQuery_Valid(t *testing.T) {
	query, err := queries.NewLoginQuery("alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, query.Validate())
	assert.Equal(t, "alice@example.com", query.Email())
	assert.Equal(t, "s3cret-pass", query.Password())
}

func TestNewLoginQuery_TrimsEmail(t *testing.T) {
	query, err := queries.NewLoginQuery("  alice@example.com  ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", query.Email())
}

func TestNewLoginQuery_MissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "s3cret-pass"},
		{"blank email", "   ", "s3cret-pass"},
		{"empty password", "alice@example.com", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewLoginQuery(tt.email, tt.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, queries.ErrCredentialsAreRequired)
		})
	}
}

func TestLoginQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.LoginQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrLoginQueryIsNotConstructed)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"defaults to customer", "", "customer", false},
		{"customer", "customer", "customer", false},
		{"admin", "admin", "admin", false},
		{"staff", " staff ", "staff", false},
		{"unknown", "superuser", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := NewRole(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role.String())
		})
	}
}

func TestNewEmail(t *testing.T) {
	t.Run("normalises to lower case", func(t *testing.T) {
		email, err := NewEmail(" Ali@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "ali@example.com", email.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := NewEmail("   ")
		assert.Error(t, err)
	})

	t.Run("rejects malformed", func(t *testing.T) {
		_, err := NewEmail("not-an-email")
		assert.Error(t, err)
	})
}

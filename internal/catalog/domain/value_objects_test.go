package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiredText(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"plain", "Karachi Spice", "Karachi Spice", false},
		{"trims whitespace", "  Biryani  ", "Biryani", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRequiredText("name", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "name is required")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewRating(t *testing.T) {
	tests := []struct {
		value   float64
		wantErr bool
	}{
		{0, false},
		{5, false},
		{4.5, false},
		{-0.1, true},
		{5.1, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.value), func(t *testing.T) {
			got, err := NewRating(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, got.Float64())
		})
	}
}

func TestNewImageList(t *testing.T) {
	t.Run("accepts exactly 30 entries", func(t *testing.T) {
		values := make([]string, 30)
		for i := range values {
			values[i] = fmt.Sprintf("/images/photo%d.png", i)
		}
		list, err := NewImageList(values, 0, 30)
		require.NoError(t, err)
		assert.Len(t, list.Strings(), 30)
	})

	t.Run("rejects 31 entries", func(t *testing.T) {
		values := make([]string, 31)
		for i := range values {
			values[i] = fmt.Sprintf("/images/photo%d.png", i)
		}
		_, err := NewImageList(values, 0, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at most 30")
	})

	t.Run("trims entries", func(t *testing.T) {
		list, err := NewImageList([]string{"  /images/a.png "}, 0, 30)
		require.NoError(t, err)
		assert.Equal(t, []string{"/images/a.png"}, list.Strings())
	})

	t.Run("rejects blank entries", func(t *testing.T) {
		_, err := NewImageList([]string{"/images/a.png", "   "}, 0, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty entries")
	})

	t.Run("empty list allowed under min 0 profile", func(t *testing.T) {
		list, err := NewImageList(nil, 0, 30)
		require.NoError(t, err)
		assert.Empty(t, list.Strings())
	})

	t.Run("empty list rejected under min 1 profile", func(t *testing.T) {
		_, err := NewImageList(nil, 1, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 1")
	})
}

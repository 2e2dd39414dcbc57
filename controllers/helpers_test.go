package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("42"))
	assert.True(t, isDigits("0"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("4a"))
	assert.False(t, isDigits("-1"))
}

func TestParseDate(t *testing.T) {
	fixed := time.Date(2024, 8, 15, 13, 45, 12, 0, time.UTC)
	orig := nowFn
	nowFn = func() time.Time { return fixed }
	defer func() { nowFn = orig }()

	t.Run("empty falls back to today at midnight", func(t *testing.T) {
		d, err := parseDate("")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("valid date", func(t *testing.T) {
		d, err := parseDate("2024-01-31")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := parseDate("31/01/2024")
		assert.Error(t, err)
	})
}

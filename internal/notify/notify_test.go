package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_DrainClears(t *testing.T) {
	c := NewCenter(0, nil)

	c.Success("Book created successfully")
	c.Error("Failed to fetch books")

	got := c.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, LevelSuccess, got[0].Level)
	assert.Equal(t, "Success", got[0].Title)
	assert.Equal(t, "Book created successfully", got[0].Description)
	assert.Equal(t, LevelError, got[1].Level)
	assert.Equal(t, "Error", got[1].Title)
	assert.NotEqual(t, got[0].ID, got[1].ID)

	assert.Empty(t, c.Drain())
}

func TestCenter_Expiry(t *testing.T) {
	c := NewCenter(5*time.Second, nil)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Error("old")
	now = now.Add(3 * time.Second)
	c.Success("new")
	now = now.Add(3 * time.Second)

	pending := c.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "new", pending[0].Description)

	got := c.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Description)
}

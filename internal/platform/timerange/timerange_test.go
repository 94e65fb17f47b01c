package timerange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("RFC 3339 bounds", func(t *testing.T) {
		r, err := Parse("2024-03-01T00:00:00Z", "2024-03-31T23:59:59.999Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), r.Begin)
		assert.Equal(t, 999*int(time.Millisecond), r.End.Nanosecond())
	})

	t.Run("Date-only end covers the whole day", func(t *testing.T) {
		r, err := Parse("2024-03-01", "2024-03-01")
		require.NoError(t, err)
		assert.True(t, r.End.After(r.Begin))
		assert.Equal(t, 23, r.End.Hour())
	})

	for name, bounds := range map[string][2]string{
		"Missing begin":   {"", "2024-03-01"},
		"Missing end":     {"2024-03-01", " "},
		"Garbage":         {"yesterday", "today"},
		"Begin after end": {"2024-04-01", "2024-03-01"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(bounds[0], bounds[1])
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

package timeutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/github-commit-graph/internal/errors"
)

func TestParseDate(t *testing.T) {
	t.Run("round trips valid dates", func(t *testing.T) {
		for _, text := range []string{"2024-01-01", "2024-02-29", "1999-12-31", "2024-01-10"} {
			d, err := ParseDate(text)
			require.NoError(t, err, text)
			assert.Equal(t, text, d.String())
		}
	})

	t.Run("every day of a leap year round trips", func(t *testing.T) {
		d := NewDate(2024, time.January, 1)
		for i := 0; i < 366; i++ {
			parsed, err := ParseDate(d.String())
			require.NoError(t, err)
			assert.Equal(t, d, parsed)
			d = d.AddDays(1)
		}
		assert.Equal(t, "2025-01-01", d.String())
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		for _, text := range []string{"01-01-2024", "2024-1-01", "2024/01/01", "2024-01-01T00:00:00Z", "", "2024-13-01", "2023-02-29"} {
			_, err := ParseDate(text)
			require.Error(t, err, text)
			assert.True(t, errors.IsFormat(err), text)
		}
	})
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2024-01-02T03:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), ts)

	for _, text := range []string{
		"2024-01-02T03:04:05.123Z",
		"2024-01-02T03:04:05+00:00",
		"2024-01-02 03:04:05",
		"2024-01-02",
	} {
		_, err := ParseTimestamp(text)
		require.Error(t, err, text)
		assert.True(t, errors.IsFormat(err), text)
	}
}

func TestNormalizer(t *testing.T) {
	n := NewNormalizer(nil)

	t.Run("shifts UTC back three hours", func(t *testing.T) {
		local, err := n.ParseLocal("2024-01-10T02:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 23, local.Hour())
		assert.Equal(t, NewDate(2024, time.January, 9), DateOf(local))
		_, offset := local.Zone()
		assert.Equal(t, -3*60*60, offset)
	})

	t.Run("treats naive times as UTC", func(t *testing.T) {
		naive := time.Date(2024, 1, 10, 12, 0, 0, 0, time.FixedZone("elsewhere", 5*60*60))
		local := n.ToLocal(naive)
		assert.True(t, naive.Equal(local))
		assert.Equal(t, 4, local.Hour())
	})

	t.Run("today uses the target zone", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, "2024-02-29", n.Today(now).String())
	})

	t.Run("load by name", func(t *testing.T) {
		utc, err := LoadNormalizer("UTC")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-10", utc.LocalDate(time.Date(2024, 1, 10, 2, 0, 0, 0, time.UTC)).String())

		_, err = LoadNormalizer("Not/AZone")
		assert.True(t, errors.IsConfig(err))
	})
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2024, time.January, 9)
	b := NewDate(2024, time.January, 10)
	c := NewDate(2024, time.February, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.True(t, c.After(a))
	assert.False(t, b.Before(b))
	assert.True(t, b.Equal(NewDate(2024, time.January, 10)))
	assert.True(t, Date{}.IsZero())
}

func TestDateJSON(t *testing.T) {
	table := map[string]map[Date]int{
		"alice": {NewDate(2024, 1, 3): 1, NewDate(2024, 1, 2): 2},
	}

	raw, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alice":{"2024-01-02":2,"2024-01-03":1}}`, string(raw))

	var decoded map[string]map[Date]int
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, table, decoded)

	var bad struct {
		When Date `json:"when"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"when":"01-01-2024"}`), &bad))
}

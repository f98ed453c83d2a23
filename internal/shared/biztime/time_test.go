package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = prev })
}

func TestLocation_DefaultsToRiyadh(t *testing.T) {
	MustInit("")
	assert.Equal(t, DefaultTimezone, Location().String())
}

func TestToday_UsesBusinessDay(t *testing.T) {
	// 22:30 UTC on Jan 7 is already Jan 8 in Riyadh (UTC+3).
	withNow(t, time.Date(2025, 1, 7, 22, 30, 0, 0, time.UTC))

	today := Today()
	assert.Equal(t, "2025-01-08", FormatDate(today))
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, Location(), today.Location())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", FormatDate(d))
	assert.Equal(t, 0, d.Hour())

	_, err = ParseDate("01/03/2025")
	assert.Error(t, err)

	_, err = ParseDate("2025-02-30")
	assert.Error(t, err)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  string
	}{
		{"2025-01-15", 6, "2025-07-15"},
		{"2025-08-31", 6, "2026-03-03"},
		{"2025-12-01", 1, "2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			start, err := ParseDate(tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatDate(AddMonths(start, tt.n)))
		})
	}
}

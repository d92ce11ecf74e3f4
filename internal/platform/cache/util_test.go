package cache

import (
	"testing"
	"time"
)

func TestTimeUntilNextRefresh(t *testing.T) {
	t.Parallel()

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("Europe/Berlin timezone unavailable: %v", err)
	}

	tests := []struct {
		name     string
		now      time.Time
		loc      *time.Location
		hour     int
		expected time.Duration
	}{
		{
			name:     "before refresh today",
			now:      time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			loc:      time.UTC,
			hour:     16,
			expected: 6 * time.Hour,
		},
		{
			name:     "after refresh rolls to tomorrow",
			now:      time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC),
			loc:      time.UTC,
			hour:     16,
			expected: 22*time.Hour + 30*time.Minute,
		},
		{
			name:     "exactly at refresh rolls to tomorrow",
			now:      time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC),
			loc:      time.UTC,
			hour:     16,
			expected: 24 * time.Hour,
		},
		{
			name:     "nil location means UTC",
			now:      time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC),
			loc:      nil,
			hour:     16,
			expected: time.Hour,
		},
		{
			// 14:00 UTC is 15:00 CET
			name:     "other location",
			now:      time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC),
			loc:      berlin,
			hour:     16,
			expected: time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TimeUntilNextRefresh(tt.now, tt.loc, tt.hour)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRefreshTTL_AlwaysPositive(t *testing.T) {
	t.Parallel()

	ttl := RefreshTTL(time.UTC, 8)
	for i := 0; i < 10; i++ {
		d := ttl()
		if d <= 0 || d > 24*time.Hour {
			t.Errorf("iteration %d: expected duration in (0, 24h], got %v", i, d)
		}
	}
}

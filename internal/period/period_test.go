package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{name: "empty defaults to monthly", input: "", want: Monthly},
		{name: "monthly", input: "monthly", want: Monthly},
		{name: "quarterly", input: "quarterly", want: Quarterly},
		{name: "unknown mode rejected", input: "weekly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRanges_Monthly(t *testing.T) {
	tests := []struct {
		name          string
		now           time.Time
		wantCurrent   Period
		wantPrevious  Period
	}{
		{
			name:         "mid month",
			now:          date(2024, time.May, 16),
			wantCurrent:  Period{Start: date(2024, time.May, 1), End: date(2024, time.May, 16)},
			wantPrevious: Period{Start: date(2024, time.April, 1), End: date(2024, time.April, 16)},
		},
		{
			name:         "march 31 clamps to last day of february in a leap year",
			now:          date(2024, time.March, 31),
			wantCurrent:  Period{Start: date(2024, time.March, 1), End: date(2024, time.March, 31)},
			wantPrevious: Period{Start: date(2024, time.February, 1), End: date(2024, time.February, 29)},
		},
		{
			name:         "march 31 clamps to february 28 in a common year",
			now:          date(2023, time.March, 31),
			wantCurrent:  Period{Start: date(2023, time.March, 1), End: date(2023, time.March, 31)},
			wantPrevious: Period{Start: date(2023, time.February, 1), End: date(2023, time.February, 28)},
		},
		{
			name:         "july 31 clamps to june 30",
			now:          date(2024, time.July, 31),
			wantCurrent:  Period{Start: date(2024, time.July, 1), End: date(2024, time.July, 31)},
			wantPrevious: Period{Start: date(2024, time.June, 1), End: date(2024, time.June, 30)},
		},
		{
			name:         "january rolls back to december of the prior year",
			now:          date(2024, time.January, 15),
			wantCurrent:  Period{Start: date(2024, time.January, 1), End: date(2024, time.January, 15)},
			wantPrevious: Period{Start: date(2023, time.December, 1), End: date(2023, time.December, 15)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, previous, err := Ranges(Monthly, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCurrent, current)
			assert.Equal(t, tt.wantPrevious, previous)
		})
	}
}

func TestRanges_Quarterly(t *testing.T) {
	tests := []struct {
		name         string
		now          time.Time
		wantCurrent  Period
		wantPrevious Period
	}{
		{
			name:        "mid Q2 offsets previous quarter by elapsed days",
			now:         date(2024, time.May, 16),
			wantCurrent: Period{Start: date(2024, time.April, 1), End: date(2024, time.May, 16)},
			// 45 days elapsed in Q2 as of May 16
			wantPrevious: Period{Start: date(2024, time.January, 1), End: date(2024, time.February, 15)},
		},
		{
			name:         "Q1 rolls back to Q4 of the prior year",
			now:          date(2024, time.January, 15),
			wantCurrent:  Period{Start: date(2024, time.January, 1), End: date(2024, time.January, 15)},
			wantPrevious: Period{Start: date(2023, time.October, 1), End: date(2023, time.October, 15)},
		},
		{
			name:         "first day of a quarter yields zero elapsed days",
			now:          date(2024, time.July, 1),
			wantCurrent:  Period{Start: date(2024, time.July, 1), End: date(2024, time.July, 1)},
			wantPrevious: Period{Start: date(2024, time.April, 1), End: date(2024, time.April, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, previous, err := Ranges(Quarterly, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCurrent, current)
			assert.Equal(t, tt.wantPrevious, previous)
		})
	}
}

func TestRanges_Quarterly_DSTTransition(t *testing.T) {
	// March 10 2024 is only 23 hours long in New York. The elapsed-day
	// count must stay a whole calendar-day count regardless.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, loc)

	current, previous, err := Ranges(Quarterly, now)
	require.NoError(t, err)

	// 74 days elapsed in Q1 as of March 15.
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, loc), current.Start)
	assert.Equal(t, time.Date(2023, time.October, 1, 0, 0, 0, 0, loc), previous.Start)
	assert.Equal(t, time.Date(2023, time.December, 14, 0, 0, 0, 0, loc), previous.End)
}

func TestRanges_WindowsAreComparable(t *testing.T) {
	// Both quarterly windows must span the same number of days.
	now := date(2024, time.August, 20)

	current, previous, err := Ranges(Quarterly, now)
	require.NoError(t, err)

	currentDays := current.End.Sub(current.Start)
	previousDays := previous.End.Sub(previous.Start)
	assert.Equal(t, currentDays, previousDays)
}

package analytics

import (
	"testing"
	"time"
)

func TestConsistencyScore(t *testing.T) {
	tests := []struct {
		name      string
		days      []string
		createdAt time.Time
		want      int
	}{
		{
			name:      "five logs over ten days is fifty",
			days:      []string{"2024-03-06", "2024-03-08", "2024-03-10", "2024-03-12", "2024-03-14"},
			createdAt: today.AddDate(0, 0, -10),
			want:      50,
		},
		{
			name:      "created today is zero regardless of logs",
			days:      []string{"2024-03-15"},
			createdAt: today,
			want:      0,
		},
		{
			name:      "created later today still counts as day zero",
			days:      []string{"2024-03-15"},
			createdAt: today.Add(9 * time.Hour),
			want:      0,
		},
		{
			name:      "perfect record is one hundred",
			days:      []string{"2024-03-13", "2024-03-14", "2024-03-15"},
			createdAt: today.AddDate(0, 0, -3),
			want:      100,
		},
		{
			name:      "no logs is zero",
			days:      nil,
			createdAt: today.AddDate(0, 0, -30),
			want:      0,
		},
		{
			name:      "rounds to nearest percent",
			days:      []string{"2024-03-14", "2024-03-15"},
			createdAt: today.AddDate(0, 0, -3),
			want:      67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConsistencyScore(logsFor(tt.days...), tt.createdAt, today)
			if got != tt.want {
				t.Errorf("ConsistencyScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name   string
		days   []string
		window int
		want   int
	}{
		{
			name:   "fifteen of thirty days",
			days:   daysEndingToday(15),
			window: 30,
			want:   50,
		},
		{
			name:   "empty is zero",
			days:   nil,
			window: 30,
			want:   0,
		},
		{
			name:   "logs outside the window do not count",
			days:   []string{"2023-01-01", "2024-03-15"},
			window: 30,
			want:   3,
		},
		{
			name:   "zero window guards division",
			days:   daysEndingToday(5),
			window: 0,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionRate(logsFor(tt.days...), tt.window, today)
			if got != tt.want {
				t.Errorf("CompletionRate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name string
		days []string
		want TrendDirection
	}{
		{
			name: "more recent activity trends up",
			days: []string{
				// days-ago 0-6: five logs
				"2024-03-15", "2024-03-14", "2024-03-13", "2024-03-12", "2024-03-11",
				// days-ago 7-13: two logs
				"2024-03-08", "2024-03-05",
			},
			want: TrendUp,
		},
		{
			name: "less recent activity trends down",
			days: []string{
				"2024-03-15", "2024-03-13",
				"2024-03-08", "2024-03-07", "2024-03-06", "2024-03-05", "2024-03-04",
			},
			want: TrendDown,
		},
		{
			name: "equal counts are steady",
			days: []string{
				"2024-03-15", "2024-03-13", "2024-03-11",
				"2024-03-08", "2024-03-06", "2024-03-04",
			},
			want: TrendSame,
		},
		{
			name: "empty log set is steady",
			days: nil,
			want: TrendSame,
		},
		{
			name: "window boundary day belongs to the prior week",
			days: []string{"2024-03-08"}, // exactly 7 days ago
			want: TrendDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trend(logsFor(tt.days...), today)
			if got != tt.want {
				t.Errorf("Trend() = %q, want %q", got, tt.want)
			}
		})
	}
}

// A reference time in a non-UTC zone must window logs by the user's calendar
// day. Shortly after local midnight the local date is ahead of the UTC date,
// and late in the evening west of UTC it is behind; today's log belongs to the
// recent window either way, and the streak and the windows must agree.
func TestWindowsUseLocalCalendarDay(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		{
			name: "just after midnight east of UTC",
			now:  time.Date(2024, 6, 10, 0, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60)),
		},
		{
			name: "late evening west of UTC",
			now:  time.Date(2024, 6, 10, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60)),
		},
		{
			name: "utc baseline",
			now:  time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := logsFor("2024-06-10")

			if got := CurrentStreak(logs, tt.now); got != 1 {
				t.Errorf("CurrentStreak() = %d, want 1", got)
			}
			if got := Trend(logs, tt.now); got != TrendUp {
				t.Errorf("Trend() = %q, want %q (today's log must be in the recent window)", got, TrendUp)
			}
			if got := CompletionRate(logs, 30, tt.now); got != 3 {
				t.Errorf("CompletionRate() = %d, want 3", got)
			}
		})
	}
}

func TestBestWorstDays(t *testing.T) {
	tests := []struct {
		name      string
		days      []string
		wantBest  string
		wantWorst string
	}{
		{
			name:      "empty log set",
			days:      nil,
			wantBest:  NoData,
			wantWorst: NoData,
		},
		{
			name: "distinct best and worst",
			days: []string{
				"2024-03-04", "2024-03-11", // Mondays
				"2024-03-05", "2024-03-12", // Tuesdays
				"2024-03-06", // one Wednesday
			},
			wantBest:  "Monday",
			wantWorst: "Wednesday",
		},
		{
			name: "all logged weekdays tied means worst equals best",
			days: []string{
				"2024-03-04", // Monday
				"2024-03-05", // Tuesday
			},
			wantBest:  "Monday",
			wantWorst: "Monday",
		},
		{
			name:      "single weekday is both best and worst",
			days:      []string{"2024-03-09", "2024-03-02"}, // Saturdays
			wantBest:  "Saturday",
			wantWorst: "Saturday",
		},
		{
			name: "zero-log weekdays are not worst candidates",
			days: []string{
				"2024-03-03", "2024-03-10", "2024-03-17", // Sundays
				"2024-03-08", // one Friday
			},
			wantBest:  "Sunday",
			wantWorst: "Friday",
		},
		{
			name: "best ties break Sunday first",
			days: []string{
				"2024-03-03", // Sunday
				"2024-03-06", // Wednesday
			},
			wantBest:  "Sunday",
			wantWorst: "Sunday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, worst, _ := BestWorstDays(logsFor(tt.days...))
			if best != tt.wantBest || worst != tt.wantWorst {
				t.Errorf("BestWorstDays() = (%q, %q), want (%q, %q)", best, worst, tt.wantBest, tt.wantWorst)
			}
		})
	}
}

func TestBestWorstDaysCounts(t *testing.T) {
	_, _, counts := BestWorstDays(logsFor("2024-03-04", "2024-03-11", "2024-03-05"))
	if counts[int(time.Monday)] != 2 {
		t.Errorf("Monday count = %d, want 2", counts[int(time.Monday)])
	}
	if counts[int(time.Tuesday)] != 1 {
		t.Errorf("Tuesday count = %d, want 1", counts[int(time.Tuesday)])
	}
	if counts[int(time.Sunday)] != 0 {
		t.Errorf("Sunday count = %d, want 0", counts[int(time.Sunday)])
	}
}

func TestWeekOverview(t *testing.T) {
	week := WeekOverview(logsFor("2024-03-15", "2024-03-12"), today)

	if len(week) != 7 {
		t.Fatalf("WeekOverview() returned %d days, want 7", len(week))
	}
	if week[0].Date != "2024-03-09" || week[6].Date != "2024-03-15" {
		t.Errorf("window = %s..%s, want 2024-03-09..2024-03-15", week[0].Date, week[6].Date)
	}
	if week[0].Day != "Sat" || week[6].Day != "Fri" {
		t.Errorf("day names = %s..%s, want Sat..Fri", week[0].Day, week[6].Day)
	}

	for _, d := range week {
		wantDone := d.Date == "2024-03-15" || d.Date == "2024-03-12"
		if d.Completed != wantDone {
			t.Errorf("day %s completed = %v, want %v", d.Date, d.Completed, wantDone)
		}
	}
}

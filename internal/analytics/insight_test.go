package analytics

import (
	"strings"
	"testing"
)

func TestInsightSummaryBands(t *testing.T) {
	tests := []struct {
		name        string
		consistency int
		wantPrefix  string
	}{
		{name: "excellent band", consistency: 80, wantPrefix: "Excellent consistency!"},
		{name: "good band", consistency: 60, wantPrefix: "Good progress!"},
		{name: "building band", consistency: 1, wantPrefix: "Keep building your habit."},
		{name: "no data band", consistency: 0, wantPrefix: "Start tracking your habit to see insights."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsightSummary(NoData, NoData, TrendSame, tt.consistency)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("InsightSummary() = %q, want prefix %q", got, tt.wantPrefix)
			}
		})
	}
}

func TestInsightSummaryDayClause(t *testing.T) {
	got := InsightSummary("Monday", "Friday", TrendSame, 70)
	if !strings.Contains(got, "most consistent on Mondays") {
		t.Errorf("missing best-day clause in %q", got)
	}
	if !strings.Contains(got, "Try not to miss Friday") {
		t.Errorf("missing worst-day clause in %q", got)
	}

	// Same best and worst day: no day clause at all.
	got = InsightSummary("Monday", "Monday", TrendSame, 70)
	if strings.Contains(got, "Monday") {
		t.Errorf("unexpected day clause in %q", got)
	}

	// Unknown days: no day clause.
	got = InsightSummary(NoData, NoData, TrendSame, 70)
	if strings.Contains(got, "consistent on") {
		t.Errorf("unexpected day clause in %q", got)
	}
}

func TestInsightSummaryTrendClause(t *testing.T) {
	tests := []struct {
		name  string
		trend TrendDirection
		want  string
	}{
		{name: "up", trend: TrendUp, want: "improving"},
		{name: "down", trend: TrendDown, want: "declined"},
		{name: "same", trend: TrendSame, want: "steady"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsightSummary("Monday", "Friday", tt.trend, 70)
			if !strings.Contains(got, tt.want) {
				t.Errorf("InsightSummary() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

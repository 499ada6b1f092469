package analytics

import (
	"fmt"
	"strings"
)

// InsightSummary renders the habit statistics as a short narrative for direct
// display: an opening keyed by consistency band, an optional best/worst day
// clause, and a closing keyed by trend. Fixed English templates, no
// localization.
func InsightSummary(bestDay, worstDay string, trend TrendDirection, consistency int) string {
	var b strings.Builder

	switch {
	case consistency >= 80:
		b.WriteString("Excellent consistency! ")
	case consistency >= 60:
		b.WriteString("Good progress! ")
	case consistency > 0:
		b.WriteString("Keep building your habit. ")
	default:
		b.WriteString("Start tracking your habit to see insights. ")
	}

	if bestDay != NoData && worstDay != NoData && bestDay != worstDay {
		fmt.Fprintf(&b, "You're most consistent on %ss. ", bestDay)
		fmt.Fprintf(&b, "Try not to miss %s, it's your weakest day. ", worstDay)
	}

	switch trend {
	case TrendUp:
		b.WriteString("Your weekly performance is improving. Keep it up!")
	case TrendDown:
		b.WriteString("Your weekly performance has declined. Stay focused!")
	default:
		b.WriteString("Your weekly performance is steady.")
	}

	return b.String()
}

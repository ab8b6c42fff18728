package observ

import (
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	timer.now = fakeClock(2 * time.Millisecond)

	endLex := timer.Track("lex")
	endLex("7 tokens")
	parse := timer.Begin("parse")
	timer.End(parse, "")
	timer.End(42, "ignored")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("got %d phases", len(report.Phases))
	}
	if report.Phases[0].Name != "lex" || report.Phases[0].Note != "7 tokens" {
		t.Fatalf("unexpected first phase %+v", report.Phases[0])
	}
	if report.Phases[0].DurationMS != 2 || report.TotalMS != 4 {
		t.Fatalf("durations: phase=%v total=%v", report.Phases[0].DurationMS, report.TotalMS)
	}

	summary := timer.Summary()
	for _, want := range []string{"timings:", "lex", "// 7 tokens", "parse", "total"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	report := NewTimer().Report()
	if report.TotalMS != 0 || len(report.Phases) != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
}

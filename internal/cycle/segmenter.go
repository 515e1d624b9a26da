package cycle

import (
	"sort"
	"time"
)

// DetectCycleStarts walks the log in calendar order and emits the first day
// of every bleeding segment. An explicitly logged non-flow day closes the
// current segment; days with no entry at all carry no signal either way.
func DetectCycleStarts(entries []LogEntry) []time.Time {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]LogEntry, 0, len(entries))
	sorted = append(sorted, entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	starts := make([]time.Time, 0)
	inPeriod := false

	for _, entry := range sorted {
		if !entry.HasFlow() {
			inPeriod = false
			continue
		}
		if !inPeriod {
			starts = append(starts, dateOnly(entry.Date))
			inPeriod = true
		}
	}

	return starts
}

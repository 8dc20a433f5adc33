// Package perf keeps running averages of named timings, fed both by CPU
// stopwatches and by GPU timer queries.
package perf

import (
	"sort"
	"time"

	"github.com/gregjohnson2017/glsu/pkg/log"
)

type average struct {
	// nanoseconds
	total int64
	// recordings
	count int64
}

var enabled bool
var averages = make(map[string]average)

// RecordAverageTime adds one sample for key. It is a no-op while metrics are
// disabled.
func RecordAverageTime(key string, nanos int64) {
	if !enabled {
		return
	}

	avg := averages[key]
	avg.total += nanos
	avg.count++
	averages[key] = avg
}

// Average returns the mean recorded duration for key and how many samples
// were taken.
func Average(key string) (time.Duration, int64) {
	avg, ok := averages[key]
	if !ok || avg.count == 0 {
		return 0, 0
	}
	return time.Duration(avg.total / avg.count), avg.count
}

func SetMetricsEnabled(enable bool) {
	enabled = enable
}

// Reset forgets every recorded sample.
func Reset() {
	averages = make(map[string]average)
}

// LogMetrics writes every average to the perf logger, sorted by key.
func LogMetrics() {
	if !enabled || len(averages) == 0 {
		return
	}

	keys := make([]string, 0, len(averages))
	for k := range averages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	log.Perf("average metrics")
	for _, k := range keys {
		avg, n := Average(k)
		log.Perff("- %v = %v (%v samples)", k, avg, n)
	}
}

// StopWatch is a time.Time with stopping methods.
type StopWatch struct {
	t time.Time
}

// Start returns a newly started stopwatch.
func Start() StopWatch {
	return StopWatch{time.Now()}
}

// StopGetNano returns the nanoseconds since the stopwatch start.
func (sw StopWatch) StopGetNano() int64 {
	return time.Since(sw.t).Nanoseconds()
}

// StopRecordAverage records the time since the stopwatch start under key.
func (sw StopWatch) StopRecordAverage(key string) {
	RecordAverageTime(key, sw.StopGetNano())
}

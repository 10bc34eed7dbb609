package common

import (
	"fmt"
	"time"
)

type Duration time.Duration

func (it Duration) Truncate(granularity Duration) Duration {
	return Duration(time.Duration(it).Truncate(time.Duration(granularity)))
}

func (it Duration) String() string {
	return fmt.Sprintf("%5.3f", time.Duration(it).Seconds())
}

type stopwatch struct {
	message string
	started time.Time
}

func Stopwatch(form string, details ...interface{}) *stopwatch {
	message := fmt.Sprintf(form, details...)
	return &stopwatch{
		message: message,
		started: time.Now(),
	}
}

func (it *stopwatch) String() string {
	return it.Elapsed().String()
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Report() Duration {
	elapsed := it.Elapsed()
	Debug("%s %s", it.message, elapsed)
	return elapsed
}

// Timeline marks a named point in time relative to process start, visible
// only when tracing.
func Timeline(form string, details ...interface{}) {
	if TraceFlag() {
		since := Duration(time.Since(When))
		Trace("@%s %s", since, fmt.Sprintf(form, details...))
	}
}

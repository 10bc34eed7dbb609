package common

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

const (
	defaultHomeLocation = "$HOME/.termfolio"
)

var (
	Version        = "v0.4.2"
	LogLinenumbers bool
	LogHides       []string
	When           = time.Now()
	Product        = TermfolioMode()

	verbosity atomic.Int32
)

type Verbosity int32

const (
	Normal Verbosity = iota
	Silently
	Debugging
	Tracing
)

func SetVerbosity(level Verbosity) {
	verbosity.Store(int32(level))
}

func CurrentVerbosity() Verbosity {
	return Verbosity(verbosity.Load())
}

func Silent() bool {
	return CurrentVerbosity() == Silently
}

func DebugFlag() bool {
	return CurrentVerbosity() >= Debugging
}

func TraceFlag() bool {
	return CurrentVerbosity() == Tracing
}

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}

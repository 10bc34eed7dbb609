package common

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	logsource  = make(logwriters)
	logbarrier = sync.WaitGroup{}

	logInterceptor func(message string) bool
	logMu          sync.RWMutex

	errorSink io.Writer = os.Stderr
)

// SetLogInterceptor routes formatted log lines to interceptor. When it
// returns true the line is considered delivered and is not printed.
func SetLogInterceptor(interceptor func(message string) bool) {
	logMu.Lock()
	logInterceptor = interceptor
	logMu.Unlock()
}

func ClearLogInterceptor() {
	SetLogInterceptor(nil)
}

// RedirectLogs replaces the diagnostic sink and returns the previous one.
func RedirectLogs(sink io.Writer) io.Writer {
	logMu.Lock()
	defer logMu.Unlock()
	previous := errorSink
	errorSink = sink
	return previous
}

func interceptLog(message string) bool {
	logMu.RLock()
	interceptor := logInterceptor
	logMu.RUnlock()

	if interceptor != nil {
		return interceptor(message)
	}
	return false
}

func currentSink() io.Writer {
	logMu.RLock()
	defer logMu.RUnlock()
	return errorSink
}

type logwriter func() (io.Writer, string)
type logwriters chan logwriter

type syncer interface {
	Sync() error
}

func loggerLoop(writers logwriters) {
	var stamp string
	line := uint64(0)
	for todo := range writers {
		line += 1
		out, message := todo()

		if TraceFlag() {
			stamp = time.Now().Format("02.150405.000 ")
		} else if LogLinenumbers {
			stamp = fmt.Sprintf("%3d ", line)
		} else {
			stamp = ""
		}
		fmt.Fprintf(out, "%s%s\n", stamp, message)
		if flusher, ok := out.(syncer); ok {
			flusher.Sync()
		}
		logbarrier.Done()
	}
}

func init() {
	go loggerLoop(logsource)
}

func AcceptableOutput(message string) bool {
	for _, fragment := range LogHides {
		if len(fragment) > 0 && strings.Contains(message, fragment) {
			return false
		}
	}
	return true
}

func printout(out io.Writer, message string) {
	if !AcceptableOutput(message) {
		return
	}
	if interceptLog(message) {
		return
	}
	logbarrier.Add(1)
	logsource <- func() (io.Writer, string) {
		return out, message
	}
}

func Fatal(context string, err error) {
	if err != nil {
		printout(currentSink(), fmt.Sprintf("Fatal [%s]: %v", context, err))
	}
}

func Error(context string, err error) {
	if err != nil {
		Log("Error [%s]: %v", context, err)
	}
}

func Uncritical(context string, err error) {
	if err != nil {
		Log("Warning [%s; not critical]: %v", context, err)
	}
}

func Log(format string, details ...interface{}) {
	if !Silent() {
		prefix := ""
		if DebugFlag() {
			prefix = "[N] "
		}
		printout(currentSink(), fmt.Sprintf(prefix+format, details...))
	}
}

func Debug(format string, details ...interface{}) error {
	if DebugFlag() {
		printout(currentSink(), fmt.Sprintf("[D] "+format, details...))
	}
	return nil
}

func Trace(format string, details ...interface{}) error {
	if TraceFlag() {
		printout(currentSink(), fmt.Sprintf("[T] "+format, details...))
	}
	return nil
}

func Stdout(format string, details ...interface{}) {
	message := format
	if len(details) > 0 {
		message = fmt.Sprintf(format, details...)
	}
	if AcceptableOutput(message) {
		fmt.Fprint(os.Stdout, message)
		os.Stdout.Sync()
	}
}

func WaitLogs() {
	defer Timeline("wait logs done")

	runtime.Gosched()
	logbarrier.Wait()
}

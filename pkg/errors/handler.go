package errors

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every report that is not muted. It starts as a
	// quiet LogHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
	// muted counts the active Mute calls per kind. Guarded by handlerMu.
	muted = map[ErrorKind]int{}
)

// SetHandler installs h as the destination for reports. Nil restores a quiet
// LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

// route returns the handler for kind, or nil while kind is muted.
func route(kind ErrorKind) ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	if muted[kind] > 0 {
		return nil
	}
	return DefaultHandler
}

// Mute drops reports of kinds until the returned function is called. Mutes
// nest per kind. Panics are never muted.
func Mute(kinds ...ErrorKind) (restore func()) {
	kinds = slices.DeleteFunc(slices.Clone(kinds), func(k ErrorKind) bool { return k == KindPanic })
	handlerMu.Lock()
	for _, k := range kinds {
		muted[k]++
	}
	handlerMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			handlerMu.Lock()
			defer handlerMu.Unlock()
			for _, k := range kinds {
				if muted[k]--; muted[k] <= 0 {
					delete(muted, k)
				}
			}
		})
	}
}

// Muted reports whether reports of kind are being dropped.
func Muted(kind ErrorKind) bool {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return muted[kind] > 0
}

// Report stamps err and hands it to the handler unless its kind is muted.
func Report(err *BorderError) {
	if err == nil {
		return
	}
	h := route(err.Kind)
	if h == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	h.HandleError(err)
}

// ReportState reports an overlay operation that went ahead from a state it
// does not expect, such as a rotation while a show or hide is in flight.
func ReportState(op, format string, args ...any) {
	if Muted(KindState) {
		return
	}
	Report(&BorderError{
		Op:         op,
		Kind:       KindState,
		Err:        fmt.Errorf(format, args...),
		StackTrace: CaptureStack(),
	})
}

// ReportPanic sends a recovered panic to the handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := route(KindPanic); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic in progress as a PanicError for op.
//
//	defer errors.Recover("preview.loop")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by callback(r), which lets a
// deferred recovery turn the panic into a return value.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// packagePrefix marks frames inside this package, which CaptureStack skips.
const packagePrefix = "github.com/go-drift/border/pkg/errors."

// CaptureStack returns the caller's stack, one "function\n\tfile:line" entry
// per frame, starting at the first frame outside this package.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	leading := true
	for {
		f, more := frames.Next()
		if leading && strings.HasPrefix(f.Function, packagePrefix) && !strings.HasPrefix(f.Function, packagePrefix+"Test") {
			if !more {
				break
			}
			continue
		}
		leading = false
		if f.Function != "" {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

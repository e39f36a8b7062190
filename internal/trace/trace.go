package trace

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CriticalError is returned by critical-level logging. It carries the
// fully formatted message so callers can propagate or print it before
// exiting.
type CriticalError struct {
	msg string
}

// NewCritical creates a CriticalError with the given formatted message.
func NewCritical(msg string) *CriticalError {
	return &CriticalError{msg: msg}
}

func (e *CriticalError) Error() string { return e.msg }

// stackTracer is the interface pkg/errors values expose.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Chain walks an error chain outermost-first, following both Unwrap
// and pkg/errors Cause. pkg/errors wrapping layers its stack and
// message as separate values with identical text; those collapse into
// a single entry.
func Chain(err error) []error {
	var chain []error
	for err != nil {
		if n := len(chain); n == 0 || chain[n-1].Error() != err.Error() {
			chain = append(chain, err)
		}
		switch e := err.(type) {
		case interface{ Unwrap() error }:
			err = e.Unwrap()
		case interface{ Cause() error }:
			err = e.Cause()
		default:
			err = nil
		}
	}
	return chain
}

var endSymbols = []string{".", "!", "?", "。", "！", "？"}

// terminate appends a period unless the message already ends with a
// sentence terminator.
func terminate(msg string) string {
	if msg == "" {
		return msg
	}
	for _, s := range endSymbols {
		if strings.HasSuffix(msg, s) {
			return msg
		}
	}
	return msg + "."
}

// typeName returns the bare type name of an error value.
func typeName(err error) string {
	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "error"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// originFrame returns the "file.go(line)" origin of an error if it
// carries a pkg/errors stack trace.
func originFrame(err error) string {
	st, ok := err.(stackTracer)
	if !ok {
		return ""
	}
	frames := st.StackTrace()
	if len(frames) == 0 {
		return ""
	}
	// frame 0 is where the error was created
	return fmt.Sprintf("%s(%d)", frames[0], frames[0])
}

var arrowNumberRe = regexp.MustCompile(`(\d?)=>`)

// FormatChain appends the given errors to msg as indented "=>"
// continuation lines:
//
//	message.
//	     2=> <WrapError: a.go(10)> wrapping text.
//	     1=> <RootError: b.go(3)> original text.
//
// Errors are passed outermost first; the highest number is the error
// thrown last. An error whose text already contains a formatted chain
// is indented and renumbered instead of re-terminated.
func FormatChain(msg string, errs ...error) string {
	out := terminate(msg)

	for idx, err := range errs {
		if err == nil {
			continue
		}
		excStr := err.Error()
		nested := strings.Contains(excStr, "\n") && strings.Contains(excStr, "=>")

		var arrow string
		if len(errs) == 1 {
			arrow = "\n     => "
		} else {
			num := strconv.Itoa(len(errs) - idx)
			arrow = "\n     " + num + "=> "
			if nested {
				excStr = arrowNumberRe.ReplaceAllString(excStr, num+"$0")
			}
		}

		if nested {
			excStr = strings.ReplaceAll(excStr, "\n", "\n    ")
		} else {
			excStr = terminate(excStr)
		}

		head := "<" + typeName(err)
		if origin := originFrame(err); origin != "" {
			head += ": " + origin
		}
		head += "> "

		out += arrow + head + excStr
	}

	return out
}

package trace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Options controls FormatTree output.
type Options struct {
	// ExcDepth limits how many chain entries are shown. Entries beyond
	// the limit are collapsed into an omission line; the innermost
	// errors are kept. Zero or negative shows everything.
	ExcDepth int

	// TBDepth limits the stack frames shown per error: positive keeps
	// the frames nearest the error origin, zero shows all frames, and
	// negative hides frames entirely.
	TBDepth int

	// MsgLimit caps the number of message lines per error. Zero or
	// negative shows all lines.
	MsgLimit int

	// Indent is the base indentation; each chain level adds four more
	// spaces. Defaults to 4.
	Indent int

	// MinWidth is the minimum interior width used when the tree is
	// framed with Box. Zero uses the Box default.
	MinWidth int
}

// Brace characters joining stack frame lines.
const (
	braceUpper  = "┎"
	braceMiddle = "┠"
	braceLower  = "┖"
)

// FormatTree renders a deep view of an error chain: one numbered entry
// per error, outermost first, each with the stack frames the error
// carries. The innermost (root) error is the last entry.
func FormatTree(err error, opts Options) string {
	if err == nil {
		return ""
	}
	indent := opts.Indent
	if indent <= 0 {
		indent = 4
	}

	chain := Chain(err)
	var lines []string

	skip := 0
	if opts.ExcDepth > 0 && opts.ExcDepth < len(chain) {
		skip = len(chain) - opts.ExcDepth
		lines = append(lines, pad(indent)+fmt.Sprintf("... Omitted %d Exception(s) ...", skip))
		chain = chain[skip:]
	}

	for i, e := range chain {
		num := len(chain) - i
		head := fmt.Sprintf("(%d)▶ ", num)
		base := pad(indent)

		frames := originFrames(e, opts.TBDepth)
		msg := ownMessage(e, chainNext(chain, i))
		msgLines := limitLines(strings.Split(msg, "\n"), opts.MsgLimit)

		final := fmt.Sprintf("<%s", typeName(e))
		if origin := originFrame(e); origin != "" {
			final += ": " + origin
		}
		final += "> " + terminate(msgLines[0])

		if len(frames) == 0 {
			lines = append(lines, base+head+final)
		} else {
			// align continuation lines under the frame column
			cont := base + pad(len(head))
			for j, f := range frames {
				prefix := braceMiddle
				if j == 0 {
					prefix = braceUpper
				}
				line := prefix + " " + f
				if j == 0 {
					line = base + head + line
				} else {
					line = cont + line
				}
				lines = append(lines, line)
			}
			lines = append(lines, cont+braceLower+" "+final)
		}
		for _, extra := range msgLines[1:] {
			lines = append(lines, base+pad(len(head))+"  "+extra)
		}

		indent += 4
	}

	return strings.Join(lines, "\n")
}

func chainNext(chain []error, i int) error {
	if i+1 < len(chain) {
		return chain[i+1]
	}
	return nil
}

// ownMessage strips the rendered cause suffix so each chain entry
// shows only its own text, the way wrapped errors print as
// "own text: cause text".
func ownMessage(err, cause error) string {
	msg := err.Error()
	if cause != nil {
		msg = strings.TrimSuffix(msg, cause.Error())
		msg = strings.TrimSuffix(msg, ": ")
	}
	return msg
}

// originFrames renders an error's stack frames outermost first,
// excluding the origin frame itself (shown on the final line). tbDepth
// semantics are described on Options.
func originFrames(err error, tbDepth int) []string {
	if tbDepth < 0 {
		return nil
	}
	st, ok := err.(stackTracer)
	if !ok {
		return nil
	}
	stack := st.StackTrace()
	if len(stack) <= 1 {
		return nil
	}
	// drop the origin frame, reverse to outermost-first
	callers := make([]errors.Frame, 0, len(stack)-1)
	for i := len(stack) - 1; i >= 1; i-- {
		callers = append(callers, stack[i])
	}

	var out []string
	if tbDepth > 0 && tbDepth < len(callers) {
		omitted := len(callers) - tbDepth
		callers = callers[omitted:]
		out = append(out, fmt.Sprintf("... Omitted %d Traceback Frame(s) ...", omitted))
	}
	width := len(strconv.Itoa(len(callers)))
	for i, f := range callers {
		num := strconv.Itoa(len(callers) - i)
		for len(num) < width {
			num = "0" + num
		}
		out = append(out, fmt.Sprintf("<traceback-%s: %s(%d)> >>> %n", num, f, f, f))
	}
	return out
}

func limitLines(lines []string, limit int) []string {
	if limit <= 0 || len(lines) <= limit {
		return lines
	}
	omitted := len(lines) - limit
	out := append([]string(nil), lines[:limit]...)
	return append(out, fmt.Sprintf("... Omitted %d Line(s) ...", omitted))
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

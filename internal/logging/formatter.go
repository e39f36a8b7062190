package logging

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultTimeFormat is the timestamp layout used in log files,
// two-digit year first.
const DefaultTimeFormat = "06-01-02 15:04:05"

// fileFormatter renders log file records as
//
//	06-01-02 15:04:05 - <LEVEL> - <file.go->func(42)> - message
//
// The call site comes from the "loc" field attached by the logger; a
// "stack" field, when present, is appended on following lines.
type fileFormatter struct {
	timeFormat string
}

func (f *fileFormatter) Format(e *logrus.Entry) ([]byte, error) {
	tf := f.timeFormat
	if tf == "" {
		tf = DefaultTimeFormat
	}

	loc := "-"
	if v, ok := e.Data["loc"].(string); ok && v != "" {
		loc = v
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s - <%s> - <%s> - %s\n",
		e.Time.Format(tf),
		levelForLogrus(e.Level).Tag(),
		loc,
		e.Message,
	)
	if v, ok := e.Data["stack"].(string); ok && v != "" {
		b.WriteString(v)
		if v[len(v)-1] != '\n' {
			b.WriteByte('\n')
		}
	}
	return b.Bytes(), nil
}

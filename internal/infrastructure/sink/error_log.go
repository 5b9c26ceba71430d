package sink

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/valyala/bytebufferpool"
)

const unknownError = "UNKNOWN ERROR"

// ErrorLog appends one line per day-level failure to a plain text file.
// Appends are self-contained open-write-close sequences like the CSV sink's.
type ErrorLog struct {
	path string
}

func NewErrorLog(path string) *ErrorLog {
	return &ErrorLog{path: path}
}

// Append records a failure for the given requested date (YYYYMMDD). A nil
// error or an empty message is written as the UNKNOWN ERROR marker.
func (l *ErrorLog) Append(now time.Time, date string, err error) error {
	message := unknownError
	if err != nil {
		if text := strings.TrimSpace(err.Error()); text != "" {
			message = text
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.WriteString("\n")
	_, _ = buf.WriteString(now.UTC().Format(time.RFC3339))
	_, _ = buf.WriteString(": for ")
	_, _ = buf.WriteString(date)
	_, _ = buf.WriteString(": ")
	_, _ = buf.WriteString(message)

	f, openErr := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if openErr != nil {
		return fmt.Errorf("open error log %s: %w", l.path, openErr)
	}
	if _, writeErr := f.Write(buf.B); writeErr != nil {
		_ = f.Close()
		return fmt.Errorf("write error log: %w", writeErr)
	}
	if closeErr := f.Close(); closeErr != nil {
		return fmt.Errorf("close error log %s: %w", l.path, closeErr)
	}
	return nil
}

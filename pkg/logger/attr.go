package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil err gives an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// RunID records the batch run identifier under the key "run_id".
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Record renders r with its String method under the key "record".
func Record(r fmt.Stringer) slog.Attr {
	return slog.String("record", r.String())
}

// Violations records validation messages in order under the key "violations".
// An empty list gives an empty Attr.
func Violations(msgs []string) slog.Attr {
	if len(msgs) == 0 {
		return slog.Attr{}
	}
	return slog.Any("violations", msgs)
}

func FieldCount(n int) slog.Attr {
	return slog.Int("field_count", n)
}

package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", keyed by position.
// Returns an empty Attr when every error is nil.
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

// Error records err under "error". Returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the CLI subcommand path under "command".
func Command(path string) slog.Attr {
	return slog.String("command", path)
}

// Policy records a sanitizer policy name under "policy".
func Policy(name string) slog.Attr {
	return slog.String("policy", name)
}

// Score records a similarity score under "score".
func Score(v float64) slog.Attr {
	return slog.Float64("score", v)
}

// InputLength records the byte length of an input under "input_length".
func InputLength(n int) slog.Attr {
	return slog.Int("input_length", n)
}

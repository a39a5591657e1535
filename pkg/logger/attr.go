package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil err yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

func Messages(msgs []string) slog.Attr {
	return slog.Any("messages", msgs)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

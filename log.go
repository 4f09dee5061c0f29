package vsop87

import (
	"io"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// NewLogger returns a logfmt logger writing to w, filtered at the provided
// level ("debug", "info", "warn" or "error"; anything else means info).
func NewLogger(w io.Writer, lvl string) kitlog.Logger {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	klog = kitlog.With(klog, "ts", kitlog.DefaultTimestampUTC)
	return level.NewFilter(klog, levelOption(lvl))
}

func levelOption(lvl string) level.Option {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return level.AllowDebug()
	case "warn", "warning":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// orNop returns a no-op logger when l is nil.
func orNop(l kitlog.Logger) kitlog.Logger {
	if l == nil {
		return kitlog.NewNopLogger()
	}
	return l
}

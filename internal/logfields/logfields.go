package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyAddon   = "addon"
	KeyPath    = "path"
	KeyFile    = "file"
	KeySection = "section"
	KeyBranch  = "branch"
	KeyCount   = "count"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Addon(name string) slog.Attr { return slog.String(KeyAddon, name) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func File(f string) slog.Attr     { return slog.String(KeyFile, f) }
func Section(s string) slog.Attr  { return slog.String(KeySection, s) }
func Branch(b string) slog.Attr   { return slog.String(KeyBranch, b) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

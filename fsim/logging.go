package fsim

import (
	"log/slog"
	"os"
)

// pkgLogger is the package-level logger used when a Builder is not given
// one explicitly, mirroring the teacher's use of log/slog directly (no
// third-party structured logger) for coarse diagnostics outside the
// propagation hot path.
var pkgLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetLogger overrides the package-level default logger used by Builder.
func SetLogger(l *slog.Logger) {
	if l != nil {
		pkgLogger = l
	}
}

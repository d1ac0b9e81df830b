package sparse

import "github.com/katalvlaran/pc3-recommend/internal/errs"

// Re-exported so callers that only import sparse for matrix construction
// don't also need to import internal/errs to inspect failures.
const (
	KindInvalid  = errs.KindInvalid
	KindNoMem    = errs.KindNoMem
	KindSync     = errs.KindSync
	KindThread   = errs.KindThread
	KindShutdown = errs.KindShutdown
)

// IsKind reports whether err carries the given errs.Kind.
func IsKind(err error, kind errs.Kind) bool { return errs.IsKind(err, kind) }

package fitsmeta

import (
	"github.com/simonhull/fitsmeta/internal/types"
)

// TruncatedHeaderError is an alias to types.TruncatedHeaderError.
// Re-exported from internal/types so callers can match it with errors.As.
type TruncatedHeaderError = types.TruncatedHeaderError

// InvalidValueError is an alias to types.InvalidValueError.
// Re-exported from internal/types so callers can match it with errors.As.
type InvalidValueError = types.InvalidValueError

// BlockLimitError is an alias to types.BlockLimitError.
// Re-exported from internal/types so callers can match it with errors.As.
type BlockLimitError = types.BlockLimitError

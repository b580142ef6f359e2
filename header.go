package fitsmeta

import (
	"github.com/simonhull/fitsmeta/internal/types"
)

// Header is an alias to types.Header.
// Re-exported from internal/types to keep the public API at the root.
type Header = types.Header

// Keyword is an alias to types.Keyword.
// Re-exported from internal/types to keep the public API at the root.
type Keyword = types.Keyword

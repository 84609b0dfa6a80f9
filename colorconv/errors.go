package colorconv

import (
	"errors"
	"fmt"

	"github.com/kovidgoyal/colormath/types"
)

// ErrLookup wraps failures to resolve an illuminant, observer, RGB space or
// adaptation method in the reference tables.
var ErrLookup = types.ErrLookup

// ErrDomain wraps inputs for which a formula is mathematically undefined.
var ErrDomain = errors.New("domain error")

func domain_error(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDomain, fmt.Sprintf(format, args...))
}

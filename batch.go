package colormath

import (
	"fmt"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

// ConvertMany converts every color in colors to the space to, in parallel.
// Conversions are independent of each other so the results are identical to
// calling Convert on each value in turn. If any conversion fails the error
// for the lowest index is returned along with the partial results.
func (e *Engine) ConvertMany(colors []Color, to types.Space, opts ...ConvertOption) (ans []Color, err error) {
	ans = make([]Color, len(colors))
	if len(colors) == 0 {
		return
	}
	errs := make([]error, len(colors))
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			ans[i], errs[i] = e.Convert(colors[i], to, opts...)
		}
	}
	if err = parallel.Run_in_parallel_over_range(0, f, 0, len(colors)); err != nil {
		return ans, err
	}
	for i, cerr := range errs {
		if cerr != nil {
			return ans, fmt.Errorf("color %d: %w", i, cerr)
		}
	}
	return ans, nil
}

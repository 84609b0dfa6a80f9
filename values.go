package colormath

import (
	"fmt"
	"math"
	"slices"

	"github.com/kovidgoyal/colormath/colorconv"
	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

// Wavelength domain assumed for spectral values built by FromValues, which
// matches the built-in weighting functions.
const (
	SpectralStart = 380
	SpectralStep  = 10
)

var channel_counts = map[types.Space]int{
	types.XYZSpace:     3,
	types.XyYSpace:     3,
	types.LabSpace:     3,
	types.LCHabSpace:   3,
	types.LuvSpace:     3,
	types.LCHuvSpace:   3,
	types.RGBSpaceKind: 3,
	types.CMYSpace:     3,
	types.CMYKSpace:    4,
}

func to_uint8(v float64) (uint8, error) {
	if v != math.Trunc(v) || v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: RGB channels must be integers in 0-255: %v", colorconv.ErrDomain, v)
	}
	return uint8(v), nil
}

// FromValues builds a color value of the given space from its channels in
// the order they are conventionally written. rgb is only used for RGB
// values and may be left unset to mean sRGB.
func FromValues(space types.Space, m colorconv.Meta, rgb types.RGBSpace, values ...float64) (Color, error) {
	if space == types.SpectralSpace {
		if len(values) == 0 {
			return nil, fmt.Errorf("%w: spectral values need at least one sample", colorconv.ErrDomain)
		}
		return colorconv.Spectral{Meta: m, Start: SpectralStart, Step: SpectralStep, Values: slices.Clone(values)}, nil
	}
	n, ok := channel_counts[space]
	if !ok {
		return nil, fmt.Errorf("%w: unknown color space: %s", types.ErrLookup, space)
	}
	if len(values) != n {
		return nil, fmt.Errorf("%w: %s values need %d channels not %d", colorconv.ErrDomain, space, n, len(values))
	}
	v := values
	switch space {
	case types.XYZSpace:
		return colorconv.XYZ{Meta: m, X: v[0], Y: v[1], Z: v[2]}, nil
	case types.XyYSpace:
		return colorconv.XyY{Meta: m, X: v[0], Y: v[1], Luminance: v[2]}, nil
	case types.LabSpace:
		return colorconv.Lab{Meta: m, L: v[0], A: v[1], B: v[2]}, nil
	case types.LCHabSpace:
		return colorconv.LCHab{Meta: m, L: v[0], C: v[1], H: v[2]}, nil
	case types.LuvSpace:
		return colorconv.Luv{Meta: m, L: v[0], U: v[1], V: v[2]}, nil
	case types.LCHuvSpace:
		return colorconv.LCHuv{Meta: m, L: v[0], C: v[1], H: v[2]}, nil
	case types.CMYSpace:
		return colorconv.CMY{Meta: m, C: v[0], M: v[1], Y: v[2]}, nil
	case types.CMYKSpace:
		return colorconv.CMYK{Meta: m, C: v[0], M: v[1], Y: v[2], K: v[3]}, nil
	}
	if rgb == types.UnknownRGBSpace {
		rgb = types.SRGB
	}
	ans := colorconv.RGB{Meta: m, RGBSpace: rgb}
	var err error
	for i, p := range []*uint8{&ans.R, &ans.G, &ans.B} {
		if *p, err = to_uint8(v[i]); err != nil {
			return nil, err
		}
	}
	return ans, nil
}

// Values returns the channels of c in the order FromValues accepts them.
// Pointer records are dereferenced and nil yields nil.
func Values(c Color) []float64 {
	c, err := value_of(c)
	if err != nil {
		return nil
	}
	switch v := c.(type) {
	case colorconv.Spectral:
		return slices.Clone(v.Values)
	case colorconv.XYZ:
		return []float64{v.X, v.Y, v.Z}
	case colorconv.XyY:
		return []float64{v.X, v.Y, v.Luminance}
	case colorconv.Lab:
		return []float64{v.L, v.A, v.B}
	case colorconv.LCHab:
		return []float64{v.L, v.C, v.H}
	case colorconv.Luv:
		return []float64{v.L, v.U, v.V}
	case colorconv.LCHuv:
		return []float64{v.L, v.C, v.H}
	case colorconv.RGB:
		return []float64{float64(v.R), float64(v.G), float64(v.B)}
	case colorconv.CMY:
		return []float64{v.C, v.M, v.Y}
	case colorconv.CMYK:
		return []float64{v.C, v.M, v.Y, v.K}
	}
	return nil
}

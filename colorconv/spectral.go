package colorconv

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// SpectralToXYZ integrates the sample against the weighting functions for
// its observer and illuminant. The sample must cover exactly the same
// wavelengths as the weighting functions.
func (c *Converter) SpectralToXYZ(s Spectral) (XYZ, error) {
	w, err := c.tables.Spectral(s.Observer, s.Illuminant)
	if err != nil {
		return XYZ{}, err
	}
	if len(s.Values) != w.Len() || s.Start != w.Start || s.Step != w.Step {
		return XYZ{}, domain_error("spectral sample %gnm+%gnm×%d does not match weighting functions %gnm+%gnm×%d",
			s.Start, s.Step, len(s.Values), w.Start, w.Step, w.Len())
	}
	var x, y, z float64
	for i, v := range s.Values {
		if v < 0 || math.IsNaN(v) {
			return XYZ{}, domain_error("spectral intensity at %gnm is negative: %v", s.Start+float64(i)*s.Step, v)
		}
		x += v * w.X[i]
		y += v * w.Y[i]
		z += v * w.Z[i]
	}
	return XYZ{Meta: s.Meta, X: x / 100, Y: y / 100, Z: z / 100}, nil
}

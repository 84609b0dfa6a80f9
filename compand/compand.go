// Package compand implements the nonlinear encode and decode steps between
// linear light and stored RGB channel values.
package compand

import (
	"fmt"
	"math"
	"sync"
)

var _ = fmt.Print

// Linear values at or below this threshold use the linear segment of the
// sRGB curve.
const SRGBThreshold = 0.0031308

// The decode threshold of the sRGB curve, in encoded [0,1] units.
const SRGBDecodeThreshold = 0.04045

// SRGBEncode applies the sRGB companding curve to a linear value. Negative
// values pass through the linear segment unchanged in sign.
func SRGBEncode(v float64) float64 {
	if v > SRGBThreshold {
		return 1.055*math.Pow(v, 1.0/2.4) - 0.055
	}
	return v * 12.92
}

// SRGBDecode is the inverse of SRGBEncode.
func SRGBDecode(v float64) float64 {
	if v > SRGBDecodeThreshold {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// GammaEncode applies a pure power curve. Negative input is clamped to zero
// first since a fractional power of a negative number is undefined.
func GammaEncode(v, gamma float64) float64 {
	return math.Pow(max(0, v), 1/gamma)
}

func GammaDecode(v, gamma float64) float64 {
	return math.Pow(max(0, v), gamma)
}

// To8Bit scales an encoded [0,1] value to 0-255, rounding half up and
// clamping to the valid range.
func To8Bit(v float64) uint8 {
	v = max(0, v)
	q := math.Floor(0.5 + v*255)
	return uint8(min(q, 255))
}

func build_8bit_decode_lut(decode func(float64) float64) (ans [256]float64) {
	for i := range ans {
		ans[i] = decode(float64(i) / 255)
	}
	return
}

var srgb8ToLinearLUT = sync.OnceValue(func() []float64 { v := build_8bit_decode_lut(SRGBDecode); return v[:] })

// SRGBFrom8Bit converts an 8-bit sRGB encoded value to a normalised linear
// value between 0.0 and 1.0 using a look-up table.
func SRGBFrom8Bit(v uint8) float64 {
	return srgb8ToLinearLUT()[v]
}

// Curve is the companding curve of one RGB working space.
type Curve struct {
	// SRGB selects the piecewise sRGB curve, otherwise Gamma is used.
	SRGB  bool
	Gamma float64
}

func (c Curve) String() string {
	if c.SRGB {
		return "sRGB"
	}
	return fmt.Sprintf("gamma(%g)", c.Gamma)
}

// Encode converts a linear channel value to an 8-bit stored value. For
// gamma curves negative values are clamped before companding. For all
// curves the companded value is clamped again before quantization.
func (c Curve) Encode(v float64) uint8 {
	if c.SRGB {
		return To8Bit(SRGBEncode(v))
	}
	return To8Bit(GammaEncode(v, c.Gamma))
}

// Decode converts an 8-bit stored value to a linear channel value in [0,1].
func (c Curve) Decode(v uint8) float64 {
	if c.SRGB {
		return SRGBFrom8Bit(v)
	}
	return GammaDecode(float64(v)/255, c.Gamma)
}

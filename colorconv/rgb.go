package colorconv

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/colormath/compand"
	"github.com/kovidgoyal/colormath/tables"
	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

func curve_for(s types.RGBSpace, spec tables.RGBSpec) compand.Curve {
	return compand.Curve{SRGB: s == types.SRGB, Gamma: spec.Gamma}
}

// XYZToRGB converts to 8-bit encoded RGB in the target working space. XYZ
// measured under a different illuminant than the space's native one is
// adapted first. Out of gamut channels are clamped to 0-255.
func (c *Converter) XYZToRGB(xyz XYZ, target types.RGBSpace) (RGB, error) {
	v := tables.Vec3{xyz.X, xyz.Y, xyz.Z}
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return RGB{}, domain_error("XYZ value is not finite: %v", xyz)
		}
	}
	spec, err := c.tables.RGB(target)
	if err != nil {
		return RGB{}, err
	}
	if xyz.Illuminant != spec.NativeIlluminant {
		c.logger.Debug("applying chromatic adaptation", "from", xyz.Illuminant, "to", spec.NativeIlluminant, "method", c.adaptation)
		if v, err = c.ApplyXYZTransformation(v, xyz.Illuminant, spec.NativeIlluminant, c.adaptation); err != nil {
			return RGB{}, err
		}
	}
	linear := v.Mul(spec.XYZToRGB)
	curve := curve_for(target, spec)
	return RGB{
		Meta:     xyz.Meta,
		R:        curve.Encode(linear[0]),
		G:        curve.Encode(linear[1]),
		B:        curve.Encode(linear[2]),
		RGBSpace: target,
	}, nil
}

// RGBToXYZ decodes and linearizes rgb, producing XYZ under the space's
// native illuminant, then adapts it to the illuminant rgb is tagged with,
// when that differs. An untagged value is treated as native.
func (c *Converter) RGBToXYZ(rgb RGB) (XYZ, error) {
	spec, err := c.tables.RGB(rgb.RGBSpace)
	if err != nil {
		return XYZ{}, err
	}
	curve := curve_for(rgb.RGBSpace, spec)
	linear := tables.Vec3{curve.Decode(rgb.R), curve.Decode(rgb.G), curve.Decode(rgb.B)}
	v := linear.Mul(spec.RGBToXYZ)
	m := rgb.Meta
	if m.Illuminant == types.UnknownIlluminant {
		m.Illuminant = spec.NativeIlluminant
	}
	if m.Illuminant != spec.NativeIlluminant {
		c.logger.Debug("applying chromatic adaptation", "from", spec.NativeIlluminant, "to", m.Illuminant, "method", c.adaptation)
		if v, err = c.ApplyXYZTransformation(v, spec.NativeIlluminant, m.Illuminant, c.adaptation); err != nil {
			return XYZ{}, err
		}
	}
	return XYZ{Meta: m, X: v[0], Y: v[1], Z: v[2]}, nil
}

package colorconv

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// CIE constants. These literal values, rather than the exact rationals they
// approximate, are what reference output is computed with.
const (
	kappa       = 0.008856
	linear_k    = 7.787
	lab_offset  = 16.0 / 116.0
	degrees     = 180 / math.Pi
	full_circle = 360.0
)

func lab_f(t float64) float64 {
	if t > kappa {
		return math.Cbrt(t)
	}
	return linear_k*t + lab_offset
}

func lab_finv(t float64) float64 {
	if t3 := t * t * t; t3 > kappa {
		return t3
	}
	return (t - lab_offset) / linear_k
}

// XYZToLab converts to CIE L*a*b* relative to the reference white of the
// value's illuminant and observer.
func (c *Converter) XYZToLab(xyz XYZ) (Lab, error) {
	w, err := c.reference_white(xyz.Meta)
	if err != nil {
		return Lab{}, err
	}
	fx := lab_f((xyz.X * 100) / w[0])
	fy := lab_f((xyz.Y * 100) / w[1])
	fz := lab_f((xyz.Z * 100) / w[2])
	return Lab{
		Meta: xyz.Meta,
		L:    116*fy - 16,
		A:    500 * (fx - fy),
		B:    200 * (fy - fz),
	}, nil
}

// LabToXYZ is the inverse of XYZToLab. L below zero is rejected.
func (c *Converter) LabToXYZ(lab Lab) (XYZ, error) {
	if lab.L < 0 || math.IsNaN(lab.L) {
		return XYZ{}, domain_error("Lab lightness must not be negative: %v", lab.L)
	}
	w, err := c.reference_white(lab.Meta)
	if err != nil {
		return XYZ{}, err
	}
	y := (lab.L + 16) / 116
	x := lab.A/500 + y
	z := y - lab.B/200
	x, y, z = lab_finv(x), lab_finv(y), lab_finv(z)
	// scale by the reference white and back down to Y = 1 for the white
	return XYZ{
		Meta: lab.Meta,
		X:    (w[0] * x) / 100,
		Y:    (w[1] * y) / 100,
		Z:    (w[2] * z) / 100,
	}, nil
}

func uv_prime(x, y, z float64) (u, v float64, ok bool) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0, false
	}
	return 4 * x / d, 9 * y / d, true
}

// XYZToLuv converts to CIE L*u*v*. Exact black, where u′ and v′ are
// undefined, maps to L = u = v = 0.
func (c *Converter) XYZToLuv(xyz XYZ) (Luv, error) {
	w, err := c.reference_white(xyz.Meta)
	if err != nil {
		return Luv{}, err
	}
	ref_u, ref_v, ok := uv_prime(w[0], w[1], w[2])
	if !ok {
		return Luv{}, domain_error("reference white of %s is black", xyz.Meta)
	}
	ans := Luv{Meta: xyz.Meta}
	ans.L = 116*lab_f((xyz.Y*100)/w[1]) - 16
	u, v, ok := uv_prime(xyz.X*100, xyz.Y*100, xyz.Z*100)
	if !ok {
		return ans, nil
	}
	ans.U = 13 * ans.L * (u - ref_u)
	ans.V = 13 * ans.L * (v - ref_v)
	return ans, nil
}

// LuvToXYZ is the inverse of XYZToLuv. L must be positive since u and v are
// divided by it.
func (c *Converter) LuvToXYZ(luv Luv) (XYZ, error) {
	if !(luv.L > 0) {
		return XYZ{}, domain_error("Luv lightness must be positive for conversion to XYZ: %v", luv.L)
	}
	w, err := c.reference_white(luv.Meta)
	if err != nil {
		return XYZ{}, err
	}
	ref_u, ref_v, ok := uv_prime(w[0], w[1], w[2])
	if !ok {
		return XYZ{}, domain_error("reference white of %s is black", luv.Meta)
	}
	var_u := luv.U/(13*luv.L) + ref_u
	var_v := luv.V/(13*luv.L) + ref_v
	if var_v == 0 {
		return XYZ{}, domain_error("Luv value has v′ = 0: %v", luv)
	}
	y := lab_finv((luv.L+16)/116) * w[1] / 100
	x := -(9 * y * var_u) / ((var_u-4)*var_v - var_u*var_v)
	z := (9*y - 15*var_v*y - var_v*x) / (3 * var_v)
	return XYZ{Meta: luv.Meta, X: x, Y: y, Z: z}, nil
}

// hue returns atan2(b, a) in degrees wrapped into [0, 360).
func hue(a, b float64) float64 {
	h := math.Atan2(b, a)
	if h > 0 {
		h = h * degrees
	} else {
		h = full_circle - math.Abs(h)*degrees
	}
	if h >= full_circle {
		h -= full_circle
	}
	return h
}

func polar(a, b float64) (c, h float64) {
	return math.Sqrt(a*a + b*b), hue(a, b)
}

func cartesian(c, h float64) (a, b float64) {
	r := h / degrees
	return math.Cos(r) * c, math.Sin(r) * c
}

func LabToLCHab(lab Lab) LCHab {
	c, h := polar(lab.A, lab.B)
	return LCHab{Meta: lab.Meta, L: lab.L, C: c, H: h}
}

// LCHabToLab is the inverse of LabToLCHab. Negative chroma is rejected.
func LCHabToLab(lch LCHab) (Lab, error) {
	if lch.C < 0 {
		return Lab{}, domain_error("chroma must not be negative: %v", lch.C)
	}
	a, b := cartesian(lch.C, lch.H)
	return Lab{Meta: lch.Meta, L: lch.L, A: a, B: b}, nil
}

func LuvToLCHuv(luv Luv) LCHuv {
	c, h := polar(luv.U, luv.V)
	return LCHuv{Meta: luv.Meta, L: luv.L, C: c, H: h}
}

func LCHuvToLuv(lch LCHuv) (Luv, error) {
	if lch.C < 0 {
		return Luv{}, domain_error("chroma must not be negative: %v", lch.C)
	}
	u, v := cartesian(lch.C, lch.H)
	return Luv{Meta: lch.Meta, L: lch.L, U: u, V: v}, nil
}

// XYZToXyY fails for X+Y+Z = 0 where chromaticity is undefined.
func XYZToXyY(xyz XYZ) (XyY, error) {
	s := xyz.X + xyz.Y + xyz.Z
	if s == 0 {
		return XyY{}, domain_error("chromaticity is undefined for X+Y+Z = 0")
	}
	return XyY{Meta: xyz.Meta, X: xyz.X / s, Y: xyz.Y / s, Luminance: xyz.Y}, nil
}

// XyYToXYZ fails for y = 0.
func XyYToXYZ(c XyY) (XYZ, error) {
	if c.Y == 0 {
		return XYZ{}, domain_error("xyY value with y = 0 cannot be converted to XYZ")
	}
	return XYZ{
		Meta: c.Meta,
		X:    (c.X * c.Luminance) / c.Y,
		Y:    c.Luminance,
		Z:    ((1 - c.X - c.Y) * c.Luminance) / c.Y,
	}, nil
}

package tables

import (
	"fmt"
	"math"
	"sync"

	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

// Reference whites on the 0-100 scale.
var whites2 = map[types.Illuminant]Vec3{
	types.A:   {109.850, 100, 35.585},
	types.B:   {99.072, 100, 85.223},
	types.C:   {98.074, 100, 118.232},
	types.D50: {96.422, 100, 82.521},
	types.D55: {95.682, 100, 92.149},
	types.D65: {95.047, 100, 108.883},
	types.D75: {94.972, 100, 122.638},
	types.E:   {100, 100, 100},
	types.F2:  {99.186, 100, 67.393},
	types.F7:  {95.041, 100, 108.747},
	types.F11: {100.962, 100, 64.350},
}

var whites10 = map[types.Illuminant]Vec3{
	types.A:   {111.144, 100, 35.200},
	types.C:   {97.285, 100, 116.145},
	types.D50: {96.720, 100, 81.427},
	types.D55: {95.799, 100, 90.926},
	types.D65: {94.811, 100, 107.304},
	types.D75: {94.416, 100, 120.641},
	types.E:   {100, 100, 100},
	types.F2:  {103.280, 100, 69.026},
	types.F7:  {95.792, 100, 107.687},
	types.F11: {103.866, 100, 65.627},
}

// Cone response matrices in column-vector form.
var (
	bradford = Matrix3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	von_kries = Matrix3{
		{0.40024, 0.70760, -0.08081},
		{-0.22630, 1.16532, 0.04570},
		{0, 0, 0.91822},
	}
)

// ConeResponse returns the cone response matrix, in column-vector form, that
// the adaptation matrices of method are built from.
func ConeResponse(method types.AdaptationMethod) (Matrix3, bool) {
	switch method {
	case types.Bradford:
		return bradford, true
	case types.VonKries:
		return von_kries, true
	case types.XYZScaling:
		return Identity(), true
	}
	return Matrix3{}, false
}

// Working space matrices, row-vector form.
var rgb_specs = map[types.RGBSpace]RGBSpec{
	types.SRGB: {
		NativeIlluminant: types.D65,
		Gamma:            2.2,
		XYZToRGB: Matrix3{
			{3.24071, -0.969258, 0.0557352},
			{-1.53726, 1.87599, -0.203996},
			{-0.498571, 0.0415557, 1.05707},
		},
		RGBToXYZ: Matrix3{
			{0.412424, 0.212656, 0.0193324},
			{0.357579, 0.715158, 0.119193},
			{0.180464, 0.0721856, 0.950444},
		},
	},
	types.AdobeRGB: {
		NativeIlluminant: types.D65,
		Gamma:            2.2,
		XYZToRGB: Matrix3{
			{2.04148, -0.969258, 0.0134455},
			{-0.564977, 1.87599, -0.118373},
			{-0.344713, 0.0415557, 1.01527},
		},
		RGBToXYZ: Matrix3{
			{0.576700, 0.297361, 0.0270328},
			{0.185556, 0.627355, 0.0706879},
			{0.188212, 0.0752847, 0.991248},
		},
	},
	types.ProPhotoRGB: {
		NativeIlluminant: types.D50,
		Gamma:            1.8,
		XYZToRGB: Matrix3{
			{1.3459433, -0.5445989, 0},
			{-0.2556075, 1.5081673, 0},
			{-0.0511118, 0.0205351, 1.2118128},
		},
		RGBToXYZ: Matrix3{
			{0.7976749, 0.2880402, 0},
			{0.1351917, 0.7118741, 0},
			{0.0313534, 0.0000857, 0.8252100},
		},
	},
}

const (
	spectral_start = 380
	spectral_step  = 10
)

// CIE 1931 2° color matching functions, 380-780nm in 10nm steps.
var (
	cie1931_x = []float64{
		0.001368, 0.004243, 0.014310, 0.043510, 0.134380, 0.283900, 0.348280, 0.336200, 0.290800, 0.195360,
		0.095640, 0.032010, 0.004900, 0.009300, 0.063270, 0.165500, 0.290400, 0.433450, 0.594500, 0.762100,
		0.916300, 1.026300, 1.062200, 1.002600, 0.854450, 0.642400, 0.447900, 0.283500, 0.164900, 0.087400,
		0.046770, 0.022700, 0.011359, 0.005790, 0.002899, 0.001440, 0.000690, 0.000332, 0.000166, 0.000083,
		0.000042,
	}
	cie1931_y = []float64{
		0.000039, 0.000120, 0.000396, 0.001210, 0.004000, 0.011600, 0.023000, 0.038000, 0.060000, 0.090980,
		0.139020, 0.208020, 0.323000, 0.503000, 0.710000, 0.862000, 0.954000, 0.994950, 0.995000, 0.952000,
		0.870000, 0.757000, 0.631000, 0.503000, 0.381000, 0.265000, 0.175000, 0.107000, 0.061000, 0.032000,
		0.017000, 0.008210, 0.004102, 0.002091, 0.001047, 0.000520, 0.000249, 0.000120, 0.000060, 0.000030,
		0.000015,
	}
	cie1931_z = []float64{
		0.006450, 0.020050, 0.067850, 0.207400, 0.645600, 1.385600, 1.747060, 1.772110, 1.669200, 1.287640,
		0.812950, 0.465180, 0.272000, 0.158200, 0.078250, 0.042160, 0.020300, 0.008750, 0.003900, 0.002100,
		0.001650, 0.001100, 0.000800, 0.000340, 0.000190, 0.000050, 0.000020, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0,
	}
)

// CIE D65 relative spectral power distribution, 380-780nm in 10nm steps.
var d65_spd = []float64{
	49.9755, 54.6482, 82.7549, 91.486, 93.4318, 86.6823, 104.865, 117.008, 117.812, 114.861,
	115.923, 108.811, 109.354, 107.802, 104.79, 107.689, 104.405, 104.046, 100, 96.3342,
	95.788, 88.6856, 90.0062, 89.5991, 87.6987, 83.2886, 83.6992, 80.0268, 80.2146, 82.2778,
	78.2842, 69.7213, 71.6091, 74.349, 61.604, 69.8856, 75.087, 63.5927, 46.4182, 66.8054,
	63.3828,
}

// illuminant_a_spd evaluates the CIE definition of illuminant A normalized to
// 100 at 560nm: a Planckian radiator at 2848K with c2 = 1.435e7 nm·K, which is
// the same curve as 2856K with the current value of c2.
func illuminant_a_spd(n int) []float64 {
	const c2 = 1.435e7
	ans := make([]float64, n)
	for i := range ans {
		l := float64(spectral_start + i*spectral_step)
		ans[i] = 100 * math.Pow(560/l, 5) * (math.Exp(c2/(2848*560)) - 1) / (math.Exp(c2/(2848*l)) - 1)
	}
	return ans
}

// WeightingFor combines an illuminant spectral power distribution with color
// matching functions, normalized so that a perfect reflector (all samples 1)
// integrates to Y = 1.
func WeightingFor(start, step float64, spd, xbar, ybar, zbar []float64) (Weighting, error) {
	n := len(spd)
	if len(xbar) != n || len(ybar) != n || len(zbar) != n {
		return Weighting{}, fmt.Errorf("spectral power distribution and matching functions differ in length")
	}
	norm := 0.0
	for i, s := range spd {
		norm += s * ybar[i]
	}
	if norm == 0 {
		return Weighting{}, fmt.Errorf("spectral power distribution has zero luminance")
	}
	w := Weighting{Start: start, Step: step, X: make([]float64, n), Y: make([]float64, n), Z: make([]float64, n)}
	for i, s := range spd {
		k := 100 * s / norm
		w.X[i], w.Y[i], w.Z[i] = k*xbar[i], k*ybar[i], k*zbar[i]
	}
	return w, nil
}

func build_defaults() *Tables {
	b := NewBuilder()
	for i, w := range whites2 {
		b.SetReferenceWhite(types.Observer2, i, w)
	}
	for i, w := range whites10 {
		b.SetReferenceWhite(types.Observer10, i, w)
	}
	for s, spec := range rgb_specs {
		b.SetRGB(s, spec)
	}
	if err := b.AddDerivedAdaptations(types.Observer2, types.AdaptationMethods()...); err != nil {
		panic(err)
	}
	flat := make([]float64, len(cie1931_y))
	for i := range flat {
		flat[i] = 100
	}
	for illum, spd := range map[types.Illuminant][]float64{
		types.E: flat, types.D65: d65_spd, types.A: illuminant_a_spd(len(cie1931_y)),
	} {
		w, err := WeightingFor(spectral_start, spectral_step, spd, cie1931_x, cie1931_y, cie1931_z)
		if err == nil {
			err = b.SetSpectral(types.Observer2, illum, w)
		}
		if err != nil {
			panic(err)
		}
	}
	return b.Build()
}

// Default returns the built-in tables. They are constructed on first use and
// shared thereafter.
var Default = sync.OnceValue(build_defaults)

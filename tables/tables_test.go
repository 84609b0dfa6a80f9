package tables

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

func assert_matrix_near(t *testing.T, expected, actual Matrix3, tolerance float64) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Fatalf("matrices differ (-want +got):\n%s", diff)
	}
}

func TestMatrixOps(t *testing.T) {
	m := Matrix3{
		{2, 0, 1},
		{1, 3, 0},
		{0, 1, 4},
	}
	v := Vec3{1, 2, 3}
	// row vector convention: out[j] = sum_i v[i]*m[i][j]
	assert.Equal(t, Vec3{4, 9, 13}, v.Mul(m))

	inv, err := m.Inverted()
	require.NoError(t, err)
	p := m.Multiply(inv)
	assert.True(t, p.Equals(&Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1e-12), p.String())
	tr := m.Transposed()
	assert.Equal(t, Matrix3{{2, 1, 0}, {0, 3, 1}, {1, 0, 4}}, tr)

	id := Identity()
	assert.True(t, id.IsIdentity())
	assert.False(t, m.IsIdentity())

	singular := Matrix3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}
	_, err = singular.Inverted()
	require.Error(t, err)
}

func TestReferenceWhites(t *testing.T) {
	d := Default()
	w, err := d.ReferenceWhite(types.Observer2, types.D65)
	require.NoError(t, err)
	assert.Equal(t, Vec3{95.047, 100, 108.883}, w)
	w, err = d.ReferenceWhite(types.Observer10, types.D65)
	require.NoError(t, err)
	assert.Equal(t, Vec3{94.811, 100, 107.304}, w)
	for _, i := range types.Illuminants() {
		w, err := d.ReferenceWhite(types.Observer2, i)
		require.NoError(t, err, i.String())
		assert.Equal(t, 100.0, w[1], i.String())
	}
	_, err = d.ReferenceWhite(types.Observer10, types.B)
	require.ErrorIs(t, err, types.ErrLookup)
	_, err = d.ReferenceWhite(types.UnknownObserver, types.D65)
	require.ErrorIs(t, err, types.ErrLookup)
}

func TestAdaptation(t *testing.T) {
	d := Default()
	m, err := d.Adaptation(types.D65, types.D50, types.Bradford)
	require.NoError(t, err)
	// the usual column form, transposed into row form
	col := Matrix3{
		{1.0478112, 0.0228866, -0.0501270},
		{0.0295424, 0.9904844, -0.0170491},
		{-0.0092345, 0.0150436, 0.7521316},
	}
	assert_matrix_near(t, col.Transposed(), m, 1e-6)

	for _, method := range types.AdaptationMethods() {
		t.Run(method.String(), func(t *testing.T) {
			src, _ := d.ReferenceWhite(types.Observer2, types.D65)
			dst, _ := d.ReferenceWhite(types.Observer2, types.A)
			m, err := d.Adaptation(types.D65, types.A, method)
			require.NoError(t, err)
			got := src.Mul(m)
			for i := range 3 {
				assert.InDelta(t, dst[i], got[i], 1e-9)
			}
			same, err := d.Adaptation(types.F7, types.F7, method)
			require.NoError(t, err)
			assert.Equal(t, Identity(), same)
		})
	}
	_, err = d.Adaptation(types.D65, types.D50, types.UnknownAdaptation)
	require.ErrorIs(t, err, types.ErrLookup)

	empty := NewBuilder().Build()
	_, err = empty.Adaptation(types.D65, types.D65, types.Bradford)
	require.ErrorIs(t, err, types.ErrLookup)
}

func TestRGBSpecs(t *testing.T) {
	d := Default()
	assert.Equal(t, []types.RGBSpace{types.SRGB, types.AdobeRGB, types.ProPhotoRGB}, d.RGBSpaces())
	for _, s := range d.RGBSpaces() {
		t.Run(s.String(), func(t *testing.T) {
			spec, err := d.RGB(s)
			require.NoError(t, err)
			fwd, err := d.RGBMatrix(s, XYZToRGB)
			require.NoError(t, err)
			assert.Equal(t, spec.XYZToRGB, fwd)
			assert.Equal(t, spec.RGBToXYZ, spec.Matrix(RGBToXYZ))
			p := spec.XYZToRGB.Multiply(spec.RGBToXYZ)
			assert.True(t, p.Equals(&Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 2e-4), p.String())
			// linear white maps to the native reference white
			w, err := d.ReferenceWhite(types.Observer2, spec.NativeIlluminant)
			require.NoError(t, err)
			got := Vec3{1, 1, 1}.Mul(spec.RGBToXYZ)
			for i := range 3 {
				assert.InDelta(t, w[i]/100, got[i], 2e-3)
			}
		})
	}
	spec, _ := d.RGB(types.ProPhotoRGB)
	assert.Equal(t, types.D50, spec.NativeIlluminant)
	assert.Equal(t, 1.8, spec.Gamma)
	_, err := d.RGB(types.UnknownRGBSpace)
	require.ErrorIs(t, err, types.ErrLookup)
	assert.Equal(t, "XYZ_to_RGB", XYZToRGB.String())
	assert.Equal(t, "RGB_to_XYZ", RGBToXYZ.String())
}

func TestSpectralWeighting(t *testing.T) {
	d := Default()
	for _, tc := range []struct {
		illuminant types.Illuminant
		sums       Vec3
	}{
		{types.E, Vec3{99.98000, 100, 99.91691}},
		{types.D65, Vec3{95.01740, 100, 108.81277}},
		{types.A, Vec3{109.83114, 100, 35.54564}},
	} {
		t.Run(tc.illuminant.String(), func(t *testing.T) {
			w, err := d.Spectral(types.Observer2, tc.illuminant)
			require.NoError(t, err)
			assert.Equal(t, 41, w.Len())
			assert.Equal(t, 380.0, w.Start)
			assert.Equal(t, 10.0, w.Step)
			var sums Vec3
			for i := range w.Len() {
				sums[0] += w.X[i]
				sums[1] += w.Y[i]
				sums[2] += w.Z[i]
			}
			for i := range 3 {
				assert.InDelta(t, tc.sums[i], sums[i], 1e-3)
			}
			white, err := d.ReferenceWhite(types.Observer2, tc.illuminant)
			require.NoError(t, err)
			for i := range 3 {
				assert.InDelta(t, white[i], sums[i], 0.1)
			}
		})
	}
	w, err := d.Spectral(types.Observer2, types.D65)
	require.NoError(t, err)
	w.X[0] = 1e9
	again, _ := d.Spectral(types.Observer2, types.D65)
	assert.NotEqual(t, 1e9, again.X[0])

	_, err = d.Spectral(types.Observer10, types.D65)
	require.ErrorIs(t, err, types.ErrLookup)
}

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	b.SetReferenceWhite(types.Observer2, types.D65, Vec3{95.047, 100, 108.883})
	first := b.Build()
	b.SetReferenceWhite(types.Observer2, types.D65, Vec3{1, 2, 3})
	b.SetReferenceWhite(types.Observer2, types.D50, Vec3{96.422, 100, 82.521})
	second := b.Build()

	w, err := first.ReferenceWhite(types.Observer2, types.D65)
	require.NoError(t, err)
	assert.Equal(t, Vec3{95.047, 100, 108.883}, w)
	_, err = first.ReferenceWhite(types.Observer2, types.D50)
	require.ErrorIs(t, err, types.ErrLookup)
	w, _ = second.ReferenceWhite(types.Observer2, types.D65)
	assert.Equal(t, Vec3{1, 2, 3}, w)

	require.Error(t, b.SetSpectral(types.Observer2, types.E, Weighting{Step: 10, X: []float64{1}, Y: []float64{1, 2}, Z: []float64{1}}))
	require.Error(t, b.SetSpectral(types.Observer2, types.E, Weighting{Step: 10}))
	require.Error(t, b.SetSpectral(types.Observer2, types.E, Weighting{X: []float64{1}, Y: []float64{1}, Z: []float64{1}}))

	custom := Matrix3{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}
	b.SetAdaptation(types.D65, types.D50, types.Bradford, custom)
	require.NoError(t, b.AddDerivedAdaptations(types.Observer2, types.Bradford))
	derived := b.Build()
	m, err := derived.Adaptation(types.D65, types.D50, types.Bradford)
	require.NoError(t, err)
	assert.Equal(t, custom, m)
	_, err = derived.Adaptation(types.D50, types.D65, types.Bradford)
	require.NoError(t, err)
	require.ErrorIs(t, b.AddDerivedAdaptations(types.Observer2, types.UnknownAdaptation), types.ErrLookup)

	from := NewBuilderFrom(Default()).SetReferenceWhite(types.Observer2, types.D65, Vec3{1, 1, 1}).Build()
	w, _ = from.ReferenceWhite(types.Observer2, types.D65)
	assert.Equal(t, Vec3{1, 1, 1}, w)
	w, _ = Default().ReferenceWhite(types.Observer2, types.D65)
	assert.Equal(t, Vec3{95.047, 100, 108.883}, w)
}

func TestWeightingFor(t *testing.T) {
	w, err := WeightingFor(400, 100, []float64{1, 3}, []float64{1, 1}, []float64{0.5, 0.5}, []float64{0, 2})
	require.NoError(t, err)
	// norm = 1*0.5 + 3*0.5 = 2
	if diff := cmp.Diff(Weighting{
		Start: 400, Step: 100,
		X: []float64{50, 150}, Y: []float64{25, 75}, Z: []float64{0, 300},
	}, w); diff != "" {
		t.Fatalf("unexpected weighting (-want +got):\n%s", diff)
	}
	_, err = WeightingFor(400, 100, []float64{1}, []float64{1, 1}, []float64{1}, []float64{1})
	require.Error(t, err)
	_, err = WeightingFor(400, 100, []float64{0}, []float64{1}, []float64{1}, []float64{1})
	require.Error(t, err)
}

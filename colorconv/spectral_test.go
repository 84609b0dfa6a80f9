package colorconv

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colormath/types"
)

func flat(n int, v float64) []float64 {
	ans := make([]float64, n)
	for i := range ans {
		ans[i] = v
	}
	return ans
}

func TestSpectralToXYZ(t *testing.T) {
	c := New(nil)
	for _, tc := range []struct {
		illuminant types.Illuminant
		want       []float64
	}{
		{types.E, []float64{0.9998, 1, 0.9991691}},
		{types.D65, []float64{0.9501740, 1, 1.0881277}},
		{types.A, []float64{1.0983114, 1, 0.3554564}},
	} {
		t.Run(tc.illuminant.String(), func(t *testing.T) {
			m := Meta{Illuminant: tc.illuminant, Observer: types.Observer2}
			s := Spectral{Meta: m, Start: 380, Step: 10, Values: flat(41, 1)}
			xyz, err := c.SpectralToXYZ(s)
			require.NoError(t, err)
			assert.Equal(t, m, xyz.Meta)
			nearly(t, tc.want, []float64{xyz.X, xyz.Y, xyz.Z}, 1e-6)

			half, err := c.SpectralToXYZ(Spectral{Meta: m, Start: 380, Step: 10, Values: flat(41, 0.5)})
			require.NoError(t, err)
			nearly(t, []float64{xyz.X / 2, xyz.Y / 2, xyz.Z / 2}, []float64{half.X, half.Y, half.Z}, 1e-12)
		})
	}

	black, err := c.SpectralToXYZ(Spectral{Meta: DefaultMeta, Start: 380, Step: 10, Values: flat(41, 0)})
	require.NoError(t, err)
	assert.Equal(t, XYZ{Meta: DefaultMeta}, black)

	values := flat(41, 0.25)
	_, err = c.SpectralToXYZ(Spectral{Meta: DefaultMeta, Start: 380, Step: 10, Values: values})
	require.NoError(t, err)
	assert.Equal(t, flat(41, 0.25), values)
}

func TestSpectralToXYZFailures(t *testing.T) {
	c := New(nil)
	for _, tc := range []struct {
		name string
		in   Spectral
		want error
	}{
		{"short", Spectral{Meta: DefaultMeta, Start: 380, Step: 10, Values: flat(40, 1)}, ErrDomain},
		{"long", Spectral{Meta: DefaultMeta, Start: 380, Step: 10, Values: flat(42, 1)}, ErrDomain},
		{"offset", Spectral{Meta: DefaultMeta, Start: 390, Step: 10, Values: flat(41, 1)}, ErrDomain},
		{"step", Spectral{Meta: DefaultMeta, Start: 380, Step: 5, Values: flat(41, 1)}, ErrDomain},
		{"negative", Spectral{Meta: DefaultMeta, Start: 380, Step: 10, Values: slices.Concat(flat(20, 1), []float64{-0.1}, flat(20, 1))}, ErrDomain},
		{"nan", Spectral{Meta: DefaultMeta, Start: 380, Step: 10, Values: slices.Concat(flat(40, 1), []float64{math.NaN()})}, ErrDomain},
		{"observer", Spectral{Meta: Meta{Illuminant: types.D65, Observer: types.Observer10}, Start: 380, Step: 10, Values: flat(41, 1)}, ErrLookup},
		{"illuminant", Spectral{Meta: Meta{Illuminant: types.F2, Observer: types.Observer2}, Start: 380, Step: 10, Values: flat(41, 1)}, ErrLookup},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.SpectralToXYZ(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
	_, err := c.SpectralToXYZ(Spectral{Meta: DefaultMeta, Start: 380, Step: 10, Values: slices.Concat(flat(20, 1), []float64{-0.1}, flat(20, 1))})
	assert.ErrorContains(t, err, "580nm")
}

package tables

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

// The on-disk shape mirrors the nested lookups the engine performs:
//
//	[illuminants.2]
//	d65 = [95.047, 100.0, 108.883]
//
//	[adaptation.d65.d50]
//	bradford = [[...], [...], [...]]
//
//	[rgb.srgb]
//	native_illuminant = "d65"
//	gamma = 2.2
//	[rgb.srgb.conversions]
//	XYZ_to_RGB = [[...], [...], [...]]
//	RGB_to_XYZ = [[...], [...], [...]]
//
//	[spectral.2.d65]
//	start = 380.0
//	step = 10.0
//	X = [...]
//	Y = [...]
//	Z = [...]
//
// All matrices are in row-vector form. RGB_to_XYZ may be omitted, in which
// case it is computed as the inverse of XYZ_to_RGB.
type file_format struct {
	Illuminants map[string]map[string][]float64              `toml:"illuminants"`
	Adaptation  map[string]map[string]map[string][][]float64 `toml:"adaptation"`
	RGB         map[string]rgb_entry                         `toml:"rgb"`
	Spectral    map[string]map[string]spectral_entry         `toml:"spectral"`
	// Methods for which adaptation matrices between all loaded 2° reference
	// whites are derived after loading.
	DeriveAdaptations []string `toml:"derive_adaptations"`
}

type rgb_entry struct {
	NativeIlluminant string                 `toml:"native_illuminant"`
	Gamma            float64                `toml:"gamma"`
	Conversions      map[string][][]float64 `toml:"conversions"`
}

type spectral_entry struct {
	Start float64   `toml:"start"`
	Step  float64   `toml:"step"`
	X     []float64 `toml:"X"`
	Y     []float64 `toml:"Y"`
	Z     []float64 `toml:"Z"`
}

func to_vec3(v []float64, what string) (ans Vec3, err error) {
	if len(v) != 3 {
		return ans, fmt.Errorf("%s must have 3 components not %d", what, len(v))
	}
	copy(ans[:], v)
	return
}

func to_matrix3(v [][]float64, what string) (ans Matrix3, err error) {
	if len(v) != 3 {
		return ans, fmt.Errorf("%s must have 3 rows not %d", what, len(v))
	}
	for i, row := range v {
		r, err := to_vec3(row, fmt.Sprintf("row %d of %s", i, what))
		if err != nil {
			return ans, err
		}
		ans[i] = r
	}
	return
}

// Load parses tables from TOML. Entries are layered on top of base, which
// may be nil to start from empty tables.
func Load(r io.Reader, base *Tables) (*Tables, error) {
	var f file_format
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse tables: %w", err)
	}
	b := NewBuilderFrom(base)
	if err := f.apply(b); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// LoadString is a convenience wrapper around Load.
func LoadString(s string, base *Tables) (*Tables, error) {
	return Load(strings.NewReader(s), base)
}

func (f *file_format) apply(b *Builder) error {
	for okey, illums := range f.Illuminants {
		o, err := types.ParseObserver(okey)
		if err != nil {
			return err
		}
		for ikey, v := range illums {
			i, err := types.ParseIlluminant(ikey)
			if err != nil {
				return err
			}
			w, err := to_vec3(v, fmt.Sprintf("reference white %s/%s", okey, ikey))
			if err != nil {
				return err
			}
			b.SetReferenceWhite(o, i, w)
		}
	}
	for skey, targets := range f.Adaptation {
		src, err := types.ParseIlluminant(skey)
		if err != nil {
			return err
		}
		for tkey, methods := range targets {
			dst, err := types.ParseIlluminant(tkey)
			if err != nil {
				return err
			}
			for mkey, v := range methods {
				method, err := types.ParseAdaptationMethod(mkey)
				if err != nil {
					return err
				}
				m, err := to_matrix3(v, fmt.Sprintf("adaptation %s→%s (%s)", skey, tkey, mkey))
				if err != nil {
					return err
				}
				b.SetAdaptation(src, dst, method, m)
			}
		}
	}
	for key, e := range f.RGB {
		s, err := types.ParseRGBSpace(key)
		if err != nil {
			return err
		}
		if err = e.apply(b, s, key); err != nil {
			return err
		}
	}
	for okey, illums := range f.Spectral {
		o, err := types.ParseObserver(okey)
		if err != nil {
			return err
		}
		for ikey, e := range illums {
			i, err := types.ParseIlluminant(ikey)
			if err != nil {
				return err
			}
			if err = b.SetSpectral(o, i, Weighting{Start: e.Start, Step: e.Step, X: e.X, Y: e.Y, Z: e.Z}); err != nil {
				return err
			}
		}
	}
	if len(f.DeriveAdaptations) > 0 {
		methods := make([]types.AdaptationMethod, len(f.DeriveAdaptations))
		for i, mkey := range f.DeriveAdaptations {
			m, err := types.ParseAdaptationMethod(mkey)
			if err != nil {
				return err
			}
			methods[i] = m
		}
		if err := b.AddDerivedAdaptations(types.Observer2, methods...); err != nil {
			return err
		}
	}
	return nil
}

func (e *rgb_entry) apply(b *Builder, s types.RGBSpace, key string) (err error) {
	spec := RGBSpec{Gamma: e.Gamma}
	if spec.NativeIlluminant, err = types.ParseIlluminant(e.NativeIlluminant); err != nil {
		return fmt.Errorf("RGB space %s: %w", key, err)
	}
	if s != types.SRGB && spec.Gamma <= 0 {
		return fmt.Errorf("RGB space %s has invalid gamma: %v", key, spec.Gamma)
	}
	conversions := make(map[string][][]float64, len(e.Conversions))
	for k, v := range e.Conversions {
		conversions[strings.ToLower(k)] = v
	}
	fwd, ok := conversions[strings.ToLower(XYZToRGB.String())]
	if !ok {
		return fmt.Errorf("RGB space %s has no %s matrix", key, XYZToRGB)
	}
	if spec.XYZToRGB, err = to_matrix3(fwd, fmt.Sprintf("%s of %s", XYZToRGB, key)); err != nil {
		return err
	}
	if inv, ok := conversions[strings.ToLower(RGBToXYZ.String())]; ok {
		if spec.RGBToXYZ, err = to_matrix3(inv, fmt.Sprintf("%s of %s", RGBToXYZ, key)); err != nil {
			return err
		}
	} else if spec.RGBToXYZ, err = spec.XYZToRGB.Inverted(); err != nil {
		return fmt.Errorf("RGB space %s: %w", key, err)
	}
	b.SetRGB(s, spec)
	return nil
}

// Package tables holds the read-only reference data the conversion engine
// consumes: reference whites, chromatic adaptation matrices, RGB working
// space specifications and spectral weighting functions.
//
// A Tables value is immutable once built and safe for concurrent use.
package tables

import (
	"fmt"
	"slices"

	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

// RGBSpec describes an RGB working space.
type RGBSpec struct {
	NativeIlluminant types.Illuminant
	// Gamma of the pure power companding curve. Ignored for sRGB which uses
	// its piecewise curve.
	Gamma    float64
	XYZToRGB Matrix3
	RGBToXYZ Matrix3
}

// Direction selects one of the two working space matrices.
type Direction int

const (
	XYZToRGB Direction = iota
	RGBToXYZ
)

func (d Direction) String() string {
	if d == RGBToXYZ {
		return "RGB_to_XYZ"
	}
	return "XYZ_to_RGB"
}

func (s RGBSpec) Matrix(d Direction) Matrix3 {
	if d == RGBToXYZ {
		return s.RGBToXYZ
	}
	return s.XYZToRGB
}

// Weighting is a set of illuminant weighted color matching functions sampled
// at Start, Start+Step, ... nanometers. Dotting a spectral sample with X, Y
// and Z and dividing by 100 integrates it to XYZ.
type Weighting struct {
	Start, Step float64
	X, Y, Z     []float64
}

func (w Weighting) Len() int { return len(w.X) }

func (w Weighting) clone() Weighting {
	w.X, w.Y, w.Z = slices.Clone(w.X), slices.Clone(w.Y), slices.Clone(w.Z)
	return w
}

type white_key struct {
	observer   types.Observer
	illuminant types.Illuminant
}

type adaptation_key struct {
	source, target types.Illuminant
	method         types.AdaptationMethod
}

type Tables struct {
	whites     map[white_key]Vec3
	adaptation map[adaptation_key]Matrix3
	rgb        map[types.RGBSpace]RGBSpec
	spectral   map[white_key]Weighting
}

func lookup_error(format string, args ...any) error {
	return fmt.Errorf("%w: %s", types.ErrLookup, fmt.Sprintf(format, args...))
}

// ReferenceWhite returns the XYZ tristimulus values, on the 0-100 scale, of
// the given illuminant as seen by the given observer.
func (t *Tables) ReferenceWhite(o types.Observer, i types.Illuminant) (Vec3, error) {
	if w, ok := t.whites[white_key{o, i}]; ok {
		return w, nil
	}
	return Vec3{}, lookup_error("no reference white for illuminant %s with observer %s", i, o)
}

// Adaptation returns the row-vector matrix adapting XYZ from source to target
// using the given method. There is no fallback: a missing combination is an
// error even when source == target.
func (t *Tables) Adaptation(source, target types.Illuminant, method types.AdaptationMethod) (Matrix3, error) {
	if m, ok := t.adaptation[adaptation_key{source, target, method}]; ok {
		return m, nil
	}
	return Matrix3{}, lookup_error("no %s adaptation matrix from %s to %s", method, source, target)
}

func (t *Tables) RGB(s types.RGBSpace) (RGBSpec, error) {
	if spec, ok := t.rgb[s]; ok {
		return spec, nil
	}
	return RGBSpec{}, lookup_error("unknown RGB space: %s", s)
}

// RGBMatrix returns the working space matrix for the given direction.
func (t *Tables) RGBMatrix(s types.RGBSpace, d Direction) (Matrix3, error) {
	spec, err := t.RGB(s)
	if err != nil {
		return Matrix3{}, err
	}
	return spec.Matrix(d), nil
}

// Spectral returns a copy of the weighting functions for the observer and
// illuminant pair.
func (t *Tables) Spectral(o types.Observer, i types.Illuminant) (Weighting, error) {
	if w, ok := t.spectral[white_key{o, i}]; ok {
		return w.clone(), nil
	}
	return Weighting{}, lookup_error("no spectral weighting for illuminant %s with observer %s", i, o)
}

// RGBSpaces returns the RGB spaces present in the tables, sorted.
func (t *Tables) RGBSpaces() []types.RGBSpace {
	ans := make([]types.RGBSpace, 0, len(t.rgb))
	for k := range t.rgb {
		ans = append(ans, k)
	}
	slices.Sort(ans)
	return ans
}

// Builder accumulates table entries. Build returns an immutable snapshot, so
// a Builder may keep being used afterwards without affecting earlier results.
type Builder struct {
	t Tables
}

func NewBuilder() *Builder {
	return &Builder{t: Tables{
		whites:     make(map[white_key]Vec3),
		adaptation: make(map[adaptation_key]Matrix3),
		rgb:        make(map[types.RGBSpace]RGBSpec),
		spectral:   make(map[white_key]Weighting),
	}}
}

// NewBuilderFrom returns a builder pre-populated with all entries of base.
func NewBuilderFrom(base *Tables) *Builder {
	b := NewBuilder()
	if base != nil {
		copy_into(&b.t, base)
	}
	return b
}

func copy_into(dst, src *Tables) {
	for k, v := range src.whites {
		dst.whites[k] = v
	}
	for k, v := range src.adaptation {
		dst.adaptation[k] = v
	}
	for k, v := range src.rgb {
		dst.rgb[k] = v
	}
	for k, v := range src.spectral {
		dst.spectral[k] = v.clone()
	}
}

func (b *Builder) SetReferenceWhite(o types.Observer, i types.Illuminant, xyz Vec3) *Builder {
	b.t.whites[white_key{o, i}] = xyz
	return b
}

func (b *Builder) SetAdaptation(source, target types.Illuminant, method types.AdaptationMethod, m Matrix3) *Builder {
	b.t.adaptation[adaptation_key{source, target, method}] = m
	return b
}

func (b *Builder) SetRGB(s types.RGBSpace, spec RGBSpec) *Builder {
	b.t.rgb[s] = spec
	return b
}

func (b *Builder) SetSpectral(o types.Observer, i types.Illuminant, w Weighting) error {
	if len(w.X) != len(w.Y) || len(w.X) != len(w.Z) {
		return fmt.Errorf("spectral weighting for %s/%s has mismatched lengths: %d, %d, %d", o, i, len(w.X), len(w.Y), len(w.Z))
	}
	if len(w.X) == 0 {
		return fmt.Errorf("spectral weighting for %s/%s is empty", o, i)
	}
	if w.Step <= 0 {
		return fmt.Errorf("spectral weighting for %s/%s has invalid step: %v", o, i, w.Step)
	}
	b.t.spectral[white_key{o, i}] = w.clone()
	return nil
}

// AddDerivedAdaptations fills in adaptation matrices for every ordered pair
// of illuminants that have reference whites for the given observer, using the
// cone response matrix of each method. Pairs with src == dst get an exact
// identity. Existing entries are not overwritten.
func (b *Builder) AddDerivedAdaptations(o types.Observer, methods ...types.AdaptationMethod) error {
	var illums []types.Illuminant
	for _, i := range types.Illuminants() {
		if _, ok := b.t.whites[white_key{o, i}]; ok {
			illums = append(illums, i)
		}
	}
	for _, method := range methods {
		cone, ok := ConeResponse(method)
		if !ok {
			return lookup_error("no cone response matrix for adaptation method: %s", method)
		}
		for _, src := range illums {
			for _, dst := range illums {
				key := adaptation_key{src, dst, method}
				if _, exists := b.t.adaptation[key]; exists {
					continue
				}
				if src == dst {
					b.t.adaptation[key] = Identity()
					continue
				}
				m, err := adaptation_matrix(cone, b.t.whites[white_key{o, src}], b.t.whites[white_key{o, dst}])
				if err != nil {
					return err
				}
				b.t.adaptation[key] = m
			}
		}
	}
	return nil
}

func (b *Builder) Build() *Tables {
	ans := NewBuilder().t
	copy_into(&ans, &b.t)
	return &ans
}

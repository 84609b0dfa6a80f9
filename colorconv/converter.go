// Package colorconv implements the individual conversions between color
// spaces: spectral integration, the CIE perceptual spaces, RGB working spaces
// with their companding curves, chromatic adaptation and the subtractive
// CMY/CMYK models.
//
// Every conversion allocates a new value and never modifies its input.
// Illuminant and observer metadata is copied to the output unchanged unless
// the conversion is an explicit chromatic adaptation.
package colorconv

import (
	"fmt"
	"log/slog"

	"github.com/kovidgoyal/colormath/tables"
	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

// Converter binds the conversions to a set of reference tables. It holds no
// mutable state and is safe for concurrent use.
type Converter struct {
	tables     *tables.Tables
	adaptation types.AdaptationMethod
	logger     *slog.Logger
}

type config struct {
	adaptation types.AdaptationMethod
	logger     *slog.Logger
}

type Option func(*config)

// Adaptation sets the method used when XYZ must be adapted to the native
// illuminant of an RGB space. Defaults to Bradford.
func Adaptation(m types.AdaptationMethod) Option {
	return func(c *config) {
		c.adaptation = m
	}
}

// Logger sets the logger used for debug output. Defaults to discarding.
func Logger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// New returns a Converter using t, or the built-in tables if t is nil.
func New(t *tables.Tables, opts ...Option) *Converter {
	cfg := config{adaptation: types.Bradford}
	for _, o := range opts {
		o(&cfg)
	}
	if t == nil {
		t = tables.Default()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Converter{tables: t, adaptation: cfg.adaptation, logger: cfg.logger}
}

func (c *Converter) Tables() *tables.Tables                 { return c.tables }
func (c *Converter) AdaptationMethod() types.AdaptationMethod { return c.adaptation }

// reference_white returns the reference white of m on the 0-100 scale.
func (c *Converter) reference_white(m Meta) (tables.Vec3, error) {
	return c.tables.ReferenceWhite(m.Observer, m.Illuminant)
}

// ApplyXYZTransformation re-expresses the XYZ triple v, measured under
// source, as if measured under target. The matrix is taken from the tables
// as is, with no fallback when it is missing.
func (c *Converter) ApplyXYZTransformation(v tables.Vec3, source, target types.Illuminant, method types.AdaptationMethod) (tables.Vec3, error) {
	m, err := c.tables.Adaptation(source, target, method)
	if err != nil {
		return v, err
	}
	return v.Mul(m), nil
}

// Adapt performs chromatic adaptation of xyz to target using the converter's
// adaptation method. The result is tagged with the target illuminant.
func (c *Converter) Adapt(xyz XYZ, target types.Illuminant) (XYZ, error) {
	return c.AdaptWith(xyz, target, c.adaptation)
}

func (c *Converter) AdaptWith(xyz XYZ, target types.Illuminant, method types.AdaptationMethod) (XYZ, error) {
	v, err := c.ApplyXYZTransformation(tables.Vec3{xyz.X, xyz.Y, xyz.Z}, xyz.Illuminant, target, method)
	if err != nil {
		return XYZ{}, err
	}
	ans := XYZ{Meta: xyz.Meta, X: v[0], Y: v[1], Z: v[2]}
	ans.Illuminant = target
	return ans, nil
}

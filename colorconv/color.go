package colorconv

import (
	"fmt"

	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

// Meta is the provenance shared by every color value: the reference white
// and the standard observer the value is expressed relative to. Conversions
// copy it verbatim except when they explicitly perform chromatic adaptation.
type Meta struct {
	Illuminant types.Illuminant
	Observer   types.Observer
}

// DefaultMeta is D65 as seen by the CIE 1931 2° observer.
var DefaultMeta = Meta{Illuminant: types.D65, Observer: types.Observer2}

func (m Meta) Metadata() Meta { return m }
func (m Meta) sealed()        {}

func (m Meta) String() string {
	return fmt.Sprintf("%s/%s°", m.Illuminant, m.Observer)
}

// Color is implemented by exactly the value records of this package.
type Color interface {
	Space() types.Space
	Metadata() Meta
	String() string
	sealed()
}

// Spectral is a reflectance or transmittance measurement sampled at Start,
// Start+Step, ... nanometers.
type Spectral struct {
	Meta
	Start, Step float64
	Values      []float64
}

func (c Spectral) Space() types.Space { return types.SpectralSpace }
func (c Spectral) String() string {
	return fmt.Sprintf("Spectral(%gnm+%gnm×%d %s)", c.Start, c.Step, len(c.Values), c.Meta)
}

// XYZ tristimulus values normalized so that the reference white has Y = 1.
type XYZ struct {
	Meta
	X, Y, Z float64
}

func (c XYZ) Space() types.Space { return types.XYZSpace }
func (c XYZ) String() string     { return fmt.Sprintf("XYZ(%g, %g, %g %s)", c.X, c.Y, c.Z, c.Meta) }

// XyY is chromaticity (X, Y) plus luminance.
type XyY struct {
	Meta
	X, Y      float64
	Luminance float64
}

func (c XyY) Space() types.Space { return types.XyYSpace }
func (c XyY) String() string {
	return fmt.Sprintf("xyY(%g, %g, %g %s)", c.X, c.Y, c.Luminance, c.Meta)
}

type Lab struct {
	Meta
	L, A, B float64
}

func (c Lab) Space() types.Space { return types.LabSpace }
func (c Lab) String() string     { return fmt.Sprintf("Lab(%g, %g, %g %s)", c.L, c.A, c.B, c.Meta) }

// LCHab is the polar form of Lab. H is in degrees in [0, 360).
type LCHab struct {
	Meta
	L, C, H float64
}

func (c LCHab) Space() types.Space { return types.LCHabSpace }
func (c LCHab) String() string     { return fmt.Sprintf("LCHab(%g, %g, %g %s)", c.L, c.C, c.H, c.Meta) }

type Luv struct {
	Meta
	L, U, V float64
}

func (c Luv) Space() types.Space { return types.LuvSpace }
func (c Luv) String() string     { return fmt.Sprintf("Luv(%g, %g, %g %s)", c.L, c.U, c.V, c.Meta) }

// LCHuv is the polar form of Luv. H is in degrees in [0, 360).
type LCHuv struct {
	Meta
	L, C, H float64
}

func (c LCHuv) Space() types.Space { return types.LCHuvSpace }
func (c LCHuv) String() string     { return fmt.Sprintf("LCHuv(%g, %g, %g %s)", c.L, c.C, c.H, c.Meta) }

// RGB is an encoded 8-bit value in a specific working space.
type RGB struct {
	Meta
	R, G, B  uint8
	RGBSpace types.RGBSpace
}

func (c RGB) Space() types.Space { return types.RGBSpaceKind }
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d %s %s)", c.R, c.G, c.B, c.RGBSpace, c.Meta)
}

// CMY channels are in [0, 1].
type CMY struct {
	Meta
	C, M, Y float64
}

func (c CMY) Space() types.Space { return types.CMYSpace }
func (c CMY) String() string     { return fmt.Sprintf("CMY(%g, %g, %g %s)", c.C, c.M, c.Y, c.Meta) }

// CMYK channels are in [0, 1]. K == 1 implies C == M == Y == 0.
type CMYK struct {
	Meta
	C, M, Y, K float64
}

func (c CMYK) Space() types.Space { return types.CMYKSpace }
func (c CMYK) String() string {
	return fmt.Sprintf("CMYK(%g, %g, %g, %g %s)", c.C, c.M, c.Y, c.K, c.Meta)
}

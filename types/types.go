package types

import (
	"errors"
	"fmt"
	"strings"
)

var _ = fmt.Print

// ErrLookup is returned, wrapped, whenever an identifier cannot be resolved,
// either while parsing or while looking it up in a reference table.
var ErrLookup = errors.New("lookup error")

// Illuminant is a standard reference white.
type Illuminant int

// Standard illuminants.
const (
	UnknownIlluminant Illuminant = iota
	A
	B
	C
	D50
	D55
	D65
	D75
	E
	F2
	F7
	F11
)

var IlluminantKeys = map[string]Illuminant{
	"a":   A,
	"b":   B,
	"c":   C,
	"d50": D50,
	"d55": D55,
	"d65": D65,
	"d75": D75,
	"e":   E,
	"f2":  F2,
	"f7":  F7,
	"f11": F11,
}

var illuminantNames = map[Illuminant]string{
	A:   "A",
	B:   "B",
	C:   "C",
	D50: "D50",
	D55: "D55",
	D65: "D65",
	D75: "D75",
	E:   "E",
	F2:  "F2",
	F7:  "F7",
	F11: "F11",
}

func (i Illuminant) String() string {
	if n, ok := illuminantNames[i]; ok {
		return n
	}
	return fmt.Sprintf("Illuminant(%d)", int(i))
}

// Key is the lower-cased identifier used in table files.
func (i Illuminant) Key() string { return strings.ToLower(illuminantNames[i]) }

func (i Illuminant) Valid() bool {
	_, ok := illuminantNames[i]
	return ok
}

// Illuminants returns all known illuminants in declaration order.
func Illuminants() []Illuminant {
	return []Illuminant{A, B, C, D50, D55, D65, D75, E, F2, F7, F11}
}

// Observer is a CIE standard observer, identified by its field of view.
type Observer int

const (
	UnknownObserver Observer = iota
	// CIE 1931 2° standard observer
	Observer2
	// CIE 1964 10° supplementary standard observer
	Observer10
)

var ObserverKeys = map[string]Observer{
	"2":  Observer2,
	"10": Observer10,
}

var observerNames = map[Observer]string{
	Observer2:  "2",
	Observer10: "10",
}

func (o Observer) String() string {
	if n, ok := observerNames[o]; ok {
		return n
	}
	return fmt.Sprintf("Observer(%d)", int(o))
}

func (o Observer) Key() string { return observerNames[o] }

func (o Observer) Valid() bool {
	_, ok := observerNames[o]
	return ok
}

// RGBSpace identifies an RGB working space.
type RGBSpace int

const (
	UnknownRGBSpace RGBSpace = iota
	SRGB
	AdobeRGB
	ProPhotoRGB
)

var RGBSpaceKeys = map[string]RGBSpace{
	"srgb":         SRGB,
	"adobe_rgb":    AdobeRGB,
	"prophoto_rgb": ProPhotoRGB,
}

var rgbSpaceNames = map[RGBSpace]string{
	SRGB:        "sRGB",
	AdobeRGB:    "Adobe RGB",
	ProPhotoRGB: "ProPhoto RGB",
}

func (s RGBSpace) String() string {
	if n, ok := rgbSpaceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("RGBSpace(%d)", int(s))
}

func (s RGBSpace) Key() string { return reverse_lookup(RGBSpaceKeys, s) }

func (s RGBSpace) Valid() bool {
	_, ok := rgbSpaceNames[s]
	return ok
}

// AdaptationMethod identifies the cone response model a chromatic adaptation
// matrix was built from.
type AdaptationMethod int

const (
	UnknownAdaptation AdaptationMethod = iota
	Bradford
	VonKries
	XYZScaling
)

var AdaptationKeys = map[string]AdaptationMethod{
	"bradford":    Bradford,
	"von_kries":   VonKries,
	"xyz_scaling": XYZScaling,
}

func (m AdaptationMethod) String() string {
	if k := reverse_lookup(AdaptationKeys, m); k != "" {
		return k
	}
	return fmt.Sprintf("AdaptationMethod(%d)", int(m))
}

func (m AdaptationMethod) Key() string { return reverse_lookup(AdaptationKeys, m) }

func (m AdaptationMethod) Valid() bool { return m.Key() != "" }

// AdaptationMethods returns all known adaptation methods.
func AdaptationMethods() []AdaptationMethod {
	return []AdaptationMethod{Bradford, VonKries, XYZScaling}
}

// Space is the kind of a color value.
type Space int

const (
	UnknownSpace Space = iota
	SpectralSpace
	XYZSpace
	XyYSpace
	LabSpace
	LCHabSpace
	LuvSpace
	LCHuvSpace
	RGBSpaceKind
	CMYSpace
	CMYKSpace
)

var SpaceKeys = map[string]Space{
	"spectral": SpectralSpace,
	"xyz":      XYZSpace,
	"xyy":      XyYSpace,
	"lab":      LabSpace,
	"lchab":    LCHabSpace,
	"luv":      LuvSpace,
	"lchuv":    LCHuvSpace,
	"rgb":      RGBSpaceKind,
	"cmy":      CMYSpace,
	"cmyk":     CMYKSpace,
}

var spaceNames = map[Space]string{
	SpectralSpace: "Spectral",
	XYZSpace:      "XYZ",
	XyYSpace:      "xyY",
	LabSpace:      "Lab",
	LCHabSpace:    "LCHab",
	LuvSpace:      "Luv",
	LCHuvSpace:    "LCHuv",
	RGBSpaceKind:  "RGB",
	CMYSpace:      "CMY",
	CMYKSpace:     "CMYK",
}

func (s Space) String() string {
	if n, ok := spaceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

func reverse_lookup[T comparable](m map[string]T, v T) string {
	for k, q := range m {
		if q == v {
			return k
		}
	}
	return ""
}

func parse[T any](m map[string]T, what, s string) (T, error) {
	if v, ok := m[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown %s: %q", ErrLookup, what, s)
}

// ParseIlluminant resolves a case-insensitive illuminant identifier such as "D65".
func ParseIlluminant(s string) (Illuminant, error) { return parse(IlluminantKeys, "illuminant", s) }

// ParseObserver resolves an observer identifier, "2" or "10".
func ParseObserver(s string) (Observer, error) { return parse(ObserverKeys, "observer", s) }

// ParseRGBSpace resolves a case-insensitive RGB space identifier such as "sRGB".
func ParseRGBSpace(s string) (RGBSpace, error) { return parse(RGBSpaceKeys, "RGB space", s) }

// ParseAdaptationMethod resolves a case-insensitive adaptation method such as "Bradford".
func ParseAdaptationMethod(s string) (AdaptationMethod, error) {
	return parse(AdaptationKeys, "adaptation method", s)
}

// ParseSpace resolves a case-insensitive color space kind such as "Lab".
func ParseSpace(s string) (Space, error) { return parse(SpaceKeys, "color space", s) }

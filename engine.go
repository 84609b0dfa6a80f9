package colormath

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/kovidgoyal/colormath/colorconv"
	"github.com/kovidgoyal/colormath/tables"
	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

// ErrUnsupportedConversion is returned, wrapped, when no chain of
// conversions connects the requested spaces.
var ErrUnsupportedConversion = errors.New("unsupported conversion")

type Color = colorconv.Color

type engineConfig struct {
	tables     *tables.Tables
	logger     *slog.Logger
	adaptation types.AdaptationMethod
	rgb        types.RGBSpace
}

// Option sets an optional parameter for New.
type Option func(*engineConfig)

// WithTables sets the reference tables. Defaults to tables.Default().
func WithTables(t *tables.Tables) Option {
	return func(c *engineConfig) {
		c.tables = t
	}
}

// WithLogger sets the logger for debug output. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithAdaptation sets the chromatic adaptation method. Defaults to Bradford.
func WithAdaptation(m types.AdaptationMethod) Option {
	return func(c *engineConfig) {
		c.adaptation = m
	}
}

// WithRGBSpace sets the working space used when converting to RGB without
// an explicit per call choice. Defaults to sRGB.
func WithRGBSpace(s types.RGBSpace) Option {
	return func(c *engineConfig) {
		c.rgb = s
	}
}

// Engine composes the individual conversions of the colorconv package into
// conversions between any two connected spaces.
type Engine struct {
	conv   *colorconv.Converter
	logger *slog.Logger
	rgb    types.RGBSpace
}

func New(opts ...Option) *Engine {
	cfg := engineConfig{adaptation: types.Bradford, rgb: types.SRGB}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		conv:   colorconv.New(cfg.tables, colorconv.Adaptation(cfg.adaptation), colorconv.Logger(cfg.logger)),
		logger: cfg.logger,
		rgb:    cfg.rgb,
	}
}

func (e *Engine) Converter() *colorconv.Converter { return e.conv }

type request struct {
	rgb          types.RGBSpace
	rgb_explicit bool
	illuminant   types.Illuminant
}

// ConvertOption sets an optional parameter for a single conversion.
type ConvertOption func(*request)

// ToRGBSpace selects the working space of an RGB result. When the source is
// RGB in another working space the value is converted through XYZ.
func ToRGBSpace(s types.RGBSpace) ConvertOption {
	return func(r *request) {
		r.rgb = s
	}
}

// ToIlluminant requests chromatic adaptation to the given illuminant. The
// chain is routed through XYZ where the adaptation is applied.
func ToIlluminant(i types.Illuminant) ConvertOption {
	return func(r *request) {
		r.illuminant = i
	}
}

type hop_func func(e *Engine, r *request, c Color) (Color, error)

func pure[F, T Color](f func(F) T) hop_func {
	return func(e *Engine, r *request, c Color) (Color, error) {
		return f(c.(F)), nil
	}
}

func fallible[F, T Color](f func(F) (T, error)) hop_func {
	return func(e *Engine, r *request, c Color) (Color, error) {
		ans, err := f(c.(F))
		if err != nil {
			return nil, err
		}
		return ans, nil
	}
}

func converter[F, T Color](f func(*colorconv.Converter, F) (T, error)) hop_func {
	return func(e *Engine, r *request, c Color) (Color, error) {
		ans, err := f(e.conv, c.(F))
		if err != nil {
			return nil, err
		}
		return ans, nil
	}
}

type hop struct {
	from, to types.Space
}

type edge struct {
	hop
	f hop_func
}

// The order of edges out of a space decides between equally short chains.
var edges = []edge{
	{hop{types.SpectralSpace, types.XYZSpace}, converter((*colorconv.Converter).SpectralToXYZ)},

	{hop{types.XYZSpace, types.LabSpace}, converter((*colorconv.Converter).XYZToLab)},
	{hop{types.XYZSpace, types.LuvSpace}, converter((*colorconv.Converter).XYZToLuv)},
	{hop{types.XYZSpace, types.XyYSpace}, fallible(colorconv.XYZToXyY)},
	{hop{types.XYZSpace, types.RGBSpaceKind}, func(e *Engine, r *request, c Color) (Color, error) {
		ans, err := e.conv.XYZToRGB(c.(colorconv.XYZ), r.rgb)
		if err != nil {
			return nil, err
		}
		return ans, nil
	}},

	{hop{types.LabSpace, types.XYZSpace}, converter((*colorconv.Converter).LabToXYZ)},
	{hop{types.LabSpace, types.LCHabSpace}, pure(colorconv.LabToLCHab)},
	{hop{types.LCHabSpace, types.LabSpace}, fallible(colorconv.LCHabToLab)},

	{hop{types.LuvSpace, types.XYZSpace}, converter((*colorconv.Converter).LuvToXYZ)},
	{hop{types.LuvSpace, types.LCHuvSpace}, pure(colorconv.LuvToLCHuv)},
	{hop{types.LCHuvSpace, types.LuvSpace}, fallible(colorconv.LCHuvToLuv)},

	{hop{types.XyYSpace, types.XYZSpace}, fallible(colorconv.XyYToXYZ)},

	{hop{types.RGBSpaceKind, types.XYZSpace}, converter((*colorconv.Converter).RGBToXYZ)},
	{hop{types.RGBSpaceKind, types.CMYSpace}, pure(colorconv.RGBToCMY)},

	// CMY carries no working space, so the result is tagged with the
	// requested or default RGB space rather than the one the CMY value was
	// computed from.
	{hop{types.CMYSpace, types.RGBSpaceKind}, func(e *Engine, r *request, c Color) (Color, error) {
		ans, err := colorconv.CMYToRGB(c.(colorconv.CMY), r.rgb)
		if err != nil {
			return nil, err
		}
		return ans, nil
	}},
	{hop{types.CMYSpace, types.CMYKSpace}, fallible(colorconv.CMYToCMYK)},
	{hop{types.CMYKSpace, types.CMYSpace}, fallible(colorconv.CMYKToCMY)},
}

var hop_funcs = sync.OnceValue(func() map[hop]hop_func {
	ans := make(map[hop]hop_func, len(edges))
	for _, e := range edges {
		ans[e.hop] = e.f
	}
	return ans
})

// shortest_paths holds, for every ordered pair of distinct connected spaces,
// the breadth-first shortest chain between them, endpoints included.
var shortest_paths = sync.OnceValue(func() map[hop][]types.Space {
	adj := make(map[types.Space][]types.Space)
	var spaces []types.Space
	for _, e := range edges {
		if _, seen := adj[e.from]; !seen {
			spaces = append(spaces, e.from)
		}
		adj[e.from] = append(adj[e.from], e.to)
	}
	ans := make(map[hop][]types.Space)
	for _, src := range spaces {
		prev := map[types.Space]types.Space{src: types.UnknownSpace}
		queue := []types.Space{src}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if _, seen := prev[next]; seen {
					continue
				}
				prev[next] = cur
				queue = append(queue, next)
				path := []types.Space{next}
				for p := cur; p != types.UnknownSpace; p = prev[p] {
					path = append(path, p)
				}
				slices.Reverse(path)
				ans[hop{src, next}] = path
			}
		}
	}
	return ans
})

// Path returns the chain of spaces a conversion from one space to another
// passes through, endpoints included.
func Path(from, to types.Space) ([]types.Space, error) {
	if from == to {
		return []types.Space{from}, nil
	}
	if p, ok := shortest_paths()[hop{from, to}]; ok {
		return slices.Clone(p), nil
	}
	return nil, fmt.Errorf("%w: no conversion path from %s to %s", ErrUnsupportedConversion, from, to)
}

func path_as_string(p []types.Space) string {
	items := make([]string, len(p))
	for i, s := range p {
		items[i] = s.String()
	}
	return strings.Join(items, " → ")
}

// value_of returns c as a value record, dereferencing pointer records, with
// spectral samples copied so the result never aliases the input.
func value_of(c Color) (Color, error) {
	var ans Color
	switch v := c.(type) {
	case *colorconv.Spectral:
		if v != nil {
			ans = *v
		}
	case *colorconv.XYZ:
		if v != nil {
			ans = *v
		}
	case *colorconv.XyY:
		if v != nil {
			ans = *v
		}
	case *colorconv.Lab:
		if v != nil {
			ans = *v
		}
	case *colorconv.LCHab:
		if v != nil {
			ans = *v
		}
	case *colorconv.Luv:
		if v != nil {
			ans = *v
		}
	case *colorconv.LCHuv:
		if v != nil {
			ans = *v
		}
	case *colorconv.RGB:
		if v != nil {
			ans = *v
		}
	case *colorconv.CMY:
		if v != nil {
			ans = *v
		}
	case *colorconv.CMYK:
		if v != nil {
			ans = *v
		}
	default:
		ans = c
	}
	if ans == nil {
		return nil, fmt.Errorf("%w: cannot convert a nil color", colorconv.ErrDomain)
	}
	if s, ok := ans.(colorconv.Spectral); ok {
		s.Values = slices.Clone(s.Values)
		ans = s
	}
	return ans, nil
}

// plan returns the chain for converting c to the space to, and whether
// chromatic adaptation must be applied when the chain reaches XYZ.
func (e *Engine) plan(c Color, to types.Space, r *request) (path []types.Space, adapt bool, err error) {
	from := c.Space()
	adapt = r.illuminant != types.UnknownIlluminant && r.illuminant != c.Metadata().Illuminant
	cross_rgb := false
	if rgb, ok := c.(colorconv.RGB); ok && to == types.RGBSpaceKind && r.rgb_explicit {
		cross_rgb = r.rgb != rgb.RGBSpace
	}
	if !adapt && !cross_rgb {
		path, err = Path(from, to)
		return
	}
	head, err := Path(from, types.XYZSpace)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s values cannot be adapted or re-encoded since they cannot reach XYZ", ErrUnsupportedConversion, from)
	}
	tail, err := Path(types.XYZSpace, to)
	if err != nil {
		return nil, false, err
	}
	return append(head, tail[1:]...), adapt, nil
}

// Convert converts c to the space to through the shortest chain of
// individual conversions. Illuminant and observer are carried through
// unchanged unless ToIlluminant requests adaptation.
func (e *Engine) Convert(c Color, to types.Space, opts ...ConvertOption) (Color, error) {
	c, err := value_of(c)
	if err != nil {
		return nil, err
	}
	r := request{}
	for _, o := range opts {
		o(&r)
	}
	if r.rgb == types.UnknownRGBSpace {
		r.rgb = e.rgb
	} else {
		r.rgb_explicit = true
	}
	path, adapt, err := e.plan(c, to, &r)
	if err != nil {
		return nil, err
	}
	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.Debug("converting", "color", c, "path", path_as_string(path), "adapt_to", r.illuminant)
	}
	ans := c
	if adapt && path[0] == types.XYZSpace {
		if ans, err = e.conv.Adapt(ans.(colorconv.XYZ), r.illuminant); err != nil {
			return nil, err
		}
	}
	funcs := hop_funcs()
	for i := 1; i < len(path); i++ {
		if ans, err = funcs[hop{path[i-1], path[i]}](e, &r, ans); err != nil {
			return nil, err
		}
		if adapt && path[i] == types.XYZSpace {
			if ans, err = e.conv.Adapt(ans.(colorconv.XYZ), r.illuminant); err != nil {
				return nil, err
			}
		}
	}
	return ans, nil
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kovidgoyal/colormath"
	"github.com/kovidgoyal/colormath/colorconv"
	"github.com/kovidgoyal/colormath/tables"
	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

func usage() {
	fmt.Fprintln(os.Stderr, "usage: go run ./cmd/colorconv [flags] from-space to-space value...")
	fmt.Fprintln(os.Stderr, "spaces: spectral xyz xyy lab lchab luv lchuv rgb cmy cmyk")
	flag.PrintDefaults()
}

func load_tables(path string) (*tables.Tables, error) {
	if path == "" {
		return tables.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tables.Load(f, tables.Default())
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	tables_path := flag.String("tables", "", "TOML file with additional reference tables")
	rgb_name := flag.String("rgb", "srgb", "RGB working space of RGB input and output")
	out_rgb_name := flag.String("to-rgb", "", "RGB working space of RGB output, if different from -rgb")
	illum_name := flag.String("illuminant", "d65", "illuminant of the input value")
	target_illum := flag.String("adapt-to", "", "adapt the value to this illuminant")
	observer_name := flag.String("observer", "2", "standard observer, 2 or 10")
	method_name := flag.String("adaptation", "bradford", "chromatic adaptation method")
	verbose := flag.Bool("v", false, "log the conversion chain to stderr")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 3 {
		usage()
		os.Exit(1)
	}

	var m colorconv.Meta
	if m.Illuminant, err = types.ParseIlluminant(*illum_name); err != nil {
		return
	}
	if m.Observer, err = types.ParseObserver(*observer_name); err != nil {
		return
	}
	rgb, err := types.ParseRGBSpace(*rgb_name)
	if err != nil {
		return
	}
	method, err := types.ParseAdaptationMethod(*method_name)
	if err != nil {
		return
	}
	from, err := types.ParseSpace(flag.Arg(0))
	if err != nil {
		return
	}
	to, err := types.ParseSpace(flag.Arg(1))
	if err != nil {
		return
	}
	values := make([]float64, 0, flag.NArg()-2)
	for _, a := range flag.Args()[2:] {
		v, perr := strconv.ParseFloat(a, 64)
		if perr != nil {
			err = fmt.Errorf("invalid channel value: %q", a)
			return
		}
		values = append(values, v)
	}
	t, err := load_tables(*tables_path)
	if err != nil {
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	engine := colormath.New(colormath.WithTables(t), colormath.WithLogger(logger), colormath.WithAdaptation(method), colormath.WithRGBSpace(rgb))

	c, err := colormath.FromValues(from, m, rgb, values...)
	if err != nil {
		return
	}
	var opts []colormath.ConvertOption
	if *out_rgb_name != "" {
		out_rgb, perr := types.ParseRGBSpace(*out_rgb_name)
		if perr != nil {
			err = perr
			return
		}
		opts = append(opts, colormath.ToRGBSpace(out_rgb))
	}
	if *target_illum != "" {
		ti, perr := types.ParseIlluminant(*target_illum)
		if perr != nil {
			err = perr
			return
		}
		opts = append(opts, colormath.ToIlluminant(ti))
	}
	ans, err := engine.Convert(c, to, opts...)
	if err != nil {
		return
	}
	parts := make([]string, 0, 4)
	for _, v := range colormath.Values(ans) {
		parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
	}
	fmt.Println(strings.Join(parts, " "))
	if *verbose {
		fmt.Fprintln(os.Stderr, ans)
	}
}

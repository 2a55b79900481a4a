package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/gogpu/gg"

	"github.com/ericlevine/custombar"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// optionFlags holds the per-option flags. Only flags given on the command
// line override the configuration file.
type optionFlags struct {
	mode        string
	moduleWidth float64
	height      float64
	margin      float64
	width       float64
	background  string
	lineColor   string
	font        string
	charset     string
	noText      bool
	checksum    bool
}

func (f *optionFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.mode, "mode", "", "encoding mode (alphanumeric)")
	fs.Float64Var(&f.moduleWidth, "module-width", 0, "pixel width of one bit")
	fs.Float64Var(&f.height, "height", 0, "bar height in pixels")
	fs.Float64Var(&f.margin, "margin", 0, "quiet zone on the left and right in pixels")
	fs.Float64Var(&f.width, "width", 0, "explicit total width in pixels")
	fs.StringVar(&f.background, "bg", "", "background color")
	fs.StringVar(&f.lineColor, "fg", "", "bar and label color")
	fs.StringVar(&f.font, "font", "", `label font, e.g. "12px monospace"`)
	fs.StringVar(&f.charset, "charset", "", "character set for character codes (default UTF-16)")
	fs.BoolVar(&f.noText, "no-text", false, "omit the text label")
	fs.BoolVar(&f.checksum, "checksum", false, "append the additive checksum")
}

func (f *optionFlags) apply(fs *flag.FlagSet, opts *custombar.Options) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "mode":
			opts.Mode = custombar.Mode(f.mode)
		case "module-width":
			opts.ModuleWidth = f.moduleWidth
		case "height":
			opts.Height = f.height
		case "margin":
			opts.Margin = f.margin
		case "width":
			opts.Width = f.width
		case "bg":
			opts.Background = f.background
		case "fg":
			opts.LineColor = f.lineColor
		case "font":
			opts.Font = f.font
		case "charset":
			opts.CharacterSet = f.charset
		case "no-text":
			opts.IncludeText = !f.noText
		case "checksum":
			opts.Checksum = f.checksum
		}
	})
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("barcodegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "svg", "output format: svg, png, jpeg or dataurl")
	output := fs.String("o", "", "write to file instead of stdout")
	configPath := fs.String("config", "", "load options from a .yaml, .yml or .toml file")
	verbose := fs.Bool("v", false, "log encoding details to stderr")
	var of optionFlags
	of.register(fs)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: barcodegen [flags] <text>\n\n")
		fmt.Fprintf(stderr, "Encode text as a linear barcode and write it as SVG, PNG, JPEG or a data URL.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	custombar.SetLogger(logger)
	defer custombar.SetLogger(nil)

	opts := defaultsFor(*format)
	if *configPath != "" {
		var err error
		opts, err = loadOptions(*configPath, opts)
		if err != nil {
			logger.Error("load config", "path", *configPath, "err", err)
			return 1
		}
	}
	of.apply(fs, &opts)

	w := stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logger.Error("create output", "path", *output, "err", err)
			return 1
		}
		defer f.Close()
		w = f
	}

	if err := generate(w, fs.Arg(0), *format, &opts); err != nil {
		logger.Error("generate", "format", *format, "err", err)
		return 1
	}
	return 0
}

func defaultsFor(format string) custombar.Options {
	switch format {
	case "png", "jpeg", "jpg":
		return custombar.RasterDefaults()
	default:
		return custombar.VectorDefaults()
	}
}

// loadOptions decodes an options file over base. Keys the file omits keep
// their value from base; unknown keys are ignored.
func loadOptions(path string, base custombar.Options) (custombar.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	opts := base
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &opts)
	case ".toml":
		err = toml.Unmarshal(data, &opts)
	default:
		return base, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return base, fmt.Errorf("decode %s: %w", path, err)
	}
	return opts, nil
}

func generate(w io.Writer, contents, format string, opts *custombar.Options) error {
	switch format {
	case "svg":
		svg, err := custombar.RenderSVG(contents, opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, svg)
		return err
	case "dataurl":
		im, err := custombar.NewImage(contents, opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, im.Src)
		return err
	case "png", "jpeg", "jpg":
		dc := gg.NewContext(1, 1)
		defer func() { _ = dc.Close() }()
		if _, err := custombar.RenderRaster(dc, contents, opts); err != nil {
			return err
		}
		if format == "png" {
			return dc.EncodePNG(w)
		}
		return dc.EncodeJPEG(w, 95)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

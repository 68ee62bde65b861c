package main

import (
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"
)

type flags struct {
	input   string
	output  string
	config  string
	verbose bool
	drawDir string
	drawCat bool
	noColor bool
	check   optionalBool
}

// Boolean flag that remembers whether it was given, so an absent flag leaves
// the config value alone. Also accepts the --no- form.
type optionalBool struct {
	set   bool
	value bool
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.set, b.value = true, v
	return nil
}

func (b *optionalBool) String() string {
	return strconv.FormatBool(b.value)
}

func (b *optionalBool) IsBoolFlag() bool {
	return true
}

func newApp(f *flags) *kingpin.Application {
	app := kingpin.New("capholes", "Cap the holes of a triangle mesh read from a Wavefront OBJ file.")
	app.HelpFlag.Short('h')
	app.Arg("input", "Input OBJ file.").Required().ExistingFileVar(&f.input)
	app.Flag("output", "Output OBJ file. Defaults to stdout.").Short('o').StringVar(&f.output)
	app.Flag("config", "YAML config file.").Short('c').ExistingFileVar(&f.config)
	app.Flag("verbose", "Log at debug level.").Short('v').BoolVar(&f.verbose)
	app.Flag("draw-dir", "Write a PNG of every hole outline to this directory.").StringVar(&f.drawDir)
	app.Flag("imgcat", "Also print hole drawings to the terminal (iTerm).").BoolVar(&f.drawCat)
	app.Flag("no-color", "Disable colored output.").BoolVar(&f.noColor)
	app.Flag("check", "Check that the result is a closed surface (default on).").SetValue(&f.check)
	return app
}

// Flags win over the config, but only the ones that were given.
func (f *flags) apply(config *Config) {
	if f.output != "" {
		config.Output = f.output
	}
	if f.verbose {
		config.LogLevel = "debug"
	}
	if f.drawDir != "" {
		config.Draw.Dir = f.drawDir
	}
	if f.drawCat {
		config.Draw.Imgcat = true
	}
	if f.noColor {
		config.Color = false
	}
	if f.check.set {
		config.Check = f.check.value
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/df07/go-raytracer-lights/pkg/config"
	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/geometry"
	"github.com/df07/go-raytracer-lights/pkg/logger"
	"github.com/df07/go-raytracer-lights/pkg/probe"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "lightprobe: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("lightprobe", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintln(stdout, "Light Probe")
		fmt.Fprintln(stdout, "Usage: lightprobe [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Evaluates the configured point light at each probe point,")
		fmt.Fprintln(stdout, "shadow-testing it against a built-in occluder layout.")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fs.PrintDefaults()
	}
	flags := config.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileConfig(cfg.Logging.LogFile), stdout); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	light, err := cfg.Light.Build()
	if err != nil {
		return err
	}
	logger.Sugar.Debugf("configured light:\n%s", light)

	occluders, err := occluderLayout(cfg.Probe.Occluders)
	if err != nil {
		return err
	}
	logger.Info("probing",
		zap.String("occluders", cfg.Probe.Occluders),
		zap.Int("points", len(cfg.Probe.Points)),
		zap.Bool("grid", cfg.Probe.Grid.Enabled()))

	for _, p := range cfg.Probe.ShadingPoints() {
		sample := probe.Evaluate(light, p, occluders)
		logger.Info("probe point",
			zap.Stringer("point", sample.Point),
			zap.Float64("distance", p.Distance(light.Position())),
			zap.Bool("visible", sample.Visible),
			zap.Stringer("intensity", sample.Intensity))
	}

	if !cfg.Probe.Grid.Enabled() {
		return nil
	}

	grid := cfg.Probe.Grid.Grid()
	startTime := time.Now()
	rows, err := probe.EvaluateGrid(light, grid, occluders, cfg.Probe.Grid.Workers)
	if err != nil {
		return err
	}
	stats := probe.Summarize(rows)
	logger.Info("grid evaluated",
		zap.Int("cols", grid.Cols),
		zap.Int("rows", grid.Rows),
		zap.Duration("elapsed", time.Since(startTime)),
		zap.Float64("lit_fraction", stats.LitFraction()),
		zap.Stringer("peak", stats.Peak),
		zap.Stringer("mean_lit", stats.MeanLit))

	for _, line := range probe.ShadowMap(rows) {
		logger.Debug(line)
	}
	return nil
}

func fileConfig(path string) logger.FileConfig {
	if path == "" {
		return logger.FileConfig{}
	}
	return logger.DefaultFileConfig(path)
}

// occluderLayout returns a built-in occluder set. Every layout except
// "none" stands on a ground plane at y=0.
func occluderLayout(name string) ([]core.Surface, error) {
	ground := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	var shapes []core.Shape
	switch name {
	case "none":
		return nil, nil
	case "sphere":
		shapes = []core.Shape{
			ground,
			geometry.NewSphere(core.NewVec3(0, 5, 0), 1),
		}
	case "box":
		shapes = []core.Shape{
			ground,
			geometry.NewBox(core.NewVec3(3, 5, 0), core.NewVec3(1, 0.5, 1)),
		}
	case "wall":
		shapes = []core.Shape{
			ground,
			geometry.NewQuad(core.NewVec3(5, 0, -5), core.NewVec3(0, 8, 0), core.NewVec3(0, 0, 10)),
		}
	default:
		return nil, fmt.Errorf("unknown occluder layout %q", name)
	}
	return []core.Surface{geometry.NewSceneSurface(shapes...)}, nil
}

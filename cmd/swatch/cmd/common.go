package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hugo-lorenzo-mato/swatch/internal/adapters/styles"
	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/config"
	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/edit"
	"github.com/hugo-lorenzo-mato/swatch/internal/logging"
	"github.com/hugo-lorenzo-mato/swatch/internal/paint"
	"github.com/hugo-lorenzo-mato/swatch/internal/preview"
	"github.com/hugo-lorenzo-mato/swatch/internal/resolve"
	"github.com/hugo-lorenzo-mato/swatch/internal/theme"
)

// appDeps holds everything a command needs, built from the unified config.
type appDeps struct {
	Config    *config.Config
	Logger    *logging.Logger
	Theme     *theme.Live
	Resolver  *resolve.Resolver
	Engine    *edit.Engine
	Projector *paint.Projector
}

// loadDeps loads and validates configuration and wires the core components.
func loadDeps(cmd *cobra.Command) (*appDeps, error) {
	loader := config.NewLoaderWithViper(viper.GetViper())
	if cfgFile != "" {
		loader.WithConfigFile(cfgFile)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := config.NewValidator().Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  cmd.ErrOrStderr(),
		NoColor: noColor,
	})

	active, err := loadTheme(cfg)
	if err != nil {
		return nil, err
	}
	live := theme.NewLive(active)

	resolver := resolve.New(
		resolve.WithFallback(cfg.FallbackColor()),
		resolve.WithLogger(logger.WithTheme(active.Name)),
	)

	return &appDeps{
		Config:   cfg,
		Logger:   logger,
		Theme:    live,
		Resolver: resolver,
		Engine: edit.NewEngine(
			edit.WithResolver(resolver),
			edit.WithTheme(live),
			edit.WithDefaultVariable(cfg.Editor.DefaultVariable),
		),
		Projector: paint.NewProjector(resolver),
	}, nil
}

func loadTheme(cfg *config.Config) (*theme.Theme, error) {
	if cfg.Theme.File != "" {
		t, err := theme.LoadFile(cfg.Theme.File)
		if err != nil {
			return nil, fmt.Errorf("loading theme: %w", err)
		}
		return t, nil
	}
	return theme.Preset(cfg.Theme.Preset)
}

// projectOptions returns the projection options from config.
func (d *appDeps) projectOptions() []paint.ProjectOption {
	return []paint.ProjectOption{
		paint.WithAxisLength(d.Config.Paint.AxisLength),
		paint.WithFontSize(d.Config.Paint.FontSize),
	}
}

// render draws a preview block sized from config.
func (d *appDeps) render(p paint.Paint) string {
	return preview.Render(p, d.Config.Paint.PreviewWidth, d.Config.Paint.PreviewHeight,
		preview.WithBackground(d.Config.BackgroundColor()))
}

func (d *appDeps) openStore() (*styles.SQLiteStore, error) {
	store, err := styles.NewSQLiteStore(d.Config.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("opening style store: %w", err)
	}
	return store, nil
}

// gradientFlags collects the flags that build a gradient on the command line.
type gradientFlags struct {
	angle string
	stops []string
}

func (g *gradientFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.angle, "angle", "",
		`gradient angle ("45deg", "0.25turn", "to top right")`)
	cmd.Flags().StringArrayVar(&g.stops, "stop", nil,
		`gradient stop "<colour> [<position>]" (repeatable)`)
}

func (g *gradientFlags) set() bool {
	return len(g.stops) > 0 || g.angle != ""
}

// build assembles a gradient value. Stop colours that reference variables are
// resolved immediately.
func (g *gradientFlags) build(e *edit.Engine) (core.Value, error) {
	angle, err := codec.ParseAngle(g.angle)
	if err != nil {
		return core.Value{}, err
	}
	grad := core.LinearGradient{Angle: angle}
	for _, text := range g.stops {
		stop, err := e.StopFromText(text)
		if err != nil {
			return core.Value{}, fmt.Errorf("stop %q: %w", text, err)
		}
		grad.Stops = append(grad.Stops, stop)
	}
	return core.Gradient(grad), nil
}

// valueFromInput parses a positional text value or, when gradient flags are
// set, builds a gradient.
func valueFromInput(args []string, g *gradientFlags, e *edit.Engine) (core.Value, error) {
	if g.set() {
		if len(args) > 0 {
			return core.Value{}, fmt.Errorf("pass either a value or --stop/--angle, not both")
		}
		return g.build(e)
	}
	if len(args) == 0 {
		return core.Value{}, fmt.Errorf("a value is required")
	}
	return codec.Parse(strings.Join(args, " "))
}

// describe prints a value's variant and text form.
func describe(v core.Value) string {
	text := codec.Serialize(v)
	if c, ok := v.Color(); ok && c.Unmapped {
		return fmt.Sprintf("%s\t%s\t(unmapped)", v.Variant(), text)
	}
	return fmt.Sprintf("%s\t%s", v.Variant(), text)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hugo-lorenzo-mato/swatch/internal/paint"
)

var (
	projectGradient gradientFlags
	projectJSON     bool
	projectPreview  bool
)

var projectCmd = &cobra.Command{
	Use:   "project [text]",
	Short: "Project a value into paint",
	Long: `Project turns a value into the paint a renderer would draw: a solid colour,
or a gradient angle in degrees with stop offsets along the axis.

Pass a colour or variable as text, or build a gradient with --stop and --angle:

  swatch project --angle "to right" --stop blue --stop "green 50%" --stop red

With --watch (or theme.watch) the paint is printed again each time the theme
file changes.`,
	RunE: runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)

	projectGradient.register(projectCmd)
	projectCmd.Flags().BoolVar(&projectJSON, "json", false, "print paint as JSON")
	projectCmd.Flags().BoolVarP(&projectPreview, "preview", "p", false, "render a terminal preview")
	projectCmd.Flags().Float64("axis-length", 0, "gradient axis length in px for length stops")
	projectCmd.Flags().Bool("watch", false, "re-render whenever the theme file changes")

	_ = viper.BindPFlag("paint.axis_length", projectCmd.Flags().Lookup("axis-length"))
	_ = viper.BindPFlag("theme.watch", projectCmd.Flags().Lookup("watch"))
}

type paintJSON struct {
	Kind  string     `json:"kind"`
	Color string     `json:"color,omitempty"`
	Angle *float64   `json:"angle,omitempty"`
	Stops []stopJSON `json:"stops,omitempty"`
}

type stopJSON struct {
	Color  string  `json:"color"`
	Offset float64 `json:"offset"`
}

func toPaintJSON(p paint.Paint) paintJSON {
	if p.Kind == paint.KindSolid {
		return paintJSON{Kind: p.Kind.String(), Color: p.Solid.Hex()}
	}
	angle := p.Angle
	out := paintJSON{Kind: p.Kind.String(), Angle: &angle, Stops: make([]stopJSON, 0, len(p.Stops))}
	for _, s := range p.Stops {
		out.Stops = append(out.Stops, stopJSON{Color: s.Color.Hex(), Offset: s.Offset})
	}
	return out
}

func runProject(cmd *cobra.Command, args []string) error {
	deps, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	v, err := valueFromInput(args, &projectGradient, deps.Engine)
	if err != nil {
		return err
	}
	render := func() error {
		p, err := deps.Projector.Project(v, deps.Theme, deps.projectOptions()...)
		if err != nil {
			return err
		}
		return printPaint(cmd, deps, p, projectJSON, projectPreview)
	}
	if !deps.Config.Theme.Watch {
		return render()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchTheme(ctx, cmd, deps, render)
}

func printPaint(cmd *cobra.Command, deps *appDeps, p paint.Paint, asJSON, withPreview bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		data, err := json.MarshalIndent(toPaintJSON(p), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding paint: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprintln(out, p.String())
	}
	if withPreview {
		fmt.Fprintln(out, deps.render(p))
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hugo-lorenzo-mato/swatch/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and watch themes",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in themes",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show [preset]",
	Short: "Print the variables of a theme",
	Long: `Show prints every variable of the named built-in theme, or of the active theme
(--theme / --theme-file) when no name is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThemeShow,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <preset> <path>",
	Short: "Write a built-in theme to a YAML file",
	Long: `Export writes a built-in theme as a theme file, a starting point for a custom
theme loaded with --theme-file.`,
	Args: cobra.ExactArgs(2),
	RunE: runThemeExport,
}

var themeWatchCmd = &cobra.Command{
	Use:   "watch [text]",
	Short: "Reload the theme file as it changes",
	Long: `Watch follows the theme file (--theme-file or theme.file) and reports each
reload until interrupted. When a value is given, or built with --stop, its paint
is printed again after every reload.`,
	RunE: runThemeWatch,
}

var themeWatchGradient gradientFlags

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeListCmd, themeShowCmd, themeExportCmd, themeWatchCmd)

	themeWatchGradient.register(themeWatchCmd)
}

func runThemeList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, name := range theme.PresetNames() {
		t, err := theme.Preset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-10s %s\n", name, t.Description)
	}
	return nil
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	var t *theme.Theme
	if len(args) == 1 {
		preset, err := theme.Preset(args[0])
		if err != nil {
			return err
		}
		t = preset
	} else {
		deps, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		t = deps.Theme.Load()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", t.Name)
	for _, name := range t.Names() {
		c, _ := t.Get(name)
		fmt.Fprintf(out, "%-24s %s\n", name, c.Hex())
	}
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	t, err := theme.Preset(args[0])
	if err != nil {
		return err
	}
	if err := theme.WriteFile(args[1], t); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s theme to %s\n", t.Name, args[1])
	return nil
}

func runThemeWatch(cmd *cobra.Command, args []string) error {
	deps, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	if deps.Config.Theme.File == "" {
		return fmt.Errorf("theme watch needs a theme file (--theme-file or theme.file)")
	}

	var render func() error
	if len(args) > 0 || themeWatchGradient.set() {
		v, err := valueFromInput(args, &themeWatchGradient, deps.Engine)
		if err != nil {
			return err
		}
		render = func() error {
			p, err := deps.Projector.Project(v, deps.Theme, deps.projectOptions()...)
			if err != nil {
				return err
			}
			return printPaint(cmd, deps, p, false, true)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchTheme(ctx, cmd, deps, render)
}

// watchTheme runs the file watcher and calls render once up front and again
// after each reload. render may be nil.
func watchTheme(ctx context.Context, cmd *cobra.Command, deps *appDeps, render func() error) error {
	if render != nil {
		if err := render(); err != nil {
			return err
		}
	}

	updates, cancel := deps.Theme.Subscribe()
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return theme.Watch(ctx, deps.Config.Theme.File, deps.Theme, deps.Logger)
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case t, ok := <-updates:
				if !ok {
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "reloaded %s (%d variables)\n", t.Name, t.Len())
				if render != nil {
					if err := render(); err != nil {
						// Keep watching; the next save may fix it.
						deps.Logger.Warn("render failed", "error", err)
					}
				}
			}
		}
	})
	return g.Wait()
}

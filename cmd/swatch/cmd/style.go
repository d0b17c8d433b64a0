package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hugo-lorenzo-mato/swatch/internal/adapters/styles"
	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/paint"
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Manage saved colour values",
	Long: `Style saves named colour values in the local store (store.path) so they can be
edited, projected and exported later. Gradients are stored as structured
records and survive a round trip exactly.`,
}

var (
	styleSaveGradient  gradientFlags
	styleGradientFlags gradientFlags
	styleListKind      string
	styleShowPreview   bool
	styleProjectJSON   bool
)

var styleSaveCmd = &cobra.Command{
	Use:   "save <name> [text]",
	Short: "Save a value under a name",
	Long: `Save stores a colour or variable given as text, or a gradient built with --stop
and --angle. Saving an existing name replaces its value.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStyleSave,
}

var styleGradientCmd = &cobra.Command{
	Use:   "gradient <name> --stop <stop>...",
	Short: "Save a gradient under a name",
	Long: `Gradient saves a linear gradient built from --stop and --angle. Stop colours
may reference theme variables; they are resolved when the gradient is built.

  swatch style gradient banner --angle 45deg --stop --accent --stop "#191919 80%"`,
	Args: cobra.ExactArgs(1),
	RunE: runStyleGradient,
}

var styleShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved value and its paint",
	Args:  cobra.ExactArgs(1),
	RunE:  runStyleShow,
}

var styleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved values",
	Args:  cobra.NoArgs,
	RunE:  runStyleList,
}

var styleDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved value",
	Args:  cobra.ExactArgs(1),
	RunE:  runStyleDelete,
}

var styleExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export every saved value to a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runStyleExport,
}

var styleImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import values from a YAML file written by export",
	Args:  cobra.ExactArgs(1),
	RunE:  runStyleImport,
}

var styleProjectCmd = &cobra.Command{
	Use:   "project [name]...",
	Short: "Project saved values into paint",
	Long:  `Project resolves every saved value (or the named ones) against the active theme.`,
	RunE:  runStyleProject,
}

func init() {
	rootCmd.AddCommand(styleCmd)
	styleCmd.AddCommand(styleSaveCmd, styleGradientCmd, styleShowCmd, styleListCmd, styleDeleteCmd,
		styleExportCmd, styleImportCmd, styleProjectCmd, styleEditCmd)

	styleSaveGradient.register(styleSaveCmd)
	styleGradientFlags.register(styleGradientCmd)
	styleListCmd.Flags().StringVar(&styleListKind, "kind", "",
		"only list values of this kind (simple, gradient, variable)")
	styleShowCmd.Flags().BoolVarP(&styleShowPreview, "preview", "p", false, "render a terminal preview")
	styleProjectCmd.Flags().BoolVar(&styleProjectJSON, "json", false, "print paint as JSON")
}

// withStore loads dependencies, opens the store and closes it after fn.
func withStore(cmd *cobra.Command, fn func(*appDeps, *styles.SQLiteStore) error) error {
	deps, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	store, err := deps.openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(deps, store)
}

func runStyleSave(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(deps *appDeps, store *styles.SQLiteStore) error {
		v, err := valueFromInput(args[1:], &styleSaveGradient, deps.Engine)
		if err != nil {
			return err
		}
		saved, err := store.Save(cmd.Context(), args[0], v)
		if err != nil {
			return err
		}
		deps.Logger.WithStyle(saved.Name).Debug("style saved", "id", saved.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\t%s\n", saved.Name, describe(saved.Value))
		return nil
	})
}

func runStyleGradient(cmd *cobra.Command, args []string) error {
	if len(styleGradientFlags.stops) == 0 {
		return fmt.Errorf("a gradient needs at least one --stop")
	}
	return withStore(cmd, func(deps *appDeps, store *styles.SQLiteStore) error {
		v, err := styleGradientFlags.build(deps.Engine)
		if err != nil {
			return err
		}
		saved, err := store.Save(cmd.Context(), args[0], v)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\t%s\n", saved.Name, describe(saved.Value))
		return nil
	})
}

func runStyleShow(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(deps *appDeps, store *styles.SQLiteStore) error {
		s, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\t%s\n", s.Name, describe(s.Value))
		fmt.Fprintf(out, "id\t%s\n", s.ID)
		fmt.Fprintf(out, "updated\t%s\n", s.UpdatedAt.Format("2006-01-02 15:04:05"))

		p, err := deps.Projector.Project(s.Value, deps.Theme, deps.projectOptions()...)
		if err != nil {
			// Unmapped colours are valid to store; only painting fails.
			fmt.Fprintf(out, "paint\t%v\n", err)
			return nil
		}
		return printPaint(cmd, deps, p, false, styleShowPreview)
	})
}

func runStyleList(cmd *cobra.Command, _ []string) error {
	kind, err := recordKind(styleListKind)
	if err != nil {
		return err
	}
	return withStore(cmd, func(_ *appDeps, store *styles.SQLiteStore) error {
		list, err := store.List(cmd.Context(), kind)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "no saved styles")
			return nil
		}
		for _, s := range list {
			fmt.Fprintf(out, "%-20s %-9s %s\n", s.Name, s.Value.Variant(), codec.Serialize(s.Value))
		}
		return nil
	})
}

// recordKind maps a variant name from the command line to a record kind.
func recordKind(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	v, err := core.ParseVariant(strings.ToLower(name))
	if err != nil {
		return "", err
	}
	switch v {
	case core.VariantGradient:
		return codec.KindGradient, nil
	case core.VariantVariable:
		return codec.KindVariable, nil
	default:
		return codec.KindSimple, nil
	}
}

func runStyleDelete(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(_ *appDeps, store *styles.SQLiteStore) error {
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	})
}

func runStyleExport(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(_ *appDeps, store *styles.SQLiteStore) error {
		list, err := store.List(cmd.Context(), "")
		if err != nil {
			return err
		}
		if err := styles.ExportFile(args[0], list); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d styles to %s\n", len(list), args[0])
		return nil
	})
}

func runStyleImport(cmd *cobra.Command, args []string) error {
	imported, err := styles.ImportFile(args[0])
	if err != nil {
		return err
	}
	return withStore(cmd, func(_ *appDeps, store *styles.SQLiteStore) error {
		for _, s := range imported {
			if _, err := store.Save(cmd.Context(), s.Name, s.Value); err != nil {
				return fmt.Errorf("importing %s: %w", s.Name, err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d styles\n", len(imported))
		return nil
	})
}

func runStyleProject(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(deps *appDeps, store *styles.SQLiteStore) error {
		ctx := cmd.Context()
		var list []*styles.Style
		if len(args) == 0 {
			all, err := store.List(ctx, "")
			if err != nil {
				return err
			}
			list = all
		} else {
			for _, name := range args {
				s, err := store.Get(ctx, name)
				if err != nil {
					return err
				}
				list = append(list, s)
			}
		}

		// Projected in parallel, printed in store order.
		paints := make([]paint.Paint, len(list))
		var g errgroup.Group
		g.SetLimit(8)
		for i, s := range list {
			g.Go(func() error {
				p, err := deps.Projector.Project(s.Value, deps.Theme, deps.projectOptions()...)
				if err != nil {
					return fmt.Errorf("projecting %s: %w", s.Name, err)
				}
				paints[i] = p
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, s := range list {
			if styleProjectJSON {
				fmt.Fprintf(out, "# %s\n", s.Name)
				if err := printPaint(cmd, deps, paints[i], true, false); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintf(out, "%-20s %s\n", s.Name, paints[i])
		}
		return nil
	})
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/theme"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <variable>...",
	Short: "Resolve theme variables to colours",
	Long: `Resolve looks each variable up in the active theme. A variable the theme does
not define resolves to the configured fallback colour and is marked as such,
with the closest defined names as suggestions.`,
	Example: `  swatch resolve accent background
  swatch resolve -- --accent var(--error)`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	deps, err := loadDeps(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	active := deps.Theme.Load()
	for _, arg := range args {
		name, err := variableArg(arg)
		if err != nil {
			return err
		}

		c, found := deps.Resolver.Lookup(name, deps.Theme)
		if found {
			fmt.Fprintf(out, "%-24s %s\n", name, c.Hex())
			continue
		}
		line := fmt.Sprintf("%-24s %s (fallback)", name, c.Hex())
		if hints := active.Suggest(name, 3); len(hints) > 0 {
			line += "  did you mean: " + strings.Join(hints, ", ")
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

// variableArg accepts "--name", "var(--name)" or a bare "name". Bare names
// save typing "--" after the flag terminator.
func variableArg(arg string) (string, error) {
	if codec.IsVariable(arg) {
		v, err := codec.Parse(arg)
		if err != nil {
			return "", err
		}
		name, _ := v.VariableName()
		return name, nil
	}
	if strings.TrimSpace(arg) == "" {
		return "", fmt.Errorf("empty variable name")
	}
	return theme.NormalizeName(arg), nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

var (
	transitionTo       string
	transitionGradient gradientFlags
)

var transitionCmd = &cobra.Command{
	Use:   "transition [text] --to <simple|gradient|variable>",
	Short: "Switch a value to another variant",
	Long: `Transition converts a value to another variant the way the editor does when a
different tab is picked. Gradients keep their first stop colour, variables
resolve through the active theme, and switching to a variable starts from the
configured default variable.`,
	RunE: runTransition,
}

func init() {
	rootCmd.AddCommand(transitionCmd)

	transitionCmd.Flags().StringVar(&transitionTo, "to", "", "target variant (simple, gradient, variable)")
	transitionGradient.register(transitionCmd)
	_ = transitionCmd.MarkFlagRequired("to")
}

func runTransition(cmd *cobra.Command, args []string) error {
	to, err := core.ParseVariant(transitionTo)
	if err != nil {
		return err
	}
	deps, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	v, err := valueFromInput(args, &transitionGradient, deps.Engine)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), describe(deps.Engine.Transition(v, to)))
	return nil
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/swatch/internal/adapters/styles"
	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/edit"
)

// Edit flags.
var (
	styleEditTo         string
	styleEditColor      string
	styleEditVariable   string
	styleEditAngle      string
	styleEditClearAngle bool
	styleEditAppend     []string
	styleEditInsert     []string
	styleEditRemove     []int
	styleEditMove       []string
	styleEditStopColor  []string
	styleEditStopAmount []string
	styleEditDryRun     bool
)

var styleEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a saved value",
	Long: `Edit applies field edits to a saved value the way the interactive editor does
and saves the result. Edits apply in this order: --to, --variable, --color,
--angle/--clear-angle, --remove-stop, --insert-stop, --append-stop,
--move-stop, --stop-color, --stop-amount. Nothing is saved if any edit fails.

Stop indexes are zero-based:

  swatch style edit banner --to gradient --append-stop "red 100%"
  swatch style edit banner --stop-color 0:--accent --stop-amount 1:40`,
	Args: cobra.ExactArgs(1),
	RunE: runStyleEdit,
}

func init() {
	f := styleEditCmd.Flags()
	f.StringVar(&styleEditTo, "to", "", "switch to variant (simple, gradient, variable)")
	f.StringVar(&styleEditColor, "color", "", "set the simple colour")
	f.StringVar(&styleEditVariable, "variable", "", "set the referenced variable")
	f.StringVar(&styleEditAngle, "angle", "", `set the gradient angle ("45deg", "to top")`)
	f.BoolVar(&styleEditClearAngle, "clear-angle", false, "unset the gradient angle")
	f.StringArrayVar(&styleEditAppend, "append-stop", nil, `append a stop "<colour> [<position>]"`)
	f.StringArrayVar(&styleEditInsert, "insert-stop", nil, `insert a stop "<index>:<colour> [<position>]"`)
	f.IntSliceVar(&styleEditRemove, "remove-stop", nil, "remove the stop at index")
	f.StringArrayVar(&styleEditMove, "move-stop", nil, `move a stop "<from>:<to>"`)
	f.StringArrayVar(&styleEditStopColor, "stop-color", nil, `set a stop colour "<index>:<colour>"`)
	f.StringArrayVar(&styleEditStopAmount, "stop-amount", nil, `set a stop position amount "<index>:<amount>"`)
	f.BoolVar(&styleEditDryRun, "dry-run", false, "print the result without saving")
}

func runStyleEdit(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(deps *appDeps, store *styles.SQLiteStore) error {
		s, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		session := deps.Engine.NewSession(s.Value)

		if styleEditTo != "" {
			to, err := core.ParseVariant(styleEditTo)
			if err != nil {
				return err
			}
			session.Select(to)
		}
		edits, err := collectEdits(deps.Engine)
		if err != nil {
			return err
		}
		for _, e := range edits {
			if err := session.Apply(e); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if !session.Dirty() {
			fmt.Fprintf(out, "%s unchanged\n", s.Name)
			return nil
		}
		if styleEditDryRun {
			fmt.Fprintf(out, "%s\t%s\n", s.Name, describe(session.Current()))
			return nil
		}
		saved, err := store.Save(cmd.Context(), s.Name, session.Current())
		if err != nil {
			return err
		}
		deps.Logger.WithStyle(saved.Name).Debug("style edited",
			"from", session.Initial().Variant(), "to", session.Selected())
		fmt.Fprintf(out, "saved %s\t%s\n", saved.Name, describe(saved.Value))
		return nil
	})
}

// collectEdits turns the edit flags into edits in their documented order.
func collectEdits(e *edit.Engine) ([]edit.Edit, error) {
	var edits []edit.Edit

	if styleEditVariable != "" {
		edits = append(edits, edit.SetVariableName(styleEditVariable))
	}
	if styleEditColor != "" {
		c, err := e.ColorFromText(styleEditColor)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit.SetSimpleColor(c))
	}
	if styleEditClearAngle {
		edits = append(edits, edit.ClearAngle())
	} else if styleEditAngle != "" {
		a, err := codec.ParseAngle(styleEditAngle)
		if err != nil {
			return nil, err
		}
		edits = append(edits, angleEdit(a))
	}

	for _, i := range styleEditRemove {
		edits = append(edits, edit.RemoveStop(i))
	}
	for _, arg := range styleEditInsert {
		i, text, err := splitIndexed(arg)
		if err != nil {
			return nil, err
		}
		stop, err := e.StopFromText(text)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit.InsertStop(i, stop))
	}
	for _, text := range styleEditAppend {
		stop, err := e.StopFromText(text)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit.AppendStop(stop))
	}
	for _, arg := range styleEditMove {
		from, rest, err := splitIndexed(arg)
		if err != nil {
			return nil, err
		}
		to, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return nil, fmt.Errorf("invalid move target in %q: %w", arg, err)
		}
		edits = append(edits, edit.MoveStop(from, to))
	}
	for _, arg := range styleEditStopColor {
		i, text, err := splitIndexed(arg)
		if err != nil {
			return nil, err
		}
		edits = append(edits, e.SetStopColorText(i, text))
	}
	for _, arg := range styleEditStopAmount {
		i, text, err := splitIndexed(arg)
		if err != nil {
			return nil, err
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount in %q: %w", arg, err)
		}
		edits = append(edits, edit.SetStopAmount(i, amount))
	}
	return edits, nil
}

func angleEdit(a core.Angle) edit.Edit {
	if d, ok := a.Direction(); ok {
		return edit.SetDirection(d)
	}
	if m, unit, ok := a.Constant(); ok {
		return edit.Chain(edit.SetAngleUnit(unit), edit.SetAngleMagnitude(m))
	}
	return edit.ClearAngle()
}

// splitIndexed splits "<index>:<rest>".
func splitIndexed(arg string) (int, string, error) {
	idx, rest, ok := strings.Cut(arg, ":")
	if !ok {
		return 0, "", fmt.Errorf("expected <index>:<value>, got %q", arg)
	}
	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return 0, "", fmt.Errorf("invalid index in %q: %w", arg, err)
	}
	return i, rest, nil
}

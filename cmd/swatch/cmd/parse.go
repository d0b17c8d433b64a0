package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/swatch/internal/clip"
	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
)

var (
	parseJSON bool
	parseCopy bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse colour text into a value",
	Long: `Parse reads a colour ("#ff8800", "rebeccapurple", "rgba(0, 0, 0, 0.5)") or a
variable reference ("--accent", "var(--accent)") and prints its variant and
canonical text.

Unknown colour names are kept verbatim and reported as unmapped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the value record as JSON")
	parseCmd.Flags().BoolVar(&parseCopy, "copy", false, "copy the canonical text to the clipboard")
}

func runParse(cmd *cobra.Command, args []string) error {
	v, err := codec.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if parseJSON {
		data, err := json.MarshalIndent(codec.EncodeRecord(v), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprintln(out, describe(v))
	}

	if parseCopy {
		res, err := clip.WriteAll(codec.Serialize(v))
		if err != nil {
			return fmt.Errorf("copying: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), res)
	}
	return nil
}

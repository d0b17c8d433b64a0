package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/fsutil"
)

var serializeCmd = &cobra.Command{
	Use:   "serialize [file|-]",
	Short: "Print the text form of a value record",
	Long: `Serialize reads a value record (YAML or JSON, as written by "parse --json")
from a file or stdin and prints its canonical text.

Gradients print as linear-gradient(...) for export.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSerialize,
}

func init() {
	rootCmd.AddCommand(serializeCmd)
}

func runSerialize(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = fsutil.ReadFileScoped(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}

	var rec codec.Record
	// JSON is a subset of YAML, so one decoder reads both.
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return core.ErrValidation(core.CodeInvalidRecord, "invalid record").WithCause(err)
	}
	v, err := codec.DecodeRecord(rec)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), codec.Serialize(v))
	return nil
}

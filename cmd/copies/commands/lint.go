package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewLintCmd creates a new lint command
func NewLintCmd(load OptsLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Parse the instruction file without executing it",
		Long: `Lint classifies each line of the instruction file and reports lines that
match no known instruction shape. Nothing is executed and the instruction
file is left in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "lint").Logger().WithContext(ctx)

			o, err := load(ctx)
			if err != nil {
				return err
			}
			defer o.Close()

			r := o.NewRunner()
			entries, err := r.Lint()
			if err != nil {
				return errors.Errorf("linting instruction file: %w", err)
			}
			if entries == nil {
				pterm.Info.Printfln("no instruction file at %s", r.InstructionFile())
				return nil
			}

			data := pterm.TableData{{"Line", "Kind", "Detail"}}
			bad := 0
			for _, e := range entries {
				kind := e.Kind
				if e.Bad {
					bad++
					kind = pterm.FgRed.Sprint(kind)
				}
				data = append(data, []string{strconv.Itoa(e.LineNum), kind, e.Detail})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return errors.Errorf("rendering lint table: %w", err)
			}

			if bad > 0 {
				return errors.Errorf("%d unrecognized line(s)", bad)
			}
			return nil
		},
	}
}

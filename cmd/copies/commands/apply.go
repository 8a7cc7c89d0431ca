package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/brettwooldridge/winsw/cmd/copies/opts"
)

// OptsLoader builds the shared command dependencies once flags are parsed.
type OptsLoader func(ctx context.Context) (*opts.RootOpts, error)

// NewApplyCmd creates a new apply command
func NewApplyCmd(load OptsLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Run one interpretation pass over the instruction file",
		Long: `Apply reads the host's <base_path>.copies instruction file and performs
each file mutation it describes, in order. The instruction file is deleted
once the pass completes, so a batch is never applied twice. An absent
instruction file is a no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			o, err := load(ctx)
			if err != nil {
				return err
			}
			defer o.Close()

			if err := o.NewRunner().Run(ctx); err != nil {
				return errors.Errorf("running instruction file: %w", err)
			}
			return nil
		},
	}
}

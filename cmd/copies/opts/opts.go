package opts

import (
	"github.com/brettwooldridge/winsw/pkg/config"
	"github.com/brettwooldridge/winsw/pkg/diag"
	"github.com/brettwooldridge/winsw/pkg/executor"
	"github.com/brettwooldridge/winsw/pkg/runner"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config *config.Config
	Sink   diag.Sink

	// Close releases the wrapper-log sink when one is configured.
	Close func() error
}

// NewRunner builds the batch runner for the configured host. Execute
// instructions only get a real process runner when the config opts in.
func (o *RootOpts) NewRunner() *runner.Runner {
	var cr executor.CommandRunner
	if o.Config.Execute != nil && o.Config.Execute.Enabled {
		cr = &executor.ProcessRunner{Dir: o.Config.WorkDir}
	}
	return runner.New(runner.Options{
		BasePath:      o.Config.BasePath,
		WorkDir:       o.Config.WorkDir,
		Sink:          o.Sink,
		CommandRunner: cr,
	})
}

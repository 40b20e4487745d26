package main

import (
	"context"
	"os"

	"go.uber.org/fx"

	"github.com/LabhanshAgrawal/sql-formatter2/pkg/cmd"
	"github.com/LabhanshAgrawal/sql-formatter2/pkg/config"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Supply(os.Args),
		fx.Supply(&cmd.Version{Version: version, Commit: commit, Timestamp: date}),
		fx.Provide(func() context.Context { return context.Background() }),
		config.Module,
		cmd.Module,
	).Run()
}

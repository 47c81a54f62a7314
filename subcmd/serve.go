package subcmd

import (
	"github.com/but80/eartrainer/server"
	"github.com/urfave/cli"
)

var Serve = cli.Command{
	Name:      "serve",
	Usage:     "Serves the spelling API over HTTP",
	ArgsUsage: " ",
	Flags: withLogFlags(
		cli.StringFlag{
			Name:   "addr, a",
			Usage:  `Listen address`,
			Value:  ":8080",
			EnvVar: "EARTRAINER_ADDR",
		},
		cli.StringSliceFlag{
			Name:   "origin",
			Usage:  `Allowed CORS origin (repeatable, default: any)`,
			EnvVar: "EARTRAINER_ORIGINS",
		},
	),
	Action: func(ctx *cli.Context) error {
		setLogLevel(ctx)
		s := server.New(ctx.StringSlice("origin"))
		if err := s.ListenAndServe(ctx.String("addr")); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	},
}

package subcmd

import (
	"fmt"

	"github.com/but80/eartrainer/music/log"
	"github.com/urfave/cli"
)

var Spell = cli.Command{
	Name:      "spell",
	Aliases:   []string{"s"},
	Usage:     "Spells an interval, chord, scale or mode",
	ArgsUsage: "<root> <interval size|chord quality|scale|mode>",
	Flags: withLogFlags(
		cli.BoolFlag{
			Name:  "down",
			Usage: `Spells intervals downward`,
		},
		cli.StringFlag{
			Name:  "mode, m",
			Usage: `Spells this mode of the given scale`,
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Outputs in JSON format`,
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 {
			usageError(ctx)
		}
		setLogLevel(ctx)
		args := ctx.Args()
		target := joinArgs(args[1:])
		log.Debugf("spelling %q from %s", target, args[0])
		s, err := resolveTarget(args[0], target, ctx.String("mode"), ctx.Bool("down"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if ctx.Bool("json") {
			if err := printJSON(ctx, s); err != nil {
				return cli.NewExitError(err, 1)
			}
			return nil
		}
		fmt.Fprintln(ctx.App.Writer, s.String())
		return nil
	},
}

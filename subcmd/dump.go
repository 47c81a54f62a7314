package subcmd

import (
	"fmt"

	"github.com/but80/eartrainer/game"
	"github.com/but80/eartrainer/pb"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var Dump = cli.Command{
	Name:      "dump",
	Aliases:   []string{"d"},
	Usage:     "Dumps the notes, intervals, chords, scales and modes",
	ArgsUsage: " ",
	Flags: withLogFlags(
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Dumps in JSON format`,
		},
		cli.BoolFlag{
			Name:  "protobuf, p",
			Usage: `Dumps in protobuf (google.protobuf.Struct)`,
		},
	),
	Action: func(ctx *cli.Context) error {
		setLogLevel(ctx)
		data := game.NewCatalog()
		if ctx.Bool("json") {
			if err := printJSON(ctx, data); err != nil {
				return cli.NewExitError(err, 1)
			}
		} else if ctx.Bool("protobuf") {
			b, err := pb.Marshal(data)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			if _, err := ctx.App.Writer.Write(b); err != nil {
				return cli.NewExitError(errors.WithStack(err), 1)
			}
		} else {
			fmt.Fprintln(ctx.App.Writer, data.String())
		}
		return nil
	},
}

package subcmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/but80/eartrainer/game"
	"github.com/but80/eartrainer/music/log"
	"github.com/but80/eartrainer/music/note"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var logFlags = []cli.Flag{
	cli.BoolFlag{
		Name:   "debug, d",
		Usage:  `Show debug messages`,
		EnvVar: "EARTRAINER_DEBUG",
	},
	cli.BoolFlag{
		Name:   "quiet, q",
		Usage:  `Suppress information messages`,
		EnvVar: "EARTRAINER_QUIET",
	},
	cli.BoolFlag{
		Name:   "silent, Q",
		Usage:  `Do not output any messages`,
		EnvVar: "EARTRAINER_SILENT",
	},
}

func withLogFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, logFlags...)
}

func setLogLevel(ctx *cli.Context) {
	log.SetLevelByFlags(ctx.Bool("debug"), ctx.Bool("silent"), ctx.Bool("quiet"))
}

func usageError(ctx *cli.Context) {
	cli.ShowCommandHelp(ctx, ctx.Command.Name)
	os.Exit(1)
}

func printJSON(ctx *cli.Context, data interface{}) error {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintln(ctx.App.Writer, string(j))
	return nil
}

// resolveTarget spells target from root. A non-empty mode picks a mode of
// the scale named by target.
func resolveTarget(root, target, mode string, descending bool) (game.Spelling, error) {
	n, err := note.Parse(root)
	if err != nil {
		return game.Spelling{}, err
	}
	if mode != "" {
		return game.SpellScale(n, target, mode)
	}
	return game.Resolve(n, target, descending)
}

func joinArgs(args cli.Args) string {
	return strings.Join(args, " ")
}

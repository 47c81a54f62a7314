package main

import (
	"os"

	"github.com/but80/eartrainer/music/log"
	"github.com/but80/eartrainer/subcmd"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("loading .env: %s", err)
	}

	app := cli.NewApp()
	app.Name = "eartrainer"
	app.Version = version
	app.Usage = "Drills spelling of intervals, chords and scales"
	app.Authors = []cli.Author{
		{
			Name:  "but80",
			Email: "mersenne.sister@gmail.com",
		},
	}
	app.HelpName = "eartrainer"

	app.Commands = []cli.Command{
		subcmd.Quiz,
		subcmd.Spell,
		subcmd.Dump,
		subcmd.Export,
		subcmd.Serve,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}

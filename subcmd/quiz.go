package subcmd

import (
	"os"
	"sync"

	"github.com/but80/eartrainer/game"
	"github.com/but80/eartrainer/music/log"
	"github.com/urfave/cli"
	"github.com/xlab/closer"
)

var Quiz = cli.Command{
	Name:      "quiz",
	Aliases:   []string{"z"},
	Usage:     "Asks interval, chord and scale spelling questions",
	ArgsUsage: " ",
	Flags: withLogFlags(
		cli.StringFlag{
			Name:   "mode, m",
			Usage:  `Game mode ` + game.GameModeList(),
			Value:  game.GameMode_Mixed.String(),
			EnvVar: "EARTRAINER_MODE",
		},
		cli.Int64Flag{
			Name:   "seed",
			Usage:  `Random seed (0: time based)`,
			EnvVar: "EARTRAINER_SEED",
		},
		cli.IntFlag{
			Name:   "rounds, n",
			Usage:  `Number of rounds (0: until exit)`,
			EnvVar: "EARTRAINER_ROUNDS",
		},
		cli.BoolFlag{
			Name:   "state, s",
			Usage:  `Show state`,
			EnvVar: "EARTRAINER_STATE",
		},
	),
	Action: func(ctx *cli.Context) error {
		mode, ok := game.ParseGameMode(ctx.String("mode"))
		if !ok || ctx.Int("rounds") < 0 {
			usageError(ctx)
		}
		setLogLevel(ctx)

		sk := game.NewScorekeeper()
		var once sync.Once
		report := func() {
			once.Do(func() {
				sk.Print(ctx.App.Writer)
			})
		}
		closer.Bind(report)

		log.Infof(`Answer with note names separated by spaces (e.g. "C Eb G"). An empty line or "exit" ends the quiz.`)
		s := game.NewSession(mode, game.NewRandom(ctx.Int64("seed")), sk, os.Stdin, ctx.App.Writer)
		s.Rounds = ctx.Int("rounds")
		s.ShowState = ctx.Bool("state")
		if err := s.Run(); err != nil {
			return cli.NewExitError(err, 1)
		}
		report()
		return nil
	},
}

package subcmd

import (
	"os"

	"github.com/but80/eartrainer/midiout"
	"github.com/but80/eartrainer/music/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var Export = cli.Command{
	Name:      "export",
	Aliases:   []string{"x"},
	Usage:     "Writes spelled chords or scales to a Standard MIDI File",
	ArgsUsage: "<root> <interval size|chord quality|scale|mode> [...]\n\n   Each argument after the root is one phrase. Write multi-word names with dashes (harmonic-minor).",
	Flags: withLogFlags(
		cli.StringFlag{
			Name:   "out, o",
			Usage:  `Output file`,
			Value:  "out.mid",
			EnvVar: "EARTRAINER_OUT",
		},
		cli.StringFlag{
			Name:  "style",
			Usage: `How notes are played (block|arpeggio)`,
			Value: "arpeggio",
		},
		cli.IntFlag{
			Name:  "octave",
			Usage: `Octave of the root note (4: middle C)`,
			Value: 4,
		},
		cli.Float64Flag{
			Name:  "tempo, t",
			Usage: `Tempo (BPM)`,
			Value: 120,
		},
		cli.BoolFlag{
			Name:  "down",
			Usage: `Spells intervals downward`,
		},
		cli.StringFlag{
			Name:  "mode, m",
			Usage: `Exports this mode of each given scale`,
		},
	),
	Action: func(ctx *cli.Context) error {
		style, ok := midiout.ParseStyle(ctx.String("style"))
		if ctx.NArg() < 2 || !ok || ctx.Float64("tempo") <= 0 {
			usageError(ctx)
		}
		setLogLevel(ctx)
		args := ctx.Args()
		opts := midiout.DefaultOptions()
		opts.Style = style
		opts.Octave = ctx.Int("octave")
		opts.Tempo = ctx.Float64("tempo")
		phrases, err := buildPhrases(args[0], args[1:], ctx.String("mode"), ctx.Bool("down"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if err := writeMIDI(ctx.String("out"), phrases, opts); err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Infof("wrote %d phrase(s) to %s", len(phrases), ctx.String("out"))
		return nil
	},
}

func buildPhrases(root string, targets []string, mode string, descending bool) ([]midiout.Phrase, error) {
	phrases := make([]midiout.Phrase, 0, len(targets))
	for _, target := range targets {
		s, err := resolveTarget(root, target, mode, descending)
		if err != nil {
			return nil, err
		}
		phrases = append(phrases, midiout.Phrase{Name: s.Label, Notes: s.Notes})
	}
	return phrases, nil
}

func writeMIDI(file string, phrases []midiout.Phrase, opts midiout.Options) error {
	f, err := os.Create(file)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := midiout.Write(f, phrases, opts); err != nil {
		f.Close()
		return err
	}
	return errors.WithStack(f.Close())
}

package subcmd

import (
	"os"
	"strconv"

	"github.com/but80/notefreq/pitch/log"
	"github.com/but80/notefreq/pitch/note"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var Show = cli.Command{
	Name:      "show",
	Aliases:   []string{"s"},
	Usage:     "Shows notes in 12-tone equal temperament (EDO12)",
	ArgsUsage: "<note>...",
	Flags: flags(noteFlags, []cli.Flag{
		cli.BoolFlag{
			Name:  "hertz, z",
			Usage: `Treat arguments as frequencies in Hz`,
		},
		cli.BoolFlag{
			Name:  "midi, m",
			Usage: `Treat arguments as MIDI note numbers (69 = A4)`,
		},
	}, logFlags),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "show")
			os.Exit(1)
		}
		if err := setLogLevel(ctx); err != nil {
			return cli.NewExitError(err, 1)
		}
		notes := []note.Note{}
		for _, arg := range args(ctx) {
			if ctx.Bool("hertz") {
				hz, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return cli.NewExitError(errors.Wrapf(err, "invalid frequency %q", arg), 1)
				}
				notes = append(notes, note.New(note.Hertz(hz)))
				continue
			}
			if ctx.Bool("midi") {
				k, err := strconv.Atoi(arg)
				if err != nil {
					return cli.NewExitError(errors.Wrapf(err, "invalid MIDI note number %q", arg), 1)
				}
				key := note.FromMIDIKey(k)
				if ctx.Bool("strict") {
					if err := note.Check(key); err != nil {
						return cli.NewExitError(errors.Wrapf(err, "MIDI note number %d", k), 1)
					}
				}
				d := note.ValidateWestern(key)
				d.A = ctx.Float64("reference")
				notes = append(notes, note.EDO12(note.Attrs(d.Attributes())))
				continue
			}
			s, err := spec(ctx, arg)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			n := note.EDO12(s)
			log.Debugf("%s -> %s", arg, n.Name)
			notes = append(notes, n)
		}
		if err := output(ctx, notes); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	},
}

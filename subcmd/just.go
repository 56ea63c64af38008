package subcmd

import (
	"os"

	"github.com/but80/notefreq/pitch/log"
	"github.com/but80/notefreq/pitch/note"
	"github.com/urfave/cli"
)

var Just = cli.Command{
	Name:      "just",
	Aliases:   []string{"j"},
	Usage:     "Shows notes in just intonation relative to a key",
	ArgsUsage: "<key> <note>...",
	Flags:     flags(noteFlags, logFlags),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 {
			cli.ShowCommandHelp(ctx, "just")
			os.Exit(1)
		}
		if err := setLogLevel(ctx); err != nil {
			return cli.NewExitError(err, 1)
		}
		a := args(ctx)
		key, err := spec(ctx, a[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Debugf("key: %s", note.EDO12(key))
		log.Enter()
		notes := []note.Note{}
		for _, arg := range a[1:] {
			s, err := spec(ctx, arg)
			if err != nil {
				log.Leave()
				return cli.NewExitError(err, 1)
			}
			n := note.JustIntonation(s, key)
			log.Debugf("%s -> %s", arg, n.Name)
			notes = append(notes, n)
		}
		log.Leave()
		if err := output(ctx, notes); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	},
}

package subcmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/but80/notefreq/pb"
	"github.com/but80/notefreq/pitch/log"
	"github.com/but80/notefreq/pitch/note"
	"github.com/but80/notefreq/pitch/util"
	"github.com/but80/notefreq/pitch/western"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var logFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
	cli.StringFlag{
		Name:  "log-level",
		Usage: `Log level (none, warn, info or debug); overrides --debug, --quiet and --silent`,
	},
}

var noteFlags = []cli.Flag{
	cli.Float64Flag{
		Name:  "reference, A",
		Usage: `Frequency of A4 in Hz`,
		Value: western.DefaultA,
	},
	cli.BoolFlag{
		Name:  "strict",
		Usage: `Reject out-of-range octaves and unknown symbols instead of correcting them`,
	},
	cli.BoolFlag{
		Name:  "json, j",
		Usage: `Output in JSON format`,
	},
	cli.BoolFlag{
		Name:  "protobuf, p",
		Usage: `Output a single note as protobuf (google.protobuf.Struct)`,
	},
}

func flags(groups ...[]cli.Flag) []cli.Flag {
	result := []cli.Flag{}
	for _, g := range groups {
		result = append(result, g...)
	}
	return result
}

func setLogLevel(ctx *cli.Context) error {
	if s := ctx.String("log-level"); s != "" {
		l, err := log.ParseLevel(s)
		if err != nil {
			return err
		}
		log.Level = l
		return nil
	}
	if ctx.Bool("debug") {
		log.Level = log.LogLevel_Debug
	} else if ctx.Bool("silent") {
		log.Level = log.LogLevel_None
	} else if ctx.Bool("quiet") {
		log.Level = log.LogLevel_Warn
	}
	return nil
}

// args は、全角文字を半角に畳み込んだコマンドライン引数を返します。
func args(ctx *cli.Context) []string {
	result := []string{}
	for _, a := range ctx.Args() {
		result = append(result, util.FoldWidth(a))
	}
	return result
}

func spec(ctx *cli.Context, name string) (note.Spec, error) {
	attrs := western.Parse(name)
	if ctx.Bool("strict") {
		if err := western.Check(attrs); err != nil {
			return nil, errors.Wrapf(err, "%q", name)
		}
	}
	attrs.A = ctx.Float64("reference")
	return note.Attrs(attrs), nil
}

func output(ctx *cli.Context, notes []note.Note) error {
	switch {
	case ctx.Bool("json"):
		var data interface{} = notes
		if len(notes) == 1 {
			data = notes[0]
		}
		j, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Println(string(j))
	case ctx.Bool("protobuf"):
		if len(notes) != 1 {
			return errors.New("protobuf output supports exactly one note")
		}
		b, err := pb.Marshal(notes[0])
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(b); err != nil {
			return errors.WithStack(err)
		}
	default:
		for _, n := range notes {
			fmt.Println(n.String())
		}
	}
	return nil
}

package main

import (
	"os"

	"github.com/but80/notefreq/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "notefreq"
	app.Version = version
	app.Usage = "Converts note names like 3E♭ or C#2 to frequencies"
	app.Authors = []cli.Author{
		{
			Name:  "but80",
			Email: "mersenne.sister@gmail.com",
		},
	}
	app.HelpName = "notefreq"

	app.Commands = []cli.Command{
		subcmd.Show,
		subcmd.Just,
		subcmd.Serve,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}

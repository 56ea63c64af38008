package subcmd

import (
	"net/http"

	"github.com/but80/notefreq/pitch/log"
	"github.com/but80/notefreq/server"
	"github.com/urfave/cli"
	"github.com/xlab/closer"
)

var Serve = cli.Command{
	Name:    "serve",
	Aliases: []string{"S"},
	Usage:   "Serves the conversion API over HTTP",
	Flags: flags([]cli.Flag{
		cli.StringFlag{
			Name:  "addr, a",
			Usage: `Address to listen on`,
			Value: ":8080",
		},
		cli.StringSliceFlag{
			Name:  "origin",
			Usage: `Allowed CORS origin (repeatable, default: any)`,
		},
	}, logFlags),
	Action: func(ctx *cli.Context) error {
		if err := setLogLevel(ctx); err != nil {
			return cli.NewExitError(err, 1)
		}
		srv := &http.Server{
			Addr:    ctx.String("addr"),
			Handler: server.NewHandler(ctx.StringSlice("origin")),
		}
		closer.Bind(func() {
			log.Infof("shutting down")
			srv.Close()
		})
		go func() {
			log.Infof("listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warnf("Server error: %s", err)
				closer.Close()
			}
		}()
		closer.Hold()
		return nil
	},
}

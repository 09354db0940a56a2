package main

import (
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/urfave/cli/v2"

	"syshealth/commands"
)

func main() {
	syshealth := cli.NewApp()
	syshealth.Name = "syshealth"
	syshealth.Usage = "One-shot local machine health snapshot"
	syshealth.Version = "0.1.0"

	syshealth.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Set for verbose logging",
		},
	}

	syshealth.Commands = []*cli.Command{
		commands.CheckCommand,
	}

	// running with no arguments performs one full cycle
	syshealth.Action = commands.CheckCommand.Action

	syshealth.Before = func(ctx *cli.Context) error {
		logger := lager.NewLogger("syshealth")
		logLevel := lager.INFO
		if ctx.Bool("debug") {
			logLevel = lager.DEBUG
		}
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, logLevel))
		ctx.App.Metadata["logger"] = logger

		return nil
	}

	if err := syshealth.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

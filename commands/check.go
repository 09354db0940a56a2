package commands

import (
	"net"
	"os"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/urfave/cli/v2"

	"syshealth/commands/config"
	"syshealth/health"
	"syshealth/probes"
	"syshealth/report"
)

var CheckCommand = &cli.Command{
	Name:        "check",
	Usage:       "check [--output-dir <dir>]",
	Description: "Collects one health snapshot, writes the JSON report and prints a summary.",

	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to a yaml config file",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Usage: "Directory the JSON report is written to",
		},
		&cli.IntFlag{
			Name:  "top",
			Usage: "Number of processes to report",
		},
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "host:port dialed for the connectivity test",
		},
	},

	Action: func(ctx *cli.Context) error {
		logger := ctx.App.Metadata["logger"].(lager.Logger)
		logger = logger.Session("check")

		cfg, err := loadConfig(ctx)
		if err != nil {
			logger.Error("loading-config", err)
			return cli.Exit(err.Error(), 1)
		}

		checker := health.NewChecker(
			probes.NewDiskProbe(probes.GopsutilVolumes{}),
			probes.NewCPUProbe(probes.GopsutilCPU{}),
			probes.NewMemoryProbe(probes.GopsutilMemory{}),
			probes.NewProcessProbe(probes.GopsutilProcesses{}, cfg.TopProcesses),
			probes.NewNetworkProbe(&net.Dialer{}, cfg.ConnectivityEndpoint),
			probes.NewUpdateProbe(probes.PackageManagerUpdates{}),
		)

		hostname, err := probes.GopsutilHost{}.Hostname()
		if err != nil {
			logger.Error("reading-hostname", err)
			return cli.Exit(err.Error(), 1)
		}

		now := time.Now()
		healthReport, err := checker.Run(logger, hostname, now)
		if err != nil {
			logger.Error("collecting", err)
			return cli.Exit(err.Error(), 1)
		}

		path, err := report.Write(cfg.OutputDir, healthReport, now)
		if err != nil {
			logger.Error("writing-report", err)
			return cli.Exit(err.Error(), 1)
		}
		logger.Info("report-written", lager.Data{"path": path})

		report.Print(os.Stdout, healthReport)
		return nil
	},
}

// loadConfig merges the optional config file with flags; flags win, zero
// values fall back to defaults.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	builder := config.NewBuilder()
	if configPath := ctx.String("config"); configPath != "" {
		var err error
		builder, err = config.NewBuilderFromFile(configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	return builder.
		WithOutputDir(ctx.String("output-dir")).
		WithTopProcesses(ctx.Int("top")).
		WithConnectivityEndpoint(ctx.String("endpoint")).
		Build()
}

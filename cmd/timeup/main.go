package main

import (
	"fmt"
	stdlog "log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/wzugang/timeup"
	"github.com/wzugang/timeup/config"
	koanfp "github.com/wzugang/timeup/config/koanf"
	"github.com/wzugang/timeup/internal/demo"
	"github.com/wzugang/timeup/log"
	"github.com/wzugang/timeup/metrics"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "timeup",
		Short: "Notify member, const member and free function callbacks",
		Long: `Registers a.Update (a.MyTime=2), b.UpdateConst (b.MyTime=5),
UpdateStatic and UpdateGlobal, then notifies them all with the
configured current time and prints each result on its own line.

Settings are read from defaults, the optional JSON --config file,
TIMEUP_* environment variables and flags, in that order.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := koanfp.Load(
				koanfp.Defaults(config.Defaults),
				koanfp.File(configFile),
				koanfp.Env("TIMEUP_"),
				koanfp.Flags(cmd.Flags()))
			if err != nil {
				return err
			}
			settings, err := config.Load(koanfp.P(k), "")
			if err != nil {
				return err
			}
			stdr.SetVerbosity(settings.Verbosity)
			logger := stdr.New(stdlog.New(cmd.ErrOrStderr(), "", stdlog.LstdFlags))
			return run(cmd, settings, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "JSON configuration file")
	flags.String("name", "timeup", "registry name used in logs")
	flags.Int("cur-time", 0, "current time delivered to every callback")
	flags.Bool("stop-on-error", false, "stop at the first failed callback")
	flags.IntP("verbosity", "v", 0, "log verbosity")
	flags.Bool("metrics", false, "log callback metrics when done")
	return cmd
}

// newRegistry creates an empty registry logging each invocation
// once through the log decorator.  gatherer is nil unless
// metrics are enabled.
func newRegistry(
	settings config.Settings,
	logger   logr.Logger,
) (*timeup.Registry[timeup.Notify], *prometheus.Registry) {
	registry := timeup.NewRegistry[timeup.Notify](
		timeup.WithOptions(settings.Options()))
	log.Use(registry, logger, log.Verbosity(1))

	var gatherer *prometheus.Registry
	if settings.Metrics {
		gatherer = prometheus.NewRegistry()
		registry.Use(metrics.Decorator[timeup.Notify](
			metrics.New(metrics.WithRegistry(gatherer))))
	}
	return registry, gatherer
}

func run(cmd *cobra.Command, settings config.Settings, logger logr.Logger) error {
	registry, gatherer := newRegistry(settings, logger)

	a, b := &demo.Timer{MyTime: 2}, &demo.Timer{MyTime: 5}
	demo.Register(registry, a, b)

	results, err := registry.Notify(settings.Payload())
	for _, result := range results {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	if err != nil {
		return err
	}

	if gatherer != nil {
		families, err := gatherer.Gather()
		if err != nil {
			return err
		}
		for _, family := range families {
			logger.Info("metric", "name", family.GetName(), "series", len(family.GetMetric()))
		}
	}
	return nil
}

package cmd

import (
	"os"
	"strings"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/c9s/indicatorkit/pkg/cmd/cmdutil"
	"github.com/c9s/indicatorkit/pkg/envvar"
)

var RootCmd = &cobra.Command{
	Use:   "indicatorkit",
	Short: "indicatorkit computes technical indicators over candlestick csv files",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	// the flags are parsed at this point, so viper sees the command line values
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

func Execute() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Error("cannot execute command")
		os.Exit(1)
	}
}

func setupLogger() {
	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	logFile := viper.GetString("log-file")
	if environment, _ := envvar.String("INDICATORKIT_ENV"); logFile == "" && isProduction(environment) {
		logFile = "indicatorkit.log"
	}

	if logFile != "" {
		writer := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // megabytes
			MaxBackups: 7,
		}
		logger.AddHook(
			lfshook.NewHook(
				lfshook.WriterMap{
					log.DebugLevel: writer,
					log.InfoLevel:  writer,
					log.WarnLevel:  writer,
					log.ErrorLevel: writer,
					log.FatalLevel: writer,
				},
				&log.JSONFormatter{},
			),
		)
	}
}

func isProduction(environment string) bool {
	switch environment {
	case "production", "prod":
		return true
	}
	return false
}

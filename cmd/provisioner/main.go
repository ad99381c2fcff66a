package main

import (
	"context"
	"errors"
	"os"

	provisioner "gitlab.com/rawpixel-vincent/hsts-provisioner"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/cmd/provisioner/commands/provision"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/config"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/cli"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/exitcode"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging/storage"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/signal"
)

const (
	defaultConfigFile = "config.toml"
)

type globalFlags struct {
	Debug     bool   `long:"debug" description:"Set debug log level"`
	LogLevel  string `long:"log-level" description:"Set custom log level (debug, info, warning, error, fatal, panic)"`
	LogFile   string `long:"log-file" description:"File where logs should be saved"`
	LogFormat string `long:"log-format" description:"Format of log (text, json)"`

	ConfigFile string `long:"config" description:"Path to configuration file" env:"PROVISIONER_CONFIG"`
}

var (
	global = &globalFlags{
		ConfigFile: defaultConfigFile,
	}

	closeLogFile = cli.NewNopHook()
)

func main() {
	logger := logging.New()

	ctx := startSignalHandler(logger)

	a := setUpApplication(ctx, logger)

	err := a.Run(os.Args)
	if err != nil {
		logger.
			WithError(err).
			Error("Application execution failed")

		exitcode.GenerateExitFromError(err)
	}
}

func startSignalHandler(logger logging.Logger) context.Context {
	terminationHandler := signal.NewTerminationHandler(logger)
	go terminationHandler.HandleSignals()

	return terminationHandler.Context()
}

func setUpApplication(ctx context.Context, logger logging.Logger) *cli.App {
	a := cli.New(ctx, provisioner.NAME, "Installs and licenses the transfer server on remote hosts over SSH")

	a.AddBeforeFunc(func(ctx *cli.Context) error {
		ctx.SetLogger(logger)

		return nil
	})
	a.AddBeforeFunc(loadConfigurationFile)
	a.AddBeforeFunc(updateLogLevel)
	a.AddBeforeFunc(updateLogFormat)
	a.AddBeforeFunc(setLoggingToFile)
	a.AddBeforeFunc(logStartupMessage)

	// closeLogFile is replaced once the log file is opened, so it's looked
	// up when the application finishes
	a.AddAfterFunc(func(ctx *cli.Context) error {
		return closeLogFile(ctx)
	})

	a.AddGlobalFlagsFromStruct(global)

	a.RegisterCategory(provision.NewProvisionCategory())

	return a
}

func logStartupMessage(ctx *cli.Context) error {
	ctx.
		Logger().
		WithFields(logging.Fields{
			"version": provisioner.Version().ShortLine(),
		}).
		Infof("Starting %s", provisioner.NAME)

	return nil
}

// loadConfigurationFile falls back to the defaults only when the default
// configuration file is absent
func loadConfigurationFile(ctx *cli.Context) error {
	cfg, err := config.LoadFromFile(global.ConfigFile)
	if errors.Is(err, os.ErrNotExist) && global.ConfigFile == defaultConfigFile {
		ctx.
			Logger().
			WithField("file", global.ConfigFile).
			Debug("Configuration file not found, using defaults")

		ctx.SetConfig(config.Default())

		return nil
	}

	if err != nil {
		return err
	}

	ctx.SetConfig(cfg)

	return nil
}

func updateLogLevel(ctx *cli.Context) error {
	logLevel := ctx.Config().LogLevel
	if global.Debug {
		logLevel = "debug"
	} else if global.LogLevel != "" {
		logLevel = global.LogLevel
	}

	if logLevel == "" {
		return nil
	}

	return ctx.Logger().SetLevel(logLevel)
}

func updateLogFormat(ctx *cli.Context) error {
	logFormat := ctx.Config().LogFormat
	if global.LogFormat != "" {
		logFormat = global.LogFormat
	}

	if logFormat == "" {
		return nil
	}

	return ctx.Logger().SetFormat(logFormat)
}

func setLoggingToFile(ctx *cli.Context) error {
	logFile := ctx.Config().LogFile
	if global.LogFile != "" {
		logFile = global.LogFile
	}

	if logFile == "" {
		return nil
	}

	logStorage := storage.NewFile(fs.NewOS(), logFile)
	err := logStorage.Open()
	if err != nil {
		return err
	}

	closeLogFile = func(ctx *cli.Context) error {
		return logStorage.Close()
	}

	ctx.Logger().SetOutput(logStorage)

	return nil
}

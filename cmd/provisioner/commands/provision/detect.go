package provision

import (
	"fmt"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/config"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/cli"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/env"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/platform"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport/ssh"
)

// NewDetectCommand constructs the command line abstraction for the "detect" command
func NewDetectCommand() cli.Command {
	cmd := new(DetectCommand)
	cmd.env = env.New()

	cmd.newTransport = ssh.NewTransport
	cmd.newClassifier = platform.NewClassifier

	return cli.Command{
		Handler: cmd,
		Config: cli.Config{
			Name:    "detect",
			Aliases: []string{"d"},
			Usage:   "Detect the platform of a remote host without changing it",
		},
	}
}

// DetectCommand provides data and operations related to the "detect" command
type DetectCommand struct {
	TargetFlags

	cfg    config.Global
	logger logging.Logger
	env    env.Env

	newTransport  func(logger logging.Logger) transport.Transport
	newClassifier func(logger logging.Logger) platform.Classifier
}

func (c *DetectCommand) Execute(ctx *cli.Context) error {
	c.cfg = ctx.Config()
	c.logger = ctx.
		Logger().
		WithField("command", "detect")

	settings, err := c.connectionSettings(c.cfg.SSH, c.env)
	if err != nil {
		return err
	}

	sink, err := newSink(c.Output, ctx.Output())
	if err != nil {
		return err
	}

	session, err := c.newTransport(c.logger).Connect(ctx.Ctx, settings)
	if err != nil {
		return err
	}

	defer func() {
		closeErr := session.Close()
		if closeErr != nil {
			c.logger.WithError(closeErr).Warning("Couldn't close the session")
		}
	}()

	classification := c.newClassifier(c.logger).Classify(ctx.Ctx, session)

	err = sink.ReportClassification(settings.Hostname, classification)
	if err != nil {
		return fmt.Errorf("writing detection output: %w", err)
	}

	return nil
}

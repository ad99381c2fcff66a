package provision

import (
	"context"
	"fmt"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/artifact"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/config"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/installer"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/cli"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/env"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/license"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/pipeline"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/platform"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport/ssh"
)

const eventsBuffer = 64

// NewInstallCommand constructs the command line abstraction for the "install" command
func NewInstallCommand() cli.Command {
	cmd := new(InstallCommand)
	cmd.env = env.New()
	cmd.fs = fs.NewOS()

	cmd.newTransport = ssh.NewTransport
	cmd.newFetcher = artifact.NewFetcher

	return cli.Command{
		Handler: cmd,
		Config: cli.Config{
			Name:    "install",
			Aliases: []string{"i"},
			Usage:   "Install and license the product on a remote host",
			Description: `
Connects to the host, detects its operating system, uploads and installs the
matching installer, then uploads, moves into place and activates a license
file picked from the local license directory.

The run stops at the first failure. Changes made on the host before the
failure are kept.`,
		},
	}
}

// InstallCommand provides data and operations related to the "install" command
type InstallCommand struct {
	TargetFlags

	cfg    config.Global
	logger logging.Logger
	env    env.Env
	fs     fs.FS

	// Wrapping constructors to make easier mocking in the unit tests
	newTransport func(logger logging.Logger) transport.Transport
	newFetcher   func(logger logging.Logger, filesystem fs.FS, cfg config.Artifacts) (artifact.Fetcher, error)
}

// ProvisioningError is returned when a run aborted
type ProvisioningError struct {
	Host   string
	Result pipeline.Result
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning %s aborted at step %s: %v", e.Host, e.Result.FailedStep, e.Result.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Result.Err
}

func (e *ProvisioningError) Is(err error) bool {
	_, ok := err.(*ProvisioningError)
	return ok
}

func (c *InstallCommand) Execute(ctx *cli.Context) error {
	c.cfg = ctx.Config()
	c.logger = ctx.
		Logger().
		WithField("command", "install")

	settings, err := c.connectionSettings(c.cfg.SSH, c.env)
	if err != nil {
		return err
	}

	sink, err := newSink(c.Output, ctx.Output())
	if err != nil {
		return err
	}

	orchestrator, err := c.newOrchestrator()
	if err != nil {
		return fmt.Errorf("initializing the pipeline: %w", err)
	}

	// Termination signals are honoured until the run starts
	if ctx.Ctx.Err() != nil {
		return fmt.Errorf("provisioning not started: %w", context.Cause(ctx.Ctx))
	}

	c.logger.
		WithField("host", settings.Hostname).
		Info("Starting provisioning")

	channel := pipeline.NewChannelReporter(eventsBuffer)
	results := orchestrator.Start(ctx.Ctx, pipeline.Request{
		Connection: settings,
		Reporter:   channel,
	})

	result := pipeline.Await(results, channel.Events(), sink)
	err = sink.ReportResult(result)
	if err != nil {
		c.logger.WithError(err).Warning("Couldn't write the provisioning output")
	}

	if !result.Completed() {
		return &ProvisioningError{Host: settings.Hostname, Result: result}
	}

	return nil
}

func (c *InstallCommand) newOrchestrator() (*pipeline.Orchestrator, error) {
	resolver, err := artifact.NewResolverFromConfig(c.cfg.Artifacts)
	if err != nil {
		return nil, err
	}

	fetcher, err := c.newFetcher(c.logger, c.fs, c.cfg.Artifacts)
	if err != nil {
		return nil, err
	}

	err = fetcher.Init()
	if err != nil {
		return nil, fmt.Errorf("initializing artifact fetcher: %w", err)
	}

	policy, err := license.PolicyByName(c.cfg.License.Selection)
	if err != nil {
		return nil, err
	}

	deps := pipeline.Dependencies{
		Transport:  c.newTransport(c.logger),
		Classifier: platform.NewClassifier(c.logger),
		Artifacts: artifact.NewProvider(
			c.logger,
			c.fs,
			resolver,
			fetcher,
			artifact.NewVerifier(c.fs),
			artifact.ProviderSettings{
				DownloadDirectory: c.cfg.Artifacts.DownloadDirectory,
				GenericArchive:    c.cfg.Artifacts.GenericArchive,
			},
		),
		Installer: installer.NewInstaller(c.logger, c.cfg.Remote.PrivilegePrefix),
		Selector:  license.NewSelector(c.logger, c.fs, c.cfg.License.Directory, c.cfg.License.Extension, policy),
		Deployer:  license.NewDeployer(c.logger, c.cfg.Remote.PrivilegePrefix),
	}

	settings := pipeline.Settings{
		RemoteTempDirectory: c.cfg.Remote.TempDirectory,
		LicenseDirectory:    c.cfg.Product.LicenseDirectory,
		LicenseFilename:     c.cfg.Product.LicenseFilename,
		ActivationCommand:   c.cfg.Product.ActivationCommand,
	}

	return pipeline.NewOrchestrator(c.logger, deps, settings), nil
}

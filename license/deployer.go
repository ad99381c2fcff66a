package license

import (
	"context"
	"fmt"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/remote"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
)

// Deployer moves an uploaded license into place and activates it. The
// commands run as is; deciding whether their output is a failure belongs to
// the caller.
type Deployer interface {
	EnsureDirectory(ctx context.Context, session transport.Session, directory string) (transport.Output, error)
	Relocate(ctx context.Context, session transport.Session, from string, to string) (transport.Output, error)
	Activate(ctx context.Context, session transport.Session, command string) (transport.Output, error)
}

type deployer struct {
	logger          logging.Logger
	privilegePrefix string
}

func NewDeployer(logger logging.Logger, privilegePrefix string) Deployer {
	return &deployer{
		logger:          logger,
		privilegePrefix: privilegePrefix,
	}
}

// EnsureDirectory is idempotent: it succeeds when the directory already exists
func (d *deployer) EnsureDirectory(ctx context.Context, session transport.Session, directory string) (transport.Output, error) {
	d.logger.WithField("directory", directory).Debug("[EnsureDirectory] Will create the license directory")

	return d.run(ctx, session, remote.Privileged(d.privilegePrefix, remote.Command("mkdir", "-p", directory)))
}

func (d *deployer) Relocate(ctx context.Context, session transport.Session, from string, to string) (transport.Output, error) {
	d.logger.
		WithFields(logging.Fields{"from": from, "to": to}).
		Debug("[Relocate] Will move the license file")

	return d.run(ctx, session, remote.Privileged(d.privilegePrefix, remote.Command("mv", from, to)))
}

func (d *deployer) Activate(ctx context.Context, session transport.Session, command string) (transport.Output, error) {
	d.logger.WithField("command", command).Debug("[Activate] Will activate the license")

	return d.run(ctx, session, command)
}

func (d *deployer) run(ctx context.Context, session transport.Session, command string) (transport.Output, error) {
	output, err := session.Execute(ctx, command)
	if err != nil {
		return output, fmt.Errorf("deploying license: %w", err)
	}

	return output, nil
}

// Package installer runs the platform specific installation of an uploaded artifact
package installer

import (
	"context"
	"fmt"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/remote"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/platform"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
)

// GenericExtractDirectory receives the content of generic archives
const GenericExtractDirectory = "/opt/"

// Installer installs an artifact already present on the remote host
type Installer interface {
	// Install returns the command output as is: a failed installation shows up
	// in the output, only a dispatch failure is an error
	Install(ctx context.Context, session transport.Session, tag platform.Tag, remotePath string) (transport.Output, error)
}

// Command returns the installation command line of a platform
func Command(privilegePrefix string, tag platform.Tag, remotePath string) (string, error) {
	sudo := func(name string, args ...string) string {
		return remote.Privileged(privilegePrefix, remote.Command(name, args...))
	}

	switch tag {
	case platform.DebianFamily:
		return sudo("dpkg", "-i", remotePath), nil
	case platform.RHELFamily:
		return sudo("rpm", "-ivh", remotePath), nil
	case platform.AIX:
		return remote.Chain(
			sudo("chmod", "+x", remotePath),
			sudo("sh", remotePath),
		), nil
	case platform.GenericLinux:
		return remote.Chain(
			sudo("tar", "-xzf", remotePath, "-C", GenericExtractDirectory),
			remote.Command("echo", "Extracted into "+GenericExtractDirectory),
		), nil
	}

	return "", fmt.Errorf("no installation command for platform %q", tag)
}

type installer struct {
	logger          logging.Logger
	privilegePrefix string
}

func NewInstaller(logger logging.Logger, privilegePrefix string) Installer {
	return &installer{
		logger:          logger,
		privilegePrefix: privilegePrefix,
	}
}

func (i *installer) Install(ctx context.Context, session transport.Session, tag platform.Tag, remotePath string) (transport.Output, error) {
	command, err := Command(i.privilegePrefix, tag, remotePath)
	if err != nil {
		return transport.Output{}, err
	}

	logger := i.logger.WithFields(logging.Fields{
		"platform": tag,
		"path":     remotePath,
	})
	logger.Debug("[Install] Will install the artifact")

	output, err := session.Execute(ctx, command)
	if err != nil {
		return output, fmt.Errorf("installing %q: %w", remotePath, err)
	}

	logger.Debug("[Install] Installation command executed")

	return output, nil
}

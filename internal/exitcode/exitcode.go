// Package exitcode maps the failure of a provisioning run to the process exit code
package exitcode

import (
	"errors"
	"os"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/artifact"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/signal"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/license"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
)

const (
	Success             = 0
	Failure             = 1
	Connection          = 2
	Authentication      = 3
	Transfer            = 4
	UnsupportedPlatform = 5
	Download            = 6
	NoLicense           = 7

	// Interrupted follows the shell convention for SIGINT
	Interrupted = 130
)

var osExiter = os.Exit

type rule struct {
	target error
	code   int
}

// rules are checked in order, the first match wins
var rules = []rule{
	{target: new(transport.AuthenticationError), code: Authentication},
	{target: new(transport.ConnectionError), code: Connection},
	{target: new(transport.TransferError), code: Transfer},
	{target: new(artifact.UnsupportedPlatformError), code: UnsupportedPlatform},
	{target: new(artifact.DownloadError), code: Download},
	{target: license.ErrNoLicenseFound, code: NoLicense},
	{target: transport.ErrConnectionLost, code: Connection},
	{target: transport.ErrNotConnected, code: Connection},
	{target: new(signal.InterruptedError), code: Interrupted},
}

// FromError returns the exit code describing err
func FromError(err error) int {
	if err == nil {
		return Success
	}

	for _, r := range rules {
		if errors.Is(err, r.target) {
			return r.code
		}
	}

	return Failure
}

// GenerateExitFromError terminates the process with the exit code of err
func GenerateExitFromError(err error) {
	osExiter(FromError(err))
}

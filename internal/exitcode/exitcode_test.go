package exitcode

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/artifact"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/signal"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/license"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/platform"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
)

func TestFromError(t *testing.T) {
	testError := errors.New("simulated error")

	tests := map[string]struct {
		err          error
		expectedCode int
	}{
		"no error": {
			err:          nil,
			expectedCode: Success,
		},
		"unknown error": {
			err:          testError,
			expectedCode: Failure,
		},
		"connection error": {
			err:          transport.NewConnectionError("10.0.0.1:22", testError),
			expectedCode: Connection,
		},
		"authentication error": {
			err:          transport.NewAuthenticationError("root", testError),
			expectedCode: Authentication,
		},
		"transfer error": {
			err:          transport.NewTransferError("/a", "/b", testError),
			expectedCode: Transfer,
		},
		"unsupported platform": {
			err:          artifact.NewUnsupportedPlatformError(platform.GenericLinux),
			expectedCode: UnsupportedPlatform,
		},
		"interrupted before the run": {
			err:          fmt.Errorf("provisioning not started: %w", &signal.InterruptedError{Signal: os.Interrupt}),
			expectedCode: Interrupted,
		},
		"download error": {
			err:          artifact.NewDownloadError("id", testError),
			expectedCode: Download,
		},
		"no license": {
			err:          fmt.Errorf("%w: empty directory", license.ErrNoLicenseFound),
			expectedCode: NoLicense,
		},
		"connection lost while running a command": {
			err:          transport.NewCommandError("sudo mv a b", transport.ErrConnectionLost),
			expectedCode: Connection,
		},
		"transfer interrupted by a lost connection": {
			err:          transport.NewTransferError("/a", "/b", transport.ErrConnectionLost),
			expectedCode: Transfer,
		},
		"wrapped error": {
			err:          fmt.Errorf("provisioning aborted: %w", transport.NewAuthenticationError("root", testError)),
			expectedCode: Authentication,
		},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, FromError(tt.err))
		})
	}
}

func TestGenerateExitFromError(t *testing.T) {
	oldOsExiter := osExiter
	defer func() {
		osExiter = oldOsExiter
	}()

	exitCode := -1
	osExiter = func(code int) {
		exitCode = code
	}

	GenerateExitFromError(artifact.NewDownloadError("id", errors.New("timeout")))
	assert.Equal(t, Download, exitCode)
}

package provision

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/config"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/assertions"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/cli"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/env"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging/test"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
)

func createContextForTests(cfg config.Global) *cli.Context {
	ctx := &cli.Context{Ctx: context.Background()}
	ctx.SetConfig(cfg)
	ctx.SetLogger(test.NewNullLogger())

	return ctx
}

func TestNewProvisionCategory(t *testing.T) {
	category := NewProvisionCategory()

	assert.Equal(t, "provision", category.Name)
	require.Len(t, category.SubCommands, 2)
	assert.Equal(t, "install", category.SubCommands[0].Name)
	assert.Equal(t, "detect", category.SubCommands[1].Name)
}

func TestTargetFlags_ConnectionSettings(t *testing.T) {
	sshConfig := config.SSH{
		Username:           "root",
		Port:               22,
		KnownHostsFile:     "~/.ssh/known_hosts",
		DialTimeoutSeconds: 30,
	}

	tests := map[string]struct {
		flags          TargetFlags
		stubs          env.Stubs
		expected       transport.ConnectionSettings
		expectedErrors []error
	}{
		"configuration defaults are used": {
			flags: TargetFlags{Host: "10.0.0.1", Password: "secret"},
			expected: transport.ConnectionSettings{
				Hostname:       "10.0.0.1",
				Port:           22,
				Username:       "root",
				KnownHostsFile: "~/.ssh/known_hosts",
				DialTimeout:    30 * time.Second,
				Credentials:    transport.Credentials{Password: "secret"},
			},
		},
		"flags override the configuration": {
			flags: TargetFlags{
				Host:       "aspera.example.com",
				Port:       2222,
				User:       "deploy",
				KeyPath:    "~/.ssh/id_ed25519",
				KnownHosts: "/etc/ssh/known_hosts",
			},
			stubs: env.Stubs{KeyPassphraseVariable: "correct horse"},
			expected: transport.ConnectionSettings{
				Hostname:       "aspera.example.com",
				Port:           2222,
				Username:       "deploy",
				KnownHostsFile: "/etc/ssh/known_hosts",
				DialTimeout:    30 * time.Second,
				Credentials: transport.Credentials{
					KeyPath:       "~/.ssh/id_ed25519",
					KeyPassphrase: "correct horse",
				},
			},
		},
		"host is required": {
			flags:          TargetFlags{Password: "secret"},
			expectedErrors: []error{errMissingHost},
		},
		"credentials are required": {
			flags:          TargetFlags{Host: "10.0.0.1"},
			expectedErrors: []error{new(transport.AuthenticationError), transport.ErrMissingCredentials},
		},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			settings, err := tt.flags.connectionSettings(sshConfig, env.NewWithStubs(tt.stubs))

			if len(tt.expectedErrors) > 0 {
				assertions.ErrorIsAll(t, err, tt.expectedErrors...)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, settings)
		})
	}
}

package provision

import (
	"errors"
	"fmt"
	"time"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/config"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/cli"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/env"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
)

// KeyPassphraseVariable holds the passphrase of an encrypted private key. It
// has no command line flag so it never shows up in the process list.
const KeyPassphraseVariable = "PROVISIONER_SSH_KEY_PASSPHRASE"

var errMissingHost = errors.New("the target host is required (--host)")

// TargetFlags are the connection flags shared by the provision commands
type TargetFlags struct {
	Host       string `long:"host" description:"IP or hostname of the target host"`
	Port       int    `long:"port" description:"SSH port of the target host (defaults to SSH.Port)"`
	User       string `long:"user" description:"SSH username (defaults to SSH.Username)"`
	Password   string `long:"password" env:"PROVISIONER_SSH_PASSWORD" description:"SSH password"`
	KeyPath    string `long:"key" description:"Path to the SSH private key"`
	KnownHosts string `long:"known-hosts" description:"known_hosts file used to verify the host key (defaults to SSH.KnownHostsFile)"`
	Output     string `long:"output" description:"Output format (text, json)"`
}

// connectionSettings merges the flags over the SSH configuration
func (f TargetFlags) connectionSettings(cfg config.SSH, environment env.Env) (transport.ConnectionSettings, error) {
	if f.Host == "" {
		return transport.ConnectionSettings{}, errMissingHost
	}

	settings := transport.ConnectionSettings{
		Hostname:       f.Host,
		Port:           cfg.Port,
		Username:       cfg.Username,
		KnownHostsFile: cfg.KnownHostsFile,
		DialTimeout:    time.Duration(cfg.DialTimeoutSeconds) * time.Second,
		Credentials: transport.Credentials{
			Password:      f.Password,
			KeyPath:       f.KeyPath,
			KeyPassphrase: environment.Get(KeyPassphraseVariable),
		},
	}

	if f.Port > 0 {
		settings.Port = f.Port
	}

	if f.User != "" {
		settings.Username = f.User
	}

	if f.KnownHosts != "" {
		settings.KnownHostsFile = f.KnownHosts
	}

	if settings.Credentials.Empty() {
		return transport.ConnectionSettings{}, transport.NewAuthenticationError(settings.Username, transport.ErrMissingCredentials)
	}

	return settings, nil
}

func NewProvisionCategory() cli.Category {
	return cli.Category{
		Config: cli.Config{
			Name:    "provision",
			Aliases: []string{"p"},
			Usage:   "Provision a remote host over SSH",
			Description: fmt.Sprintf(`These commands connect to a single host over SSH.

The SSH password can be given with the PROVISIONER_SSH_PASSWORD variable and
the passphrase of an encrypted private key with the %s variable.`, KeyPassphraseVariable),
		},
		SubCommands: []cli.Command{
			NewInstallCommand(),
			NewDetectCommand(),
		},
	}
}

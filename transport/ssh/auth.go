package ssh

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
)

// authMethods offers the private key first and the password second
func (t *sshTransport) authMethods(credentials transport.Credentials) ([]ssh.AuthMethod, error) {
	if credentials.Empty() {
		return nil, transport.ErrMissingCredentials
	}

	methods := make([]ssh.AuthMethod, 0, 3)

	if credentials.KeyPath != "" {
		signer, err := t.loadSigner(credentials.KeyPath, credentials.KeyPassphrase)
		if err != nil {
			return nil, err
		}

		methods = append(methods, ssh.PublicKeys(signer))
	}

	if credentials.Password != "" {
		methods = append(
			methods,
			ssh.Password(credentials.Password),
			ssh.KeyboardInteractive(answerWithPassword(credentials.Password)),
		)
	}

	return methods, nil
}

func (t *sshTransport) loadSigner(keyPath string, passphrase string) (ssh.Signer, error) {
	path, err := t.expandPath(keyPath)
	if err != nil {
		return nil, fmt.Errorf("expanding private key path %q: %w", keyPath, err)
	}

	pemBytes, err := t.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading private key %q: %w", path, err)
	}

	signer, err := ssh.ParsePrivateKey(pemBytes)

	var missingPassphrase *ssh.PassphraseMissingError
	if errors.As(err, &missingPassphrase) && passphrase != "" {
		signer, err = ssh.ParsePrivateKeyWithPassphrase(pemBytes, []byte(passphrase))
	}

	if err != nil {
		return nil, &errInvalidPrivateKey{inner: err}
	}

	return signer, nil
}

// answerWithPassword covers servers delegating password authentication to PAM
func answerWithPassword(password string) ssh.KeyboardInteractiveChallenge {
	return func(user string, instruction string, questions []string, echos []bool) ([]string, error) {
		answers := make([]string, len(questions))
		for i := range answers {
			answers[i] = password
		}

		return answers, nil
	}
}

func (t *sshTransport) hostKeyCallback(knownHostsFile string) (ssh.HostKeyCallback, error) {
	if knownHostsFile == "" {
		t.logger.Debug("[hostKeyCallback] No known_hosts file configured, remote host key will be accepted")
		return ssh.InsecureIgnoreHostKey(), nil
	}

	path, err := t.expandPath(knownHostsFile)
	if err != nil {
		return nil, fmt.Errorf("expanding known_hosts path %q: %w", knownHostsFile, err)
	}

	callback, err := knownhosts.New(path)
	if err != nil {
		return nil, fmt.Errorf("loading known_hosts file %q: %w", path, err)
	}

	return callback, nil
}

package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/platform"
)

// Local is an installer artifact available on the local filesystem
type Local struct {
	Descriptor Descriptor
	Path       string
}

// Provider makes the installer artifact of a platform available locally
type Provider interface {
	Provide(ctx context.Context, tag platform.Tag) (Local, error)
}

// ProviderSettings centralizes where artifacts are stored locally
type ProviderSettings struct {
	DownloadDirectory string

	// GenericArchive is the local .tar.gz installed on generic-linux hosts
	GenericArchive string
}

type provider struct {
	logger   logging.Logger
	fs       fs.FS
	resolver Resolver
	fetcher  Fetcher
	verifier Verifier
	settings ProviderSettings
}

func NewProvider(logger logging.Logger, filesystem fs.FS, resolver Resolver, fetcher Fetcher, verifier Verifier, settings ProviderSettings) Provider {
	return &provider{
		logger:   logger,
		fs:       filesystem,
		resolver: resolver,
		fetcher:  fetcher,
		verifier: verifier,
		settings: settings,
	}
}

func (p *provider) Provide(ctx context.Context, tag platform.Tag) (Local, error) {
	if tag == platform.GenericLinux && p.settings.GenericArchive != "" {
		return p.genericArchive()
	}

	descriptor, err := p.resolver.Resolve(tag)
	if err != nil {
		return Local{}, err
	}

	err = p.fs.MkdirAll(p.settings.DownloadDirectory, 0750)
	if err != nil {
		return Local{}, NewDownloadError(descriptor.Identifier, fmt.Errorf("creating download directory: %w", err))
	}

	destination := filepath.Join(p.settings.DownloadDirectory, descriptor.Filename)

	err = p.fetcher.Fetch(ctx, descriptor.Identifier, destination)
	if err != nil {
		return Local{}, err
	}

	if descriptor.SHA256 != "" {
		err = p.verifier.Verify(destination, descriptor.SHA256)
		if err != nil {
			return Local{}, NewDownloadError(descriptor.Identifier, err)
		}
	}

	p.logger.
		WithField("platform", tag).
		WithField("path", destination).
		Debug("[Provide] Installer artifact is available")

	return Local{Descriptor: descriptor, Path: destination}, nil
}

func (p *provider) genericArchive() (Local, error) {
	path := p.settings.GenericArchive

	ok, err := p.fs.IsFile(path)
	if err == nil && !ok {
		err = os.ErrNotExist
	}

	if err != nil {
		return Local{}, NewDownloadError(path, fmt.Errorf("using generic archive: %w", err))
	}

	p.logger.
		WithField("path", path).
		Debug("[Provide] Using the local generic archive")

	return Local{
		Descriptor: Descriptor{Identifier: path, Filename: filepath.Base(path)},
		Path:       path,
	}, nil
}

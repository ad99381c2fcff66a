package artifact

import (
	"context"
	"errors"
	"fmt"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/config"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
)

// ErrNotInitialized is returned when Fetch is invoked before Init
var ErrNotInitialized = errors.New("artifact fetcher is not initialized")

// DownloadError is returned when an artifact couldn't be fetched or verified
type DownloadError struct {
	Identifier string
	inner      error
}

func NewDownloadError(identifier string, err error) *DownloadError {
	return &DownloadError{Identifier: identifier, inner: err}
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("downloading artifact %q: %v", e.Identifier, e.inner)
}

func (e *DownloadError) Unwrap() error {
	return e.inner
}

func (e *DownloadError) Is(err error) bool {
	_, ok := err.(*DownloadError)
	return ok
}

// Fetcher copies an artifact from its source to a local file
type Fetcher interface {
	// Init prepares the clients of the source
	Init() error

	// Fetch writes the artifact to destination, replacing any existing file
	Fetch(ctx context.Context, identifier string, destination string) error
}

// NewFetcher returns the Fetcher of the configured artifact source
func NewFetcher(logger logging.Logger, filesystem fs.FS, cfg config.Artifacts) (Fetcher, error) {
	switch cfg.Source {
	case config.ArtifactSourceHTTP:
		return NewHTTPFetcher(logger, filesystem, cfg.URLTemplate), nil
	case config.ArtifactSourceS3:
		return NewS3Fetcher(logger, filesystem, cfg.S3.Region, cfg.S3.Bucket), nil
	}

	return nil, fmt.Errorf("unsupported artifacts source %q", cfg.Source)
}

// removePartial drops what was written of a failed download
func removePartial(logger logging.Logger, filesystem fs.FS, destination string) {
	err := filesystem.Remove(destination)
	if err != nil {
		logger.
			WithError(err).
			WithField("path", destination).
			Warning("Couldn't remove partially downloaded artifact")
	}
}

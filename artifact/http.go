package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	provisioner "gitlab.com/rawpixel-vincent/hsts-provisioner"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
)

// IdentifierPlaceholder is replaced by the artifact identifier in URL templates
const IdentifierPlaceholder = "{id}"

const defaultDownloadTimeout = 15 * time.Minute

type httpFetcher struct {
	logger      logging.Logger
	fs          fs.FS
	urlTemplate string

	client *http.Client
}

// NewHTTPFetcher is the constructor of a Fetcher downloading from URLs built
// from urlTemplate
func NewHTTPFetcher(logger logging.Logger, filesystem fs.FS, urlTemplate string) Fetcher {
	return &httpFetcher{
		logger:      logger,
		fs:          filesystem,
		urlTemplate: urlTemplate,
	}
}

func (f *httpFetcher) Init() error {
	if !strings.Contains(f.urlTemplate, IdentifierPlaceholder) {
		return fmt.Errorf("URL template %q doesn't contain %s", f.urlTemplate, IdentifierPlaceholder)
	}

	f.client = &http.Client{Timeout: defaultDownloadTimeout}

	return nil
}

// URL builds the download URL of the identifier
func (f *httpFetcher) URL(identifier string) string {
	return strings.ReplaceAll(f.urlTemplate, IdentifierPlaceholder, url.QueryEscape(identifier))
}

func (f *httpFetcher) Fetch(ctx context.Context, identifier string, destination string) error {
	if f.client == nil {
		return NewDownloadError(identifier, ErrNotInitialized)
	}

	source := f.URL(identifier)

	logger := f.logger.WithFields(logging.Fields{
		"url":         source,
		"destination": destination,
	})
	logger.Debug("[Fetch] Will download artifact")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return NewDownloadError(identifier, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", fmt.Sprintf("%s/%s", provisioner.NAME, provisioner.Version().Version))

	resp, err := f.client.Do(req)
	if err != nil {
		return NewDownloadError(identifier, fmt.Errorf("requesting %s: %w", source, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NewDownloadError(identifier, fmt.Errorf("unexpected HTTP status %s", resp.Status))
	}

	// Sharing services answer with an HTML page when the file isn't directly downloadable
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		return NewDownloadError(identifier, fmt.Errorf("received an HTML page instead of the artifact"))
	}

	out, err := f.fs.Create(destination)
	if err != nil {
		return NewDownloadError(identifier, fmt.Errorf("creating %q: %w", destination, err))
	}

	written, err := io.Copy(out, resp.Body)
	closeErr := out.Close()

	if err == nil {
		err = closeErr
	}

	if err != nil {
		removePartial(logger, f.fs, destination)
		return NewDownloadError(identifier, fmt.Errorf("writing %q: %w", destination, err))
	}

	logger.
		WithField("bytes", written).
		Debug("[Fetch] Artifact downloaded")

	return nil
}

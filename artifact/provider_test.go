package artifact

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/assertions"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging/test"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/platform"
)

func writeFetched(memFS fs.FS, content string) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		_ = memFS.WriteFile(args.String(2), []byte(content), 0600)
	}
}

func TestProvider_Provide(t *testing.T) {
	ctx := context.Background()
	testError := errors.New("simulated error")

	debian := DefaultTable()[platform.DebianFamily]
	verified := Descriptor{Identifier: "verified-id", Filename: "verified.deb", SHA256: helloWorldSHA256}
	corrupted := Descriptor{Identifier: "corrupted-id", Filename: "corrupted.deb", SHA256: helloWorldSHA256}

	resolver := NewResolver(map[platform.Tag]Descriptor{
		platform.DebianFamily: debian,
		platform.RHELFamily:   verified,
		platform.AIX:          corrupted,
	})

	tests := map[string]struct {
		tag             platform.Tag
		genericArchive  string
		fetchIdentifier string
		fetchContent    string
		fetchError      error
		expectedLocal   Local
		expectedErrors  []error
	}{
		"package downloaded": {
			tag:             platform.DebianFamily,
			fetchIdentifier: debian.Identifier,
			fetchContent:    "payload",
			expectedLocal:   Local{Descriptor: debian, Path: "/downloads/aspera.deb"},
		},
		"package downloaded and verified": {
			tag:             platform.RHELFamily,
			fetchIdentifier: verified.Identifier,
			fetchContent:    "hello world",
			expectedLocal:   Local{Descriptor: verified, Path: "/downloads/verified.deb"},
		},
		"package checksum mismatch": {
			tag:             platform.AIX,
			fetchIdentifier: corrupted.Identifier,
			fetchContent:    "tampered",
			expectedErrors:  []error{new(DownloadError)},
		},
		"download failure": {
			tag:             platform.DebianFamily,
			fetchIdentifier: debian.Identifier,
			fetchError:      NewDownloadError(debian.Identifier, testError),
			expectedErrors:  []error{new(DownloadError), testError},
		},
		"generic linux without archive": {
			tag:            platform.GenericLinux,
			expectedErrors: []error{new(UnsupportedPlatformError)},
		},
		"generic linux with archive": {
			tag:            platform.GenericLinux,
			genericArchive: "/opt/installers/hsts.tar.gz",
			expectedLocal: Local{
				Descriptor: Descriptor{Identifier: "/opt/installers/hsts.tar.gz", Filename: "hsts.tar.gz"},
				Path:       "/opt/installers/hsts.tar.gz",
			},
		},
		"generic linux with missing archive": {
			tag:            platform.GenericLinux,
			genericArchive: "/opt/installers/missing.tar.gz",
			expectedErrors: []error{new(DownloadError), os.ErrNotExist},
		},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			memFS := fs.NewMemory()
			require.NoError(t, memFS.WriteFile("/opt/installers/hsts.tar.gz", []byte("archive"), 0600))

			fetcher := new(MockFetcher)
			defer fetcher.AssertExpectations(t)

			if tt.fetchIdentifier != "" {
				fetcher.On("Fetch", ctx, tt.fetchIdentifier, mock.AnythingOfType("string")).
					Run(writeFetched(memFS, tt.fetchContent)).
					Return(tt.fetchError).
					Once()
			}

			p := NewProvider(
				test.NewNullLogger(),
				memFS,
				resolver,
				fetcher,
				NewVerifier(memFS),
				ProviderSettings{
					DownloadDirectory: "/downloads",
					GenericArchive:    tt.genericArchive,
				},
			)

			local, err := p.Provide(ctx, tt.tag)

			if len(tt.expectedErrors) > 0 {
				assertions.ErrorIsAll(t, err, tt.expectedErrors...)
				assert.Equal(t, Local{}, local)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedLocal, local)
		})
	}
}

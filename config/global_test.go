package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	return file
}

func TestLoadFromFile(t *testing.T) {
	tests := map[string]struct {
		content       string
		missingFile   bool
		expectedError bool
		assertConfig  func(t *testing.T, cfg Global)
	}{
		"empty file keeps defaults": {
			content: "",
			assertConfig: func(t *testing.T, cfg Global) {
				assert.Equal(t, Default().Product, cfg.Product)
				assert.Equal(t, 22, cfg.SSH.Port)
				assert.Equal(t, ArtifactSourceHTTP, cfg.Artifacts.Source)
			},
		},
		"values override defaults": {
			content: `
LogLevel = "debug"

[SSH]
Username = "deploy"
Port = 2222

[License]
Directory = "/srv/licenses"
Selection = "first"

[Artifacts.Packages."debian-family"]
Identifier = "custom-id"
Filename = "custom.deb"
SHA256 = "abc"
`,
			assertConfig: func(t *testing.T, cfg Global) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "deploy", cfg.SSH.Username)
				assert.Equal(t, 2222, cfg.SSH.Port)
				assert.Equal(t, 30, cfg.SSH.DialTimeoutSeconds)
				assert.Equal(t, "/srv/licenses", cfg.License.Directory)
				assert.Equal(t, ".aspera-license", cfg.License.Extension)
				assert.Equal(t, LicenseSelectionFirst, cfg.License.Selection)
				assert.Equal(t, Package{Identifier: "custom-id", Filename: "custom.deb", SHA256: "abc"}, cfg.Artifacts.Packages["debian-family"])
			},
		},
		"s3 source without bucket": {
			content: `
[Artifacts]
Source = "s3"
`,
			expectedError: true,
		},
		"s3 source": {
			content: `
[Artifacts]
Source = "s3"

[Artifacts.S3]
Region = "eu-west-1"
Bucket = "installers"
`,
			assertConfig: func(t *testing.T, cfg Global) {
				assert.Equal(t, S3{Region: "eu-west-1", Bucket: "installers"}, cfg.Artifacts.S3)
			},
		},
		"unknown license selection": {
			content: `
[License]
Selection = "round-robin"
`,
			expectedError: true,
		},
		"invalid TOML": {
			content:       "LogLevel = ",
			expectedError: true,
		},
		"missing file": {
			missingFile:   true,
			expectedError: true,
		},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "missing.toml")
			if !tt.missingFile {
				file = writeConfigFile(t, tt.content)
			}

			cfg, err := LoadFromFile(file)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.assertConfig(t, cfg)
		})
	}
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	ArtifactSourceHTTP = "http"
	ArtifactSourceS3   = "s3"

	LicenseSelectionRandom = "random"
	LicenseSelectionFirst  = "first"
)

type Global struct {
	LogLevel  string
	LogFile   string
	LogFormat string

	SSH       SSH
	Artifacts Artifacts
	License   License
	Product   Product
	Remote    Remote
}

type SSH struct {
	Username           string
	Port               int
	KnownHostsFile     string
	DialTimeoutSeconds int
}

type Artifacts struct {
	Source            string
	URLTemplate       string
	DownloadDirectory string

	// GenericArchive is a local .tar.gz used for hosts without a packaged installer
	GenericArchive string

	S3       S3
	Packages map[string]Package
}

type S3 struct {
	Region string
	Bucket string
}

type Package struct {
	Identifier string
	Filename   string
	SHA256     string
}

type License struct {
	Directory string
	Extension string
	Selection string
}

type Product struct {
	Name              string
	LicenseDirectory  string
	LicenseFilename   string
	ActivationCommand string
}

type Remote struct {
	TempDirectory   string
	PrivilegePrefix string
}

// Default returns the configuration used when no configuration file is present
func Default() Global {
	return Global{
		SSH: SSH{
			Username:           "root",
			Port:               22,
			DialTimeoutSeconds: 30,
		},
		Artifacts: Artifacts{
			Source:            ArtifactSourceHTTP,
			URLTemplate:       "https://drive.google.com/uc?export=download&confirm=t&id={id}",
			DownloadDirectory: os.TempDir(),
			Packages:          map[string]Package{},
		},
		License: License{
			Directory: "licenses_aspera",
			Extension: ".aspera-license",
			Selection: LicenseSelectionRandom,
		},
		Product: Product{
			Name:              "aspera",
			LicenseDirectory:  "/opt/aspera/etc",
			LicenseFilename:   "aspera-license",
			ActivationCommand: "/opt/aspera/bin/ascp -A",
		},
		Remote: Remote{
			TempDirectory:   "/tmp",
			PrivilegePrefix: "sudo",
		},
	}
}

// LoadFromFile reads the TOML file on top of the defaults; keys absent from
// the file keep their default value
func LoadFromFile(file string) (Global, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Global{}, fmt.Errorf("couldn't read configuration file %q: %w", file, err)
	}

	cfg := Default()

	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return Global{}, fmt.Errorf("couldn't parse TOML content of the configuration file: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return Global{}, fmt.Errorf("invalid configuration file %q: %w", file, err)
	}

	return cfg, nil
}

func (g Global) Validate() error {
	switch g.Artifacts.Source {
	case ArtifactSourceHTTP:
		if g.Artifacts.URLTemplate == "" {
			return fmt.Errorf("artifacts source %q requires URLTemplate", g.Artifacts.Source)
		}
	case ArtifactSourceS3:
		if g.Artifacts.S3.Bucket == "" || g.Artifacts.S3.Region == "" {
			return fmt.Errorf("artifacts source %q requires S3.Bucket and S3.Region", g.Artifacts.Source)
		}
	default:
		return fmt.Errorf("unsupported artifacts source %q", g.Artifacts.Source)
	}

	switch g.License.Selection {
	case LicenseSelectionRandom, LicenseSelectionFirst:
	default:
		return fmt.Errorf("unsupported license selection %q", g.License.Selection)
	}

	return nil
}

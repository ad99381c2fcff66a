// Package provisioner provides the application metadata shared by the CLI and the logs
package provisioner

import (
	"fmt"
	"runtime"
	"strings"
)

const (
	NAME = "hsts-provisioner"

	AuthorName  = "rawpixel-vincent"
	AuthorEmail = "vincent@rawpixel.com"
)

// Values overridden at build time with -ldflags "-X ..."
var (
	VERSION  = "dev"
	REVISION = "HEAD"
	BRANCH   = "HEAD"
	BUILT    = "unknown"
)

type VersionInfo struct {
	Name         string
	Version      string
	Revision     string
	Branch       string
	GOVersion    string
	BuiltAt      string
	OS           string
	Architecture string
}

func Version() VersionInfo {
	return VersionInfo{
		Name:         NAME,
		Version:      VERSION,
		Revision:     REVISION,
		Branch:       BRANCH,
		GOVersion:    runtime.Version(),
		BuiltAt:      BUILT,
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
}

func (v VersionInfo) ShortLine() string {
	return fmt.Sprintf("%s (%s)", v.Version, v.Revision)
}

func (v VersionInfo) Extended() string {
	b := new(strings.Builder)

	fmt.Fprintf(b, "Name:         %s\n", v.Name)
	fmt.Fprintf(b, "Version:      %s\n", v.Version)
	fmt.Fprintf(b, "Git revision: %s\n", v.Revision)
	fmt.Fprintf(b, "Git branch:   %s\n", v.Branch)
	fmt.Fprintf(b, "GO version:   %s\n", v.GOVersion)
	fmt.Fprintf(b, "Built:        %s\n", v.BuiltAt)
	fmt.Fprintf(b, "OS/Arch:      %s/%s\n", v.OS, v.Architecture)

	return b.String()
}

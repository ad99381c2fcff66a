// Package artifact maps platforms to installer artifacts and fetches them locally
package artifact

import (
	"fmt"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/config"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/platform"
)

// Descriptor identifies the installer artifact of a platform in the artifact source
type Descriptor struct {
	Identifier string
	Filename   string

	// SHA256 is optional; when set the fetched file must match it
	SHA256 string
}

// UnsupportedPlatformError is returned when no installer artifact exists for a platform
type UnsupportedPlatformError struct {
	Tag platform.Tag
}

func NewUnsupportedPlatformError(tag platform.Tag) *UnsupportedPlatformError {
	return &UnsupportedPlatformError{Tag: tag}
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("no installer artifact available for platform %q", e.Tag)
}

func (e *UnsupportedPlatformError) Is(err error) bool {
	_, ok := err.(*UnsupportedPlatformError)
	return ok
}

// Resolver gives the artifact descriptor of a platform. It never touches the network.
type Resolver interface {
	Resolve(tag platform.Tag) (Descriptor, error)
}

// DefaultTable holds the published HSTS installers
func DefaultTable() map[platform.Tag]Descriptor {
	return map[platform.Tag]Descriptor{
		platform.DebianFamily: {Identifier: "1wKzrIEbiCszxbAcEmtI6ytRdd3i1rQD_", Filename: "aspera.deb"},
		platform.RHELFamily:   {Identifier: "19ZmNTIpbJXPoUH308o68ytEK8i8xSF69", Filename: "aspera.rpm"},
		platform.AIX:          {Identifier: "1klcsw2G1TRBEPxqRUsvPgVCIXV1hqTP_", Filename: "aspera.sh"},
	}
}

type staticResolver struct {
	table map[platform.Tag]Descriptor
}

// NewResolver is the constructor for a Resolver backed by a fixed table
func NewResolver(table map[platform.Tag]Descriptor) Resolver {
	copied := make(map[platform.Tag]Descriptor, len(table))
	for tag, descriptor := range table {
		copied[tag] = descriptor
	}

	return &staticResolver{table: copied}
}

// NewResolverFromConfig merges the configured packages over DefaultTable
func NewResolverFromConfig(cfg config.Artifacts) (Resolver, error) {
	table := DefaultTable()

	for name, pkg := range cfg.Packages {
		tag, err := platform.ParseTag(name)
		if err != nil {
			return nil, fmt.Errorf("invalid artifacts package: %w", err)
		}

		if tag == platform.GenericLinux {
			return nil, fmt.Errorf("platform %q has no package installer, use Artifacts.GenericArchive instead", tag)
		}

		descriptor := table[tag]
		if pkg.Identifier != "" {
			descriptor.Identifier = pkg.Identifier
		}
		if pkg.Filename != "" {
			descriptor.Filename = pkg.Filename
		}
		if pkg.SHA256 != "" {
			descriptor.SHA256 = pkg.SHA256
		}

		if descriptor.Identifier == "" || descriptor.Filename == "" {
			return nil, fmt.Errorf("artifacts package %q requires Identifier and Filename", name)
		}

		table[tag] = descriptor
	}

	return NewResolver(table), nil
}

func (r *staticResolver) Resolve(tag platform.Tag) (Descriptor, error) {
	if tag == platform.GenericLinux {
		return Descriptor{}, NewUnsupportedPlatformError(tag)
	}

	descriptor, ok := r.table[tag]
	if !ok {
		return Descriptor{}, NewUnsupportedPlatformError(tag)
	}

	return descriptor, nil
}

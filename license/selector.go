// Package license selects a local license file and deploys it on the remote host
package license

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/config"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
)

// ErrNoLicenseFound is returned when the license directory holds no candidate
var ErrNoLicenseFound = errors.New("no license file found")

// Policy chooses one license among the candidates, which are never empty and
// always sorted by name
type Policy interface {
	Choose(candidates []string) string
}

type randomPolicy struct{}

// RandomPolicy picks a candidate uniformly at random
func RandomPolicy() Policy {
	return randomPolicy{}
}

func (randomPolicy) Choose(candidates []string) string {
	return candidates[rand.Intn(len(candidates))]
}

type firstPolicy struct{}

// FirstPolicy picks the first candidate in name order
func FirstPolicy() Policy {
	return firstPolicy{}
}

func (firstPolicy) Choose(candidates []string) string {
	return candidates[0]
}

// PolicyByName maps the License.Selection setting to its Policy
func PolicyByName(name string) (Policy, error) {
	switch name {
	case config.LicenseSelectionRandom, "":
		return RandomPolicy(), nil
	case config.LicenseSelectionFirst:
		return FirstPolicy(), nil
	}

	return nil, fmt.Errorf("unsupported license selection %q", name)
}

// Selector picks the local license file to deploy
type Selector interface {
	Select() (string, error)
}

type directorySelector struct {
	logger    logging.Logger
	fs        fs.FS
	directory string
	extension string
	policy    Policy
}

// NewSelector is the constructor of a Selector choosing among the files of
// directory ending with extension
func NewSelector(logger logging.Logger, filesystem fs.FS, directory string, extension string, policy Policy) Selector {
	return &directorySelector{
		logger:    logger,
		fs:        filesystem,
		directory: directory,
		extension: extension,
		policy:    policy,
	}
}

func (s *directorySelector) Select() (string, error) {
	entries, err := s.fs.ReadDir(s.directory)
	if err != nil {
		return "", fmt.Errorf("%w: reading directory %q: %v", ErrNoLicenseFound, s.directory, err)
	}

	candidates := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), s.extension) {
			continue
		}

		candidates = append(candidates, entry.Name())
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no %q file in %q", ErrNoLicenseFound, s.extension, s.directory)
	}

	sort.Strings(candidates)
	chosen := filepath.Join(s.directory, s.policy.Choose(candidates))

	s.logger.
		WithField("candidates", len(candidates)).
		WithField("license", chosen).
		Debug("[Select] License file selected")

	return chosen, nil
}

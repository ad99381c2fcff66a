// Package platform classifies remote hosts into the OS families the installers know about
package platform

import (
	"fmt"
	"strings"
)

// Tag is the normalized OS family of a remote host
type Tag string

const (
	DebianFamily Tag = "debian-family"
	RHELFamily   Tag = "rhel-family"
	AIX          Tag = "aix"
	GenericLinux Tag = "generic-linux"
)

// Tags lists every known tag
var Tags = []Tag{DebianFamily, RHELFamily, AIX, GenericLinux}

func (t Tag) String() string {
	return string(t)
}

// ParseTag validates a tag name, as found in configuration keys
func ParseTag(name string) (Tag, error) {
	for _, tag := range Tags {
		if string(tag) == strings.ToLower(strings.TrimSpace(name)) {
			return tag, nil
		}
	}

	return "", fmt.Errorf("unknown platform tag %q", name)
}

type rule struct {
	tag      Tag
	keywords []string
}

// rules are evaluated in order; the first matching keyword wins
var rules = []rule{
	{tag: DebianFamily, keywords: []string{"debian", "ubuntu"}},
	{tag: RHELFamily, keywords: []string{"rhel", "centos"}},
}

// Match maps the identification output of a host to a Tag. Anything not
// recognized is GenericLinux.
func Match(identification string) Tag {
	tag, _ := match(identification)

	return tag
}

func match(identification string) (Tag, bool) {
	normalized := strings.ToLower(identification)

	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(normalized, keyword) {
				return r.tag, true
			}
		}
	}

	return GenericLinux, false
}

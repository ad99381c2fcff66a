package platform

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
)

// IdentificationCommand prints the OS identification of the remote host
const IdentificationCommand = "cat /etc/os-release"

var (
	ErrEmptyIdentification   = errors.New("remote host returned no identification")
	ErrUnknownIdentification = errors.New("identification matches no known platform")
)

// Classification is the outcome of a classification. FallbackReason is set
// whenever Tag is GenericLinux because nothing better could be determined.
type Classification struct {
	Tag            Tag
	Identification string
	FallbackReason error
}

// Classifier detects the platform of a remote host
type Classifier interface {
	// Classify never fails: problems resolve to GenericLinux with a FallbackReason
	Classify(ctx context.Context, session transport.Session) Classification
}

type classifier struct {
	logger logging.Logger
}

// NewClassifier is the constructor for the default Classifier
func NewClassifier(logger logging.Logger) Classifier {
	return &classifier{logger: logger}
}

func (c *classifier) Classify(ctx context.Context, session transport.Session) Classification {
	c.logger.Debug("[Classify] Will read the remote OS identification")

	output, err := session.Execute(ctx, IdentificationCommand)
	if err != nil {
		return c.fallback("", fmt.Errorf("reading OS identification: %w", err))
	}

	identification := strings.TrimSpace(output.Stdout)
	if identification == "" {
		reason := ErrEmptyIdentification
		if output.HasStderr() {
			reason = fmt.Errorf("%w: %s", ErrEmptyIdentification, strings.TrimSpace(output.Stderr))
		}

		return c.fallback(identification, reason)
	}

	tag, ok := match(identification)
	if !ok {
		return c.fallback(identification, ErrUnknownIdentification)
	}

	c.logger.
		WithField("platform", tag).
		Debug("[Classify] Platform detected")

	return Classification{Tag: tag, Identification: identification}
}

func (c *classifier) fallback(identification string, reason error) Classification {
	c.logger.
		WithError(reason).
		WithField("platform", GenericLinux).
		Warning("Couldn't determine the remote platform, falling back")

	return Classification{
		Tag:            GenericLinux,
		Identification: identification,
		FallbackReason: reason,
	}
}

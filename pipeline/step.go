// Package pipeline sequences the provisioning of one remote host over a single session
package pipeline

import (
	"math"
)

// Step is one stage of a provisioning run, in execution order
type Step int

const (
	StepNone Step = iota
	StepConnect
	StepClassify
	StepResolveFetch
	StepUploadInstaller
	StepInstall
	StepSelectLicense
	StepUploadLicense
	StepEnsureLicenseDirectory
	StepRelocateLicense
	StepActivateLicense
)

// Steps lists the steps of a run in execution order
var Steps = []Step{
	StepConnect,
	StepClassify,
	StepResolveFetch,
	StepUploadInstaller,
	StepInstall,
	StepSelectLicense,
	StepUploadLicense,
	StepEnsureLicenseDirectory,
	StepRelocateLicense,
	StepActivateLicense,
}

var stepNames = map[Step]string{
	StepNone:                   "none",
	StepConnect:                "connect",
	StepClassify:               "classify",
	StepResolveFetch:           "resolve-fetch",
	StepUploadInstaller:        "upload-installer",
	StepInstall:                "install",
	StepSelectLicense:          "select-license",
	StepUploadLicense:          "upload-license",
	StepEnsureLicenseDirectory: "ensure-license-dir",
	StepRelocateLicense:        "relocate-license",
	StepActivateLicense:        "activate-license",
}

func (s Step) String() string {
	name, ok := stepNames[s]
	if !ok {
		return "unknown"
	}

	return name
}

// bestEffort steps only abort the run when the connection is gone
func (s Step) bestEffort() bool {
	switch s {
	case StepEnsureLicenseDirectory, StepRelocateLicense, StepActivateLicense:
		return true
	}

	return false
}

// maxPartialFraction keeps the overall progress below completion until the run completes
const maxPartialFraction = 0.99

// Fraction is the overall progress after completed steps. It stays below 1.0,
// only a completed run reports 1.0.
func Fraction(completed int) float64 {
	if completed <= 0 {
		return 0
	}

	return math.Min(float64(completed)/float64(len(Steps)), maxPartialFraction)
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/artifact"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/installer"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/license"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/platform"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/transport"
)

// Dependencies centralizes the collaborators driven by the Orchestrator
type Dependencies struct {
	Transport  transport.Transport
	Classifier platform.Classifier
	Artifacts  artifact.Provider
	Installer  installer.Installer
	Selector   license.Selector
	Deployer   license.Deployer
}

// Settings centralizes the remote layout of a run
type Settings struct {
	RemoteTempDirectory string
	LicenseDirectory    string
	LicenseFilename     string
	ActivationCommand   string
}

// Request describes one run
type Request struct {
	Connection transport.ConnectionSettings
	Reporter   Reporter
}

// Orchestrator runs the provisioning steps in order and stops at the first
// fatal failure. Remote changes made before a failure are kept.
type Orchestrator struct {
	logger   logging.Logger
	deps     Dependencies
	settings Settings

	running atomic.Bool
}

func NewOrchestrator(logger logging.Logger, deps Dependencies, settings Settings) *Orchestrator {
	return &Orchestrator{
		logger:   logger,
		deps:     deps,
		settings: settings,
	}
}

// Run executes a run on the calling goroutine
func (o *Orchestrator) Run(ctx context.Context, req Request) Result {
	if !o.running.CompareAndSwap(false, true) {
		return rejected()
	}
	defer o.running.Store(false)

	return o.execute(ctx, req)
}

// Start executes a run on a dedicated goroutine. The channel receives exactly
// one Result.
func (o *Orchestrator) Start(ctx context.Context, req Request) <-chan Result {
	results := make(chan Result, 1)

	if !o.running.CompareAndSwap(false, true) {
		results <- rejected()
		return results
	}

	go func() {
		result := o.execute(ctx, req)
		o.running.Store(false)
		results <- result
	}()

	return results
}

func rejected() Result {
	return Result{State: StateAborted, Err: ErrRunInProgress}
}

func (o *Orchestrator) execute(ctx context.Context, req Request) Result {
	reporter := req.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	r := &run{
		logger:   o.logger.WithField("host", req.Connection.Hostname),
		deps:     o.deps,
		settings: o.settings,
		reporter: reporter,
		request:  req,
	}

	// Once started a run isn't interrupted: it completes or stops at the first failure
	return r.execute(context.WithoutCancel(ctx))
}

// run holds the state of one execution
type run struct {
	logger   logging.Logger
	deps     Dependencies
	settings Settings
	reporter Reporter
	request  Request

	completed int
	session   transport.Session
	result    Result

	localInstaller  artifact.Local
	remoteInstaller string
	localLicense    string
	remoteLicense   string
}

func (r *run) execute(ctx context.Context) Result {
	steps := map[Step]func(ctx context.Context) error{
		StepConnect:                r.connect,
		StepClassify:               r.classify,
		StepResolveFetch:           r.resolveFetch,
		StepUploadInstaller:        r.uploadInstaller,
		StepInstall:                r.install,
		StepSelectLicense:          r.selectLicense,
		StepUploadLicense:          r.uploadLicense,
		StepEnsureLicenseDirectory: r.ensureLicenseDirectory,
		StepRelocateLicense:        r.relocateLicense,
		StepActivateLicense:        r.activateLicense,
	}

	for _, step := range Steps {
		logger := r.logger.WithField("step", step)
		logger.Debug("[execute] Starting step")

		r.progress(step, 0)

		err := steps[step](ctx)
		r.completed++

		if err == nil {
			r.progress(step, 1)
			continue
		}

		if fatal(step, err) {
			logger.WithError(err).Error("Step failed, aborting")
			r.progress(step, 0)

			return r.abort(step, err)
		}

		logger.WithError(err).Warning("Step reported a warning")
		r.result.Warnings = append(r.result.Warnings, err)
		r.message(fmt.Sprintf("Warning: %v", err))
		r.progress(step, 1)
	}

	return r.complete()
}

// fatal decides whether a step error stops the run
func fatal(step Step, err error) bool {
	var warning *RemoteCommandWarning
	if errors.As(err, &warning) {
		return false
	}

	if step.bestEffort() {
		return transport.Unusable(err)
	}

	return true
}

func (r *run) progress(step Step, stepFraction float64) {
	r.reporter.ReportProgress(Progress{
		Step:         step,
		StepFraction: stepFraction,
		Overall:      Fraction(r.completed),
	})
}

func (r *run) message(message string) {
	r.reporter.ReportMessage(message)
}

func (r *run) abort(step Step, err error) Result {
	r.message(fmt.Sprintf("Step %s failed: %v", step, err))
	r.closeSession()

	r.result.State = StateAborted
	r.result.FailedStep = step
	r.result.Err = err

	return r.result
}

func (r *run) complete() Result {
	r.closeSession()

	r.result.State = StateCompleted

	r.message("Installation and licensing completed")
	r.reporter.ReportProgress(Progress{
		Step:         StepActivateLicense,
		StepFraction: 1,
		Overall:      1,
	})

	r.logger.Info("Provisioning completed")

	return r.result
}

func (r *run) closeSession() {
	if r.session == nil {
		return
	}

	err := r.session.Close()
	if err != nil {
		r.logger.WithError(err).Warning("Couldn't close the session")
	}

	r.session = nil
}

func (r *run) connect(ctx context.Context) error {
	settings := r.request.Connection

	session, err := r.deps.Transport.Connect(ctx, settings)
	if err != nil {
		return err
	}

	r.session = session
	r.message(fmt.Sprintf("Connected to %s", settings.Hostname))

	return nil
}

func (r *run) classify(ctx context.Context) error {
	classification := r.deps.Classifier.Classify(ctx, r.session)
	r.result.Platform = classification

	if classification.FallbackReason != nil {
		r.message(fmt.Sprintf("Couldn't identify the operating system (%v)", classification.FallbackReason))
	}

	r.message(fmt.Sprintf("Detected platform: %s", classification.Tag))

	return nil
}

func (r *run) resolveFetch(ctx context.Context) error {
	tag := r.result.Platform.Tag
	r.message(fmt.Sprintf("Fetching installer for %s", tag))

	local, err := r.deps.Artifacts.Provide(ctx, tag)
	if err != nil {
		return err
	}

	r.localInstaller = local
	r.message(fmt.Sprintf("Installer ready: %s", local.Path))

	return nil
}

func (r *run) uploadInstaller(ctx context.Context) error {
	r.remoteInstaller = path.Join(r.settings.RemoteTempDirectory, r.localInstaller.Descriptor.Filename)

	return r.upload(ctx, StepUploadInstaller, r.localInstaller.Path, r.remoteInstaller)
}

func (r *run) upload(ctx context.Context, step Step, localPath string, remotePath string) error {
	r.message(fmt.Sprintf("Uploading %s to %s", filepath.Base(localPath), remotePath))

	onProgress := func(transferred int64, total int64) {
		fraction := 1.0
		if total > 0 {
			fraction = float64(transferred) / float64(total)
		}

		r.progress(step, fraction)
	}

	err := r.session.Upload(ctx, localPath, remotePath, onProgress)
	if err != nil {
		return err
	}

	r.message(fmt.Sprintf("File uploaded to %s", remotePath))

	return nil
}

func (r *run) install(ctx context.Context) error {
	r.message(fmt.Sprintf("Installing %s", r.localInstaller.Descriptor.Filename))

	output, err := r.deps.Installer.Install(ctx, r.session, r.result.Platform.Tag, r.remoteInstaller)
	if err != nil {
		return err
	}

	return r.commandOutput(StepInstall, output)
}

// commandOutput reports stdout, and stderr as a warning
func (r *run) commandOutput(step Step, output transport.Output) error {
	if stdout := strings.TrimSpace(output.Stdout); stdout != "" {
		r.message(fmt.Sprintf("Output:\n%s", stdout))
	}

	if output.HasStderr() {
		return NewRemoteCommandWarning(step, output.Stderr)
	}

	return nil
}

func (r *run) selectLicense(_ context.Context) error {
	r.message("Selecting a license")

	localLicense, err := r.deps.Selector.Select()
	if err != nil {
		return err
	}

	r.localLicense = localLicense
	r.message(fmt.Sprintf("Selected license %s", filepath.Base(localLicense)))

	return nil
}

func (r *run) uploadLicense(ctx context.Context) error {
	r.remoteLicense = path.Join(r.settings.RemoteTempDirectory, filepath.Base(r.localLicense))

	return r.upload(ctx, StepUploadLicense, r.localLicense, r.remoteLicense)
}

func (r *run) ensureLicenseDirectory(ctx context.Context) error {
	output, err := r.deps.Deployer.EnsureDirectory(ctx, r.session, r.settings.LicenseDirectory)
	if err != nil {
		return err
	}

	r.message(fmt.Sprintf("Directory %s created or already present", r.settings.LicenseDirectory))

	return r.commandOutput(StepEnsureLicenseDirectory, output)
}

func (r *run) relocateLicense(ctx context.Context) error {
	destination := path.Join(r.settings.LicenseDirectory, r.settings.LicenseFilename)

	output, err := r.deps.Deployer.Relocate(ctx, r.session, r.remoteLicense, destination)
	if err != nil {
		return err
	}

	r.message(fmt.Sprintf("License moved to %s", destination))

	return r.commandOutput(StepRelocateLicense, output)
}

func (r *run) activateLicense(ctx context.Context) error {
	output, err := r.deps.Deployer.Activate(ctx, r.session, r.settings.ActivationCommand)
	if err != nil {
		return err
	}

	r.result.Activation = output

	return r.commandOutput(StepActivateLicense, output)
}

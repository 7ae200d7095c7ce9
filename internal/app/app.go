// Package app implements the application layer for accessors.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/core/ports"
	"go.trai.ch/accessors/internal/engine/cache"
	"go.trai.ch/accessors/internal/engine/debounce"
	"go.trai.ch/accessors/internal/engine/generator"
	"go.trai.ch/accessors/internal/engine/identity"
	"go.trai.ch/accessors/internal/engine/registry"
	"go.trai.ch/accessors/internal/engine/validate"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	models        ports.ModelProvider
	settings      ports.SettingsLoader
	compiler      ports.Compiler
	classLoader   ports.ClassLoader
	fingerprinter ports.Fingerprinter
	telemetry     ports.Telemetry
	watcher       ports.Watcher
	logger        ports.Logger

	debounce time.Duration
}

// New creates a new App instance.
func New(
	models ports.ModelProvider,
	settings ports.SettingsLoader,
	compiler ports.Compiler,
	classLoader ports.ClassLoader,
	fingerprinter ports.Fingerprinter,
	telemetry ports.Telemetry,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		models:        models,
		settings:      settings,
		compiler:      compiler,
		classLoader:   classLoader,
		fingerprinter: fingerprinter,
		telemetry:     telemetry,
		watcher:       w,
		logger:        log,
		debounce:      debounce.DefaultWindow,
	}
}

// WithDebounce sets the window in which model file changes are coalesced in watch mode.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// Options selects the model and the settings of a run.
type Options struct {
	// Dir is where the model file search starts.
	Dir string
	// Flags are the command line flags layered over the other settings; may be nil.
	Flags *pflag.FlagSet
}

// RequestResult is the outcome of one generation request.
type RequestResult struct {
	Request   domain.GenerationRequest
	Workspace domain.Workspace
	// Executed is false when the workspace was served from the cache.
	Executed bool
}

// Report is the outcome of one Generate run.
type Report struct {
	Model    *domain.Model
	Settings domain.Settings
	Results  []RequestResult
	// Artifacts holds the directories of every workspace of the run, in request order.
	Artifacts domain.GeneratedArtifactSet
	Registry  *registry.Registry
	// Validation is set when the project tree failed validation and project accessors were skipped.
	Validation *domain.ValidationError
}

// Executed returns the number of requests that generated and compiled a new workspace.
func (r *Report) Executed() int {
	n := 0
	for _, res := range r.Results {
		if res.Executed {
			n++
		}
	}
	return n
}

// jsonSwitch is implemented by loggers that can switch to JSON output.
type jsonSwitch interface {
	SetJSON(enable bool)
}

// LoadSettings resolves the settings of a run and applies the log format.
func (a *App) LoadSettings(opts Options) (domain.Settings, error) {
	s, err := a.settings.Load(opts.Dir, opts.Flags)
	if err != nil {
		return domain.Settings{}, err
	}
	if l, ok := a.logger.(jsonSwitch); ok {
		l.SetJSON(s.LogFormat == domain.LogFormatJSON)
	}
	return s, nil
}

// Generate loads the model, generates and compiles every accessor request and binds the results.
// A project tree that fails validation skips project accessors only; the report carries the violations.
func (a *App) Generate(ctx context.Context, opts Options) (*Report, error) {
	s, err := a.LoadSettings(opts)
	if err != nil {
		return nil, err
	}
	model, err := a.models.Load(opts.Dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load model")
	}
	return a.generate(ctx, model, s)
}

func (a *App) generate(ctx context.Context, model *domain.Model, s domain.Settings) (*Report, error) {
	if s.ProjectAccessors {
		if _, ok := model.Catalog(s.ProjectsExtension); ok {
			err := zerr.Wrap(domain.ErrProjectsExtensionConflict, "rename the catalog or set another projects extension")
			return nil, zerr.With(zerr.With(err, "catalog", s.ProjectsExtension), "config", model.ConfigPath)
		}
	}

	classpath, err := cache.InstallClasspath(s.ClasspathDir(), generator.SupportSource())
	if err != nil {
		return nil, err
	}
	fingerprint, err := a.fingerprint(classpath)
	if err != nil {
		return nil, err
	}
	store := cache.New(s.WorkspacesDir(), classpath, identity.NewComputer(fingerprint), a.compiler, a.telemetry)

	report := &Report{Model: model, Settings: s}
	requests := make([]domain.GenerationRequest, 0, len(model.Catalogs)+1)
	for _, c := range model.Catalogs {
		if c.IsEmpty() {
			continue
		}
		requests = append(requests, domain.CatalogRequest{Model: c})
	}
	if s.ProjectAccessors {
		if err := validate.Validate(model.Root); err != nil {
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				return nil, err
			}
			report.Validation = verr
			a.logger.Error(verr)
		} else {
			requests = append(requests, domain.ProjectTreeRequest{Root: model.Root})
		}
	}

	results := make([]RequestResult, len(requests))
	errs := make([]error, len(requests))
	g := new(errgroup.Group)
	g.SetLimit(max(s.Workers, 1))
	for i, req := range requests {
		g.Go(func() error {
			res, err := store.GetOrExecute(ctx, req)
			if err != nil {
				errs[i] = zerr.With(err, "request", req.Label())
				return nil
			}
			results[i] = RequestResult{Request: req, Workspace: res.Workspace, Executed: res.Executed}
			return nil
		})
	}
	_ = g.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, errors.Join(domain.ErrGenerateFailed, err)
	}

	var catalogs []string
	projects := false
	for _, res := range results {
		report.Artifacts = report.Artifacts.Add(res.Workspace)
		switch r := res.Request.(type) {
		case domain.CatalogRequest:
			catalogs = append(catalogs, r.Model.Name())
		case domain.ProjectTreeRequest:
			projects = true
		}
	}
	report.Results = results

	report.Registry = registry.New(a.classLoader, s.ProjectsExtension, a.logger)
	report.Registry.Bind(report.Artifacts, catalogs, projects)
	return report, nil
}

// fingerprint combines the classpath digest with the generator's own.
// A template change invalidates every workspace even when the classpath source is unchanged.
func (a *App) fingerprint(classpath []string) (string, error) {
	onDisk, err := a.fingerprinter.Fingerprint(classpath)
	if err != nil {
		return "", err
	}
	gen, err := generator.Fingerprint()
	if err != nil {
		return "", errors.Join(domain.ErrClasspathFingerprintFailed, err)
	}
	return onDisk + ":" + gen, nil
}

// Clean removes the workspace store and the generator classpath.
func (a *App) Clean(_ context.Context, opts Options) error {
	s, err := a.LoadSettings(opts)
	if err != nil {
		return err
	}

	var errs error
	remove := func(path, name string, clean func() error) {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return
		}
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := clean(); err != nil {
			errs = errors.Join(errs, err)
			return
		}
		a.logger.Info("removed " + name)
	}
	store := cache.New(s.WorkspacesDir(), nil, nil, a.compiler, a.telemetry)
	remove(store.Root(), "accessor workspaces", store.Clean)
	remove(s.ClasspathDir(), "generator classpath", func() error {
		if err := os.RemoveAll(s.ClasspathDir()); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove generator classpath"), "path", s.ClasspathDir())
		}
		return nil
	})
	return errs
}

// Watch generates once and again after every change of the model file, until ctx is done.
// Each run is passed to onRun; a failed run does not stop watching.
func (a *App) Watch(ctx context.Context, opts Options, onRun func(*Report, error)) error {
	s, err := a.LoadSettings(opts)
	if err != nil {
		return err
	}
	model, err := a.models.Load(opts.Dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load model")
	}
	onRun(a.generate(ctx, model, s))

	if err := a.watcher.Start(ctx, model.ConfigPath); err != nil {
		return zerr.Wrap(err, "failed to watch model file")
	}
	defer func() { _ = a.watcher.Stop() }()
	a.logger.Info("watching " + model.ConfigPath)

	var mu sync.Mutex
	debouncer := debounce.New(a.debounce, func([]string) {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		onRun(a.Generate(ctx, opts))
	})

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}

	mu.Lock()
	defer mu.Unlock()
	return nil
}

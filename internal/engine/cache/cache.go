// Package cache implements the identity-addressed workspace store.
package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/core/ports"
	"go.trai.ch/accessors/internal/engine/generator"
	"go.trai.ch/accessors/internal/engine/identity"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Result is the outcome of GetOrExecute.
type Result struct {
	Workspace domain.Workspace
	// Executed reports whether the workspace was generated and compiled by this flight rather than found on disk.
	Executed bool
}

// Cache maps request identities to published workspaces below one root directory.
type Cache struct {
	root      string
	classpath []string
	ids       *identity.Computer
	compiler  ports.Compiler
	telemetry ports.Telemetry

	requestGroup singleflight.Group
}

// New creates a Cache rooted at root. classpath is the generator classpath handed to the compiler
// and ids must be bound to its fingerprint. telemetry may be nil.
func New(
	root string,
	classpath []string,
	ids *identity.Computer,
	compiler ports.Compiler,
	telemetry ports.Telemetry,
) *Cache {
	return &Cache{
		root:      root,
		classpath: slices.Clone(classpath),
		ids:       ids,
		compiler:  compiler,
		telemetry: telemetry,
	}
}

// Root returns the workspace store directory.
func (c *Cache) Root() string {
	return c.root
}

// Identity returns the identity of a request.
func (c *Cache) Identity(req domain.GenerationRequest) domain.Identity {
	return c.ids.Compute(req)
}

// Lookup returns the published workspace of an identity, if any.
func (c *Cache) Lookup(id domain.Identity) (domain.Workspace, bool) {
	ws := domain.NewWorkspace(id, filepath.Join(c.root, id.String()))
	if !isPublished(ws.Dir) {
		return domain.Workspace{}, false
	}
	return ws, true
}

// GetOrExecute returns the workspace of a request, generating and compiling it on a miss.
// Concurrent calls for one identity share a single generation and compilation.
// A failed attempt never leaves a workspace that a later call would report as a hit.
func (c *Cache) GetOrExecute(ctx context.Context, req domain.GenerationRequest) (Result, error) {
	id := c.ids.Compute(req)
	ctx, vertex := c.record(ctx, req)

	// Wrap the expensive path in singleflight so one identity is never built twice at once.
	v, err, _ := c.requestGroup.Do(id.String(), func() (any, error) {
		if ws, ok := c.Lookup(id); ok {
			return Result{Workspace: ws}, nil
		}
		ws, err := c.execute(ctx, id, req)
		if err != nil {
			return nil, err
		}
		return Result{Workspace: ws, Executed: true}, nil
	})
	if err != nil {
		complete(vertex, err)
		return Result{}, err
	}

	res := v.(Result)
	if vertex != nil {
		if res.Executed {
			vertex.Log(domain.LogLevelInfo, "generated workspace "+id.String())
		} else {
			vertex.Cached()
		}
	}
	complete(vertex, nil)
	return res, nil
}

// execute generates the sources of req into a private directory, compiles them and publishes the result.
func (c *Cache) execute(ctx context.Context, id domain.Identity, req domain.GenerationRequest) (domain.Workspace, error) {
	if err := os.MkdirAll(c.root, domain.DirPerm); err != nil {
		return domain.Workspace{}, zerr.With(errors.Join(domain.ErrWorkspaceCreateFailed, err), "root", c.root)
	}
	tmp, err := os.MkdirTemp(c.root, ".tmp-"+id.String()+"-")
	if err != nil {
		return domain.Workspace{}, zerr.With(errors.Join(domain.ErrWorkspaceCreateFailed, err), "root", c.root)
	}
	published := false
	defer func() {
		if !published {
			_ = os.RemoveAll(tmp)
		}
	}()

	staging := domain.NewWorkspace(id, tmp)
	for _, dir := range []string{staging.SourcesDir, staging.ClassesDir} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return domain.Workspace{}, zerr.With(errors.Join(domain.ErrWorkspaceCreateFailed, err), "dir", dir)
		}
	}

	files, err := generate(req)
	if err != nil {
		return domain.Workspace{}, err
	}
	sources := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(staging.SourcesDir, f.FileName)
		if err := os.WriteFile(path, f.Content, domain.FilePerm); err != nil {
			return domain.Workspace{}, zerr.With(errors.Join(domain.ErrWorkspaceCreateFailed, err), "file", path)
		}
		sources = append(sources, path)
	}

	if err := c.compiler.Compile(ctx, sources, staging.ClassesDir, c.classpath); err != nil {
		return domain.Workspace{}, compilationFailed(id, files, err)
	}

	if err := writeMetadata(staging, req, files); err != nil {
		return domain.Workspace{}, err
	}

	final := filepath.Join(c.root, id.String())
	if err := os.Rename(tmp, final); err != nil {
		// Another process published the same identity first; its workspace is interchangeable with ours.
		if !isPublished(final) {
			return domain.Workspace{}, zerr.With(errors.Join(domain.ErrWorkspacePublishFailed, err), "workspace", final)
		}
	} else {
		published = true
	}
	return domain.NewWorkspace(id, final), nil
}

// Clean removes every workspace.
func (c *Cache) Clean() error {
	if err := os.RemoveAll(c.root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove workspaces"), "root", c.root)
	}
	return nil
}

func generate(req domain.GenerationRequest) ([]domain.GeneratedFile, error) {
	sources := generator.SourcesFor(req)
	files := make([]domain.GeneratedFile, 0, len(sources))
	for _, src := range sources {
		f, err := generator.Generate(src)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func compilationFailed(id domain.Identity, files []domain.GeneratedFile, err error) error {
	sources := make(map[string]string, len(files))
	for _, f := range files {
		sources[f.FileName] = string(f.Content)
	}
	wrapped := zerr.With(errors.Join(domain.ErrCompilationFailed, err), "identity", id.String())
	return zerr.With(wrapped, "sources", sources)
}

func (c *Cache) record(ctx context.Context, req domain.GenerationRequest) (context.Context, ports.Vertex) {
	if c.telemetry == nil {
		return ctx, nil
	}
	return c.telemetry.Record(ctx, fmt.Sprintf("accessors: %s", req.Label()), ports.WithGroup(req.Kind()))
}

func complete(v ports.Vertex, err error) {
	if v != nil {
		v.Complete(err)
	}
}

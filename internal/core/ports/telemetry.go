package ports

import (
	"context"
	"io"

	"go.trai.ch/accessors/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records one vertex per unit of work.
type Telemetry interface {
	// Record starts a vertex and returns a context carrying it.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	// Log records a message at the given level.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex finished; a nil err means success.
	Complete(err error)
	// Cached marks the vertex as served from cache.
	Cached()
}

// VertexConfig holds configuration for a vertex.
type VertexConfig struct {
	// Group names the group the vertex belongs to, if any.
	Group string
}

// VertexOption configures a vertex.
type VertexOption func(*VertexConfig)

// WithGroup places the vertex in a named group.
func WithGroup(name string) VertexOption {
	return func(c *VertexConfig) {
		c.Group = name
	}
}

type vertexKey struct{}

// ContextWithVertex returns a context carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}

// Package ports defines the core interfaces for the application.
package ports

import "context"

// Compiler turns a batch of generated sources into loadable class descriptors.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile compiles every file of sources against classpath and writes one class per declared type into outputDir.
	// It is called once per cache miss with the whole batch of a request.
	Compile(ctx context.Context, sources []string, outputDir string, classpath []string) error
}

package ports

import "go.trai.ch/accessors/internal/core/domain"

// ClassLoader makes compiled classes loadable by qualified name.
//
//go:generate mockgen -source=class_loader.go -destination=mocks/mock_class_loader.go -package=mocks
type ClassLoader interface {
	// Export adds classes directories to the loader's classpath.
	Export(classpath []string)
	// LoadClass loads a class by qualified name.
	// It returns domain.ErrClassNotFound when no exported directory holds the class.
	LoadClass(name string) (*domain.Class, error)
}

package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".accessors"

	// WorkspacesDirName is the name of the identity-addressed workspace store.
	WorkspacesDirName = "workspaces"

	// ClasspathDirName is the name of the directory holding the generator classpath.
	ClasspathDirName = "classpath"

	// SourcesDirName is the workspace subdirectory holding generated sources.
	SourcesDirName = "sources"

	// ClassesDirName is the workspace subdirectory holding compiled classes.
	ClassesDirName = "classes"

	// WorkspaceMetadataFile marks a published workspace.
	WorkspaceMetadataFile = "workspace.json"

	// ConfigFileName is the name of the model configuration file.
	ConfigFileName = "accessors.yaml"

	// ClassFileExt is the extension of compiled class descriptors.
	ClassFileExt = ".class"

	// AccessorsPackage is the Go package name of every generated source.
	AccessorsPackage = "accessors"

	// CatalogClassPrefix prefixes the capitalized catalog name to form its class name.
	CatalogClassPrefix = "LibrariesFor"

	// RootProjectAccessorClass is the well-known class name of the root aggregator.
	RootProjectAccessorClass = "RootProjectAccessor"

	// RootProjectClass is the per-project class name of the root project.
	RootProjectClass = "RootProject"

	// ProjectClassSuffix suffixes per-project accessor class names.
	ProjectClassSuffix = "ProjectDependency"

	// BundlesClassSuffix suffixes the bundle accessor class of a catalog.
	BundlesClassSuffix = "Bundles"

	// VersionsClassSuffix suffixes the version accessor class of a catalog.
	VersionsClassSuffix = "Versions"

	// SupportFileName is the file name of the generator classpath source.
	SupportFileName = "support.go"

	// DefaultProjectsExtension is the logical name the root aggregator is resolved under.
	DefaultProjectsExtension = "projects"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultStatePath returns the default root directory for accessor state.
func DefaultStatePath() string {
	return StateDirName
}

// DefaultWorkspacesPath returns the default path of the workspace store.
// It joins .accessors and workspaces.
func DefaultWorkspacesPath() string {
	return filepath.Join(StateDirName, WorkspacesDirName)
}

// DefaultClasspathPath returns the default path of the generator classpath.
// It joins .accessors and classpath.
func DefaultClasspathPath() string {
	return filepath.Join(StateDirName, ClasspathDirName)
}

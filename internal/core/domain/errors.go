package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateAlias is returned when an alias appears twice within one alias set of a catalog.
	ErrDuplicateAlias = zerr.New("duplicate alias")

	// ErrUnknownAlias is returned when a bundle member or version reference names an alias that does not exist.
	ErrUnknownAlias = zerr.New("unknown alias")

	// ErrInvalidAlias is returned when a catalog name or alias does not match the alias pattern.
	ErrInvalidAlias = zerr.New("invalid alias")

	// ErrReservedAlias is returned when a library alias would shadow a generated group accessor.
	ErrReservedAlias = zerr.New("reserved alias")

	// ErrInvalidCoordinates is returned when a library notation is not "group:artifact[:version]".
	ErrInvalidCoordinates = zerr.New("invalid library coordinates, expected group:artifact[:version]")

	// ErrInvalidProjectPath is returned when an included project path is empty or malformed.
	ErrInvalidProjectPath = zerr.New("invalid project path")

	// ErrInvalidProjectNames is returned when project accessors cannot be generated because of naming violations.
	ErrInvalidProjectNames = zerr.New("cannot generate project dependency accessors")

	// ErrGenerationFailed is returned when a source generator produces invalid output.
	// It indicates a bug in the generator, not a user error.
	ErrGenerationFailed = zerr.New("accessor source generation failed")

	// ErrCompilationFailed is returned when the compiler rejects generated sources.
	ErrCompilationFailed = zerr.New("accessor compilation failed")

	// ErrWorkspaceCreateFailed is returned when a workspace directory cannot be created.
	ErrWorkspaceCreateFailed = zerr.New("failed to create workspace")

	// ErrWorkspacePublishFailed is returned when a finished workspace cannot be moved into place.
	ErrWorkspacePublishFailed = zerr.New("failed to publish workspace")

	// ErrWorkspaceReadFailed is returned when workspace metadata cannot be read.
	ErrWorkspaceReadFailed = zerr.New("failed to read workspace metadata")

	// ErrClasspathFingerprintFailed is returned when the generator classpath cannot be fingerprinted.
	ErrClasspathFingerprintFailed = zerr.New("failed to fingerprint generator classpath")

	// ErrClassNotFound is returned by a class loader when no class with the requested name is exported.
	ErrClassNotFound = zerr.New("class not found")

	// ErrClassReadFailed is returned when a compiled class descriptor cannot be read or decoded.
	ErrClassReadFailed = zerr.New("failed to read class")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrSettingsLoadFailed is returned when the settings layers cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrGenerateFailed is returned by the orchestrator when at least one request failed.
	ErrGenerateFailed = zerr.New("accessor generation failed")

	// ErrCatalogNotFound is returned when a catalog requested by name is not bound.
	ErrCatalogNotFound = zerr.New("catalog not found")

	// ErrProjectsExtensionConflict is returned when a catalog is named like the projects extension.
	ErrProjectsExtensionConflict = zerr.New("catalog name is taken by the projects extension")

	// ErrClassNameCollision is returned when two parts of a model generate the same class name.
	ErrClassNameCollision = zerr.New("generated class names collide")
)

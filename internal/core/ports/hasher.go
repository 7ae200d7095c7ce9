package ports

// Fingerprinter computes a content fingerprint of the generator classpath.
//
//go:generate mockgen -destination=mocks/fingerprinter_mock.go -package=mocks -source=hasher.go
type Fingerprinter interface {
	// Fingerprint hashes every regular file below the given classpath entries.
	// The result depends on relative paths and contents only, never on timestamps or absolute locations.
	Fingerprint(classpath []string) (string, error)
}

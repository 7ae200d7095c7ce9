// Package identity derives stable cache identities from generation requests.
package identity

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"slices"

	"go.trai.ch/accessors/internal/core/domain"
)

const (
	catalogTag = "accessors/catalog/v1"
	projectTag = "accessors/projects/v1"
)

// Computer computes identities for requests generated against one generator classpath.
type Computer struct {
	fingerprint string
}

// NewComputer returns a Computer bound to the fingerprint of the generator classpath.
// A new fingerprint yields new identities for every request.
func NewComputer(fingerprint string) *Computer {
	return &Computer{fingerprint: fingerprint}
}

// Fingerprint returns the generator classpath fingerprint the computer was built with.
func (c *Computer) Fingerprint() string {
	return c.fingerprint
}

// Compute returns the identity of a request.
// Only semantic inputs are hashed: alias sets in alias order, or the sorted project paths.
func (c *Computer) Compute(req domain.GenerationRequest) domain.Identity {
	w := newWriter()
	switch r := req.(type) {
	case domain.CatalogRequest:
		w.catalog(r.Model)
	case domain.ProjectTreeRequest:
		w.projects(r.Root)
	default:
		panic("identity: unknown generation request")
	}
	w.section("fingerprint", 1)
	w.str(c.fingerprint)
	return w.sum()
}

// writer feeds length-prefixed fields into SHA-256 so no two field sequences share an encoding.
type writer struct {
	h   hash.Hash
	buf [8]byte
}

func newWriter() *writer {
	return &writer{h: sha256.New()}
}

func (w *writer) uint(n int) {
	binary.BigEndian.PutUint64(w.buf[:], uint64(n))
	_, _ = w.h.Write(w.buf[:])
}

func (w *writer) str(s string) {
	w.uint(len(s))
	_, _ = w.h.Write([]byte(s))
}

func (w *writer) section(name string, n int) {
	w.str(name)
	w.uint(n)
}

func (w *writer) sum() domain.Identity {
	var id domain.Identity
	copy(id[:], w.h.Sum(nil))
	return id
}

func (w *writer) catalog(m *domain.CatalogModel) {
	w.str(catalogTag)
	w.str(m.Name())

	deps := m.Dependencies()
	w.section("libraries", len(deps))
	for _, d := range deps {
		w.str(d.Alias)
		w.str(d.Group)
		w.str(d.Artifact)
		w.str(d.Version)
		w.str(d.VersionRef)
	}

	bundles := m.Bundles()
	w.section("bundles", len(bundles))
	for _, b := range bundles {
		w.str(b.Alias)
		w.uint(len(b.Members))
		for _, member := range b.Members {
			w.str(member)
		}
	}

	versions := m.Versions()
	w.section("versions", len(versions))
	for _, v := range versions {
		w.str(v.Alias)
		w.str(v.Version)
	}
}

func (w *writer) projects(root *domain.ProjectNode) {
	w.str(projectTag)

	// Project names are the last path segments, so the paths determine every generated class.
	paths := slices.Compact(root.Paths())
	w.section("paths", len(paths))
	for _, p := range paths {
		w.str(p)
	}
}

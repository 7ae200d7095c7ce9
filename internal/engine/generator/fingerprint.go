package generator

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sync"

	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/zerr"
)

// Fingerprint digests what the generator emits: the classpath source and the rendering of a
// fixed sample covering every class kind. Any change to the templates changes it.
var Fingerprint = sync.OnceValues(func() (string, error) {
	return fingerprint(Generate)
})

func fingerprint(render func(domain.ClassSource) (domain.GeneratedFile, error)) (string, error) {
	sources, err := sample()
	if err != nil {
		return "", zerr.Wrap(err, "failed to build generator sample")
	}

	h := sha256.New()
	var n [8]byte
	write := func(b []byte) {
		binary.BigEndian.PutUint64(n[:], uint64(len(b)))
		_, _ = h.Write(n[:])
		_, _ = h.Write(b)
	}
	support := SupportSource()
	write([]byte(support.FileName))
	write(support.Content)
	for _, src := range sources {
		file, err := render(src)
		if err != nil {
			return "", err
		}
		write([]byte(file.FileName))
		write(file.Content)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func sample() ([]domain.ClassSource, error) {
	m, err := domain.NewCatalogModel("sample",
		[]domain.DependencyAlias{
			{Alias: "core", Group: "org.sample", Artifact: "core", VersionRef: "sample"},
			{Alias: "extra-tools", Group: "org.sample", Artifact: "tools", Version: "1.0"},
		},
		[]domain.BundleAlias{{Alias: "all", Members: []string{"core", "extra-tools"}}},
		[]domain.VersionAlias{{Alias: "sample", Version: "2.0"}},
	)
	if err != nil {
		return nil, err
	}
	root, err := domain.NewProjectTree("sample", []string{"app", "app:core-utils"})
	if err != nil {
		return nil, err
	}
	sources := SourcesFor(domain.CatalogRequest{Model: m})
	return append(sources, SourcesFor(domain.ProjectTreeRequest{Root: root})...), nil
}

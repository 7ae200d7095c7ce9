package domain

// GenerationRequest is one unit of work for the workspace cache.
// The set of implementations is closed: CatalogRequest and ProjectTreeRequest.
type GenerationRequest interface {
	// Kind names the request kind for logs and telemetry.
	Kind() string
	// Label is a short human readable description of the request.
	Label() string

	generationRequest()
}

// CatalogRequest asks for the accessors of one dependency catalog.
type CatalogRequest struct {
	Model *CatalogModel
}

// Kind implements GenerationRequest.
func (CatalogRequest) Kind() string { return "catalog" }

// Label implements GenerationRequest.
func (r CatalogRequest) Label() string { return "catalog " + r.Model.Name() }

func (CatalogRequest) generationRequest() {}

// ProjectTreeRequest asks for the type-safe project accessors of a whole project tree.
type ProjectTreeRequest struct {
	Root *ProjectNode
}

// Kind implements GenerationRequest.
func (ProjectTreeRequest) Kind() string { return "projects" }

// Label implements GenerationRequest.
func (ProjectTreeRequest) Label() string { return "project accessors" }

func (ProjectTreeRequest) generationRequest() {}

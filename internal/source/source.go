package source

import (
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/domain"
	"PoliceDigest/internal/ports"
)

// Registry keeps a mapping from source names to their implementations.
type Registry struct {
	sources map[string]ports.DigestSource
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]ports.DigestSource{}}
}

// Register adds or replaces a source implementation.
func (r *Registry) Register(src ports.DigestSource) {
	if r.sources == nil {
		r.sources = map[string]ports.DigestSource{}
	}
	r.sources[src.Name()] = src
}

// Resolve returns a source by name or ErrUnknownSource.
func (r *Registry) Resolve(name string) (ports.DigestSource, error) {
	if src, ok := r.sources[name]; ok {
		return src, nil
	}
	return nil, goerr.Wrap(domain.ErrUnknownSource, "resolve source",
		goerr.V("name", name), goerr.V("registered", r.Names()))
}

// Names lists registered sources in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package plugin

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"regexp"
	"slices"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"stakeplug/internal/contract"
	"stakeplug/internal/domain"
)

var (
	// ErrUnknownPlugin is returned by Lookup for names nobody registered.
	ErrUnknownPlugin = errors.New("unknown plugin")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("plugin already registered")
	// ErrMissingAsset is returned when the manifest's logo is not in the assets.
	ErrMissingAsset = errors.New("plugin asset not found")
	// ErrInvalidManifest is returned for a malformed manifest.
	ErrInvalidManifest = errors.New("invalid plugin manifest")
	// ErrInvalidArguments is returned by Validate when arguments do not match the schema.
	ErrInvalidArguments = errors.New("invalid plugin arguments")
)

var nameRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Manifest describes a plugin.
type Manifest = domain.Manifest

// Unwrapper is a decodable wrapper around a contract of type C.
type Unwrapper[C contract.Contract] interface {
	Unwrap() C
}

// Schemer is implemented by wrappers that supply their own argument schema.
type Schemer interface {
	JSONSchema() (*jsonschema.Schema, error)
}

// Registration is one registered plugin.
type Registration struct {
	manifest Manifest
	schema   *jsonschema.Schema
	resolved *jsonschema.Resolved
	logo     []byte
	logoType string
	create   func(raw []byte) (contract.Contract, error)
}

// Registry maps plugin names to registrations. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	plugins map[domain.PluginName]*Registration
}

// Default is the registry plugins add themselves to from init.
var Default = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[domain.PluginName]*Registration)}
}

// Register adds the contract type C, decoded through wrapper W, to r.
//
// The logo named by the manifest is read from assets. The argument schema
// comes from W.JSONSchema when W is a Schemer and is inferred from W
// otherwise.
func Register[C contract.Contract, W Unwrapper[C]](r *Registry, m Manifest, assets fs.FS) error {
	if !nameRe.MatchString(m.Name.String()) {
		return fmt.Errorf("%w: name %q", ErrInvalidManifest, m.Name)
	}
	if m.Logo == "" {
		return fmt.Errorf("%w: %s: no logo", ErrInvalidManifest, m.Name)
	}
	if m.DisplayName == "" {
		m.DisplayName = m.Name.String()
	}

	logo, err := fs.ReadFile(assets, m.Logo)
	if err != nil {
		return fmt.Errorf("%w: %s: %s: %v", ErrMissingAsset, m.Name, m.Logo, err)
	}
	if len(logo) == 0 {
		return fmt.Errorf("%w: %s: %s is empty", ErrMissingAsset, m.Name, m.Logo)
	}

	schema, err := schemaOf[W]()
	if err != nil {
		return fmt.Errorf("%s: schema: %w", m.Name, err)
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("%s: resolve schema: %w", m.Name, err)
	}

	reg := &Registration{
		manifest: m,
		schema:   schema,
		resolved: resolved,
		logo:     logo,
		logoType: http.DetectContentType(logo),
		create: func(raw []byte) (contract.Contract, error) {
			var w W
			if err := json.Unmarshal(raw, &w); err != nil {
				return nil, err
			}
			return w.Unwrap(), nil
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plugins[m.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, m.Name)
	}
	r.plugins[m.Name] = reg
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister[C contract.Contract, W Unwrapper[C]](r *Registry, m Manifest, assets fs.FS) {
	if err := Register[C, W](r, m, assets); err != nil {
		panic(fmt.Sprintf("plugin: %v", err))
	}
}

func schemaOf[W any]() (*jsonschema.Schema, error) {
	var w W
	if s, ok := any(w).(Schemer); ok {
		return s.JSONSchema()
	}
	if s, ok := any(&w).(Schemer); ok {
		return s.JSONSchema()
	}
	return contract.SchemaFor[W]()
}

// Lookup returns the registration for name.
func (r *Registry) Lookup(name domain.PluginName) (*Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.plugins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlugin, name)
	}
	return reg, nil
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []domain.PluginName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]domain.PluginName, 0, len(r.plugins))
	for n := range r.plugins {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Manifests returns every manifest, sorted by name.
func (r *Registry) Manifests() []Manifest {
	names := r.Names()
	out := make([]Manifest, 0, len(names))
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range names {
		if reg, ok := r.plugins[n]; ok {
			out = append(out, reg.manifest)
		}
	}
	return out
}

// Manifest returns the plugin's manifest.
func (g *Registration) Manifest() Manifest { return g.manifest }

// Schema returns the plugin's argument schema.
func (g *Registration) Schema() *jsonschema.Schema { return g.schema }

// Logo returns a copy of the logo bytes.
func (g *Registration) Logo() []byte { return bytes.Clone(g.logo) }

// LogoContentType is the sniffed MIME type of the logo.
func (g *Registration) LogoContentType() string { return g.logoType }

// Validate checks raw arguments against the schema.
func (g *Registration) Validate(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if err := g.resolved.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}

// Create decodes raw through the plugin's wrapper and returns the contract.
// Decode errors are returned unchanged.
func (g *Registration) Create(raw []byte) (contract.Contract, error) {
	return g.create(raw)
}

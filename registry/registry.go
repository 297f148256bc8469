// Package registry maps names to the templates and catalogs the commands can
// select. Built-ins are registered at init
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/catalog"
)

// DefaultCatalog is the registry name of catalog.Default
const DefaultCatalog = "spaceship"

// Sentinel errors
var (
	ErrUnknown = errors.New("unknown name")
)

var (
	templatesMu sync.RWMutex
	templates   = make(map[string]*blueprint.Template)
	catalogsMu  sync.RWMutex
	catalogs    = make(map[string]*catalog.Catalog)
)

func init() {
	for _, t := range blueprint.Builtins() {
		RegisterTemplate(t)
	}
	RegisterCatalog(DefaultCatalog, catalog.Default())
}

// RegisterTemplate adds t under its name, replacing any previous entry
func RegisterTemplate(t *blueprint.Template) {
	templatesMu.Lock()
	defer templatesMu.Unlock()
	templates[t.Name] = t
}

// GetTemplate retrieves a template by name
func GetTemplate(name string) (*blueprint.Template, error) {
	templatesMu.RLock()
	defer templatesMu.RUnlock()
	t, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: template %q (have %s)", ErrUnknown, name, strings.Join(sortedKeys(templates), ", "))
	}
	return t, nil
}

// TemplateNames returns all registered template names, sorted
func TemplateNames() []string {
	templatesMu.RLock()
	defer templatesMu.RUnlock()
	return sortedKeys(templates)
}

// RegisterCatalog adds cat under name, replacing any previous entry
func RegisterCatalog(name string, cat *catalog.Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[name] = cat
}

// GetCatalog retrieves a catalog by name
func GetCatalog(name string) (*catalog.Catalog, error) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	c, ok := catalogs[name]
	if !ok {
		return nil, fmt.Errorf("%w: catalog %q (have %s)", ErrUnknown, name, strings.Join(sortedKeys(catalogs), ", "))
	}
	return c, nil
}

// CatalogNames returns all registered catalog names, sorted
func CatalogNames() []string {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	return sortedKeys(catalogs)
}

// ResolveTemplate loads file when set, otherwise looks name up. A loaded
// template is registered so later lookups by its name succeed
func ResolveTemplate(name, file string) (*blueprint.Template, error) {
	if file == "" {
		return GetTemplate(name)
	}
	t, err := blueprint.LoadFile(file)
	if err != nil {
		return nil, err
	}
	RegisterTemplate(t)
	return t, nil
}

// ResolveCatalog loads file when set, otherwise returns the default catalog
func ResolveCatalog(file string) (*catalog.Catalog, error) {
	if file == "" {
		return GetCatalog(DefaultCatalog)
	}
	c, err := catalog.LoadFile(file)
	if err != nil {
		return nil, err
	}
	RegisterCatalog(file, c)
	return c, nil
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

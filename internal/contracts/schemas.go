package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"saas-dashboard/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ключи контрактов ответов backend
const (
	CompaniesPage = "CompaniesPageResponse/1"
	Industries    = "IndustriesResponse/1"
	Locations     = "LocationsResponse/1"
	Health        = "HealthResponse/1"
)

const schemasRoot = "responses"

// Registry хранит скомпилированные схемы по ключу "<Name>Response/<version>"
type Registry struct {
	compiled map[string]*jsonschema.Schema
}

var (
	defaultRegistry    *Registry
	defaultRegistryErr error
	defaultOnce        sync.Once
)

// DefaultRegistry компилирует встроенные схемы один раз на процесс
func DefaultRegistry() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultRegistryErr = NewRegistry(schemas.SchemasFS, schemasRoot)
	})
	return defaultRegistry, defaultRegistryErr
}

// NewRegistry обходит fsys от root и компилирует все *.json.
func NewRegistry(fsys fs.FS, root string) (*Registry, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string

	// Сначала добавляем все схемы как ресурсы, чтобы работали $ref между файлами
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}

		file, err := fsys.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open schema %s: %w", path, err)
		}
		defer file.Close()

		if err := compiler.AddResource(path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking and adding schema resources: %w", err)
	}

	registry := &Registry{compiled: make(map[string]*jsonschema.Schema, len(paths))}
	for _, path := range paths {
		key := generateKeyFromPath(root, path)
		if key == "" {
			return nil, fmt.Errorf("unexpected schema path layout: %s", path)
		}

		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		registry.compiled[key] = schema
	}

	return registry, nil
}

// generateKeyFromPath преобразует путь вида "responses/companies-page/v1.json"
// в ключ вида "CompaniesPageResponse/1".
func generateKeyFromPath(root, path string) string {
	trimmedPath := strings.TrimPrefix(path, root+"/")
	trimmedPath = strings.TrimSuffix(trimmedPath, ".json")

	parts := strings.Split(trimmedPath, "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[1], "v") {
		return ""
	}

	caser := cases.Title(language.English)

	var nameBuilder strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		nameBuilder.WriteString(caser.String(p))
	}
	nameBuilder.WriteString("Response")

	return fmt.Sprintf("%s/%s", nameBuilder.String(), strings.TrimPrefix(parts[1], "v"))
}

// Has - зарегистрирован ли контракт
func (r *Registry) Has(key string) bool {
	_, ok := r.compiled[key]
	return ok
}

// Validate проверяет тело ответа по схеме контракта
func (r *Registry) Validate(key string, body []byte) error {
	schema, ok := r.compiled[key]
	if !ok {
		return fmt.Errorf("schema for contract '%s' not found", key)
	}

	// jsonschema работает с распарсенным interface{}
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("response body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}

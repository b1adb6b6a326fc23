package contracts

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"agency-service/internal/core/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas
var schemasFS embed.FS

// Ключи схем: "<Name><Kind>/<major>.0.0".
const (
	ClientBodyV1    = "ClientBody/1.0.0"
	PropertyBodyV1  = "PropertyBody/1.0.0"
	RequestBodyV1   = "RequestBody/1.0.0"
	EntityChangedV1 = "EntityChangedEvent/1.0.0"
)

var compiledSchemas map[string]*jsonschema.Schema

// Схемы зашиты в бинарник, поэтому ошибка компиляции - ошибка сборки.
func init() {
	schemas, err := compileAll(schemasFS)
	if err != nil {
		panic(fmt.Sprintf("contracts: %v", err))
	}
	compiledSchemas = schemas
}

func compileAll(fsys fs.FS) (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	err := fs.WalkDir(fsys, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		// ресурсы добавляются до компиляции, чтобы работали $ref между схемами
		if err := compiler.AddResource(path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking schema resources: %w", err)
	}

	compiled := make(map[string]*jsonschema.Schema, len(paths))
	for _, path := range paths {
		key := keyFromPath(path)
		if key == "" {
			return nil, fmt.Errorf("unexpected schema path %s", path)
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		compiled[key] = schema
	}
	return compiled, nil
}

// keyFromPath: "schemas/bodies/client/v1.json" -> "ClientBody/1.0.0",
// "schemas/events/entity-changed/v1.json" -> "EntityChangedEvent/1.0.0".
func keyFromPath(path string) string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "schemas/"), ".json")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 || !strings.HasPrefix(parts[2], "v") {
		return ""
	}

	var suffix string
	switch parts[0] {
	case "bodies":
		suffix = "Body"
	case "events":
		suffix = "Event"
	default:
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[1], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString(suffix)

	return fmt.Sprintf("%s/%s.0.0", name.String(), strings.TrimPrefix(parts[2], "v"))
}

// Validate проверяет JSON-документ по схеме с ключом key.
// Нарушение схемы оборачивает domain.ErrInvalidInput.
func Validate(key string, body []byte) error {
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema %q not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("%w: body is not a valid JSON: %v", domain.ErrInvalidInput, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(err))
	}
	return nil
}

// describe сворачивает дерево ошибок jsonschema в одну строку для ответа клиенту.
func describe(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}

	var msgs []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msgs = append(msgs, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return strings.Join(msgs, "; ")
}

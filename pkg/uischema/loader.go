package uischema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the document identified by src. fsys is only consulted for
// fs-backed sources.
func Load(fsys fs.FS, src Source) (Document, error) {
	if src == nil {
		return Document{}, errors.New("uischema: source is required")
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case SourceKindFS:
		if fsys == nil {
			return Document{}, fmt.Errorf("uischema: %s: filesystem is required", src.Location())
		}
		data, err = fs.ReadFile(fsys, src.Location())
	default:
		return Document{}, fmt.Errorf("uischema: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return Document{}, fmt.Errorf("uischema: read %s: %w", src.Location(), err)
	}
	return Parse(data, src.Location())
}

// LoadFile is shorthand for Load(nil, SourceFromFile(path)).
func LoadFile(path string) (Document, error) {
	return Load(nil, SourceFromFile(path))
}

// Parse decodes JSON or YAML. Field keys are trimmed; blank or duplicate keys
// after trimming are rejected.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Document{}
		if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
			return Document{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML: %w", source, yamlErr)
		}
	}
	doc.Source = source

	fields := make(map[string]FieldConfig, len(doc.Fields))
	for key, cfg := range doc.Fields {
		name := strings.TrimSpace(key)
		if name == "" {
			return Document{}, fmt.Errorf("uischema: file %s defines an empty field key", source)
		}
		if _, exists := fields[name]; exists {
			return Document{}, fmt.Errorf("uischema: file %s defines duplicate field %q", source, name)
		}
		fields[name] = cfg
	}
	doc.Fields = fields
	return doc, nil
}

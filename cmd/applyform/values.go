package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func readInput(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read values %s: %w", path, err)
	}
	return data, nil
}

// readValues loads a flat JSON or YAML object of field values. Scalars are
// converted to the text a user would have typed.
func readValues(path string, stdin io.Reader) (map[string]string, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}
	return parseValues(data)
}

// toJSON re-encodes a JSON or YAML document as JSON, keeping value types.
func toJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse values: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return json.Marshal(doc)
}

func parseValues(data []byte) (map[string]string, error) {
	if strings.TrimSpace(string(data)) == "" {
		return map[string]string{}, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse values: %w", err)
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		text, err := scalarText(value)
		if err != nil {
			return nil, fmt.Errorf("parse values: field %q: %w", key, err)
		}
		out[key] = text
	}
	return out, nil
}

func scalarText(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("expected a scalar, got %T", value)
	}
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package restdown

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteOutputs persists the HTML document and the JSON summary as sibling
// files of the input: <base>.html and <base>.json in the input's
// directory, UTF-8 encoded. The JSON output has sorted keys, 2-space
// indentation and a trailing newline. Returns the written paths.
func WriteOutputs(res *Result, inputPath string) (htmlPath, jsonPath string, err error) {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	htmlPath = base + ".html"
	jsonPath = base + ".json"

	if err := os.WriteFile(htmlPath, []byte(res.HTML), 0o644); err != nil {
		return "", "", fmt.Errorf("writing %s: %w", htmlPath, err)
	}

	data, err := MarshalSummary(res.Summary)
	if err != nil {
		return "", "", err
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("writing %s: %w", jsonPath, err)
	}

	return htmlPath, jsonPath, nil
}

// MarshalSummary serializes a Summary with sorted keys, 2-space indent and
// a trailing newline. Struct fields are declared in sorted key order;
// the encoder preserves declaration order.
func MarshalSummary(s Summary) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encoding summary: %w", err)
	}
	return buf.Bytes(), nil
}

// Package seeds reads catalog seed documents.
package seeds

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sitedesk/sitedesk/internal/application/catalog/dto"
)

// LoadFile parses a catalog seed file.
func LoadFile(path string) (*dto.SeedDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a seed document. Unknown keys are rejected so that typos do
// not silently drop data.
func Parse(data []byte) (*dto.SeedDocument, error) {
	var doc dto.SeedDocument

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to parse seed document: %w", err)
	}
	return &doc, nil
}

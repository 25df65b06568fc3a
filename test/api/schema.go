/*
Copyright 2026 the Orchard QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// openAPIDocument is the bookstore's published OpenAPI document, trimmed to
// the Books/Authors/CoverPhotos surface this suite exercises.
//
//go:embed openapi.json
var openAPIDocument []byte

// SchemaValidator validates response bodies against the component schemas of
// the bookstore's OpenAPI document.
type SchemaValidator struct {
	doc *openapi3.T
}

// NewSchemaValidator loads and validates the embedded OpenAPI document.
func NewSchemaValidator() (*SchemaValidator, error) {
	loader := &openapi3.Loader{Context: context.Background()}

	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("loading OpenAPI document: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating OpenAPI document: %w", err)
	}

	return &SchemaValidator{doc: doc}, nil
}

// validateAgainst checks a JSON body against a named component schema.
func (v *SchemaValidator) validateAgainst(schemaName string, data []byte) error {
	ref, ok := v.doc.Components.Schemas[schemaName]
	if !ok {
		return fmt.Errorf("schema %q not present in OpenAPI document", schemaName)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("parsing body for %s validation: %w", schemaName, err)
	}

	if err := ref.Value.VisitJSON(value); err != nil {
		return fmt.Errorf("body does not match %s schema: %w", schemaName, err)
	}

	return nil
}

// validateListAgainst checks that a JSON body is an array whose every
// element matches a named component schema.
func (v *SchemaValidator) validateListAgainst(schemaName string, data []byte) error {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return fmt.Errorf("parsing body as %s list: %w", schemaName, err)
	}

	for i, element := range elements {
		if err := v.validateAgainst(schemaName, element); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

// ValidateBook checks a body against the Book schema.
func (v *SchemaValidator) ValidateBook(data []byte) error {
	return v.validateAgainst("Book", data)
}

// ValidateBookList checks a body against an array of the Book schema.
func (v *SchemaValidator) ValidateBookList(data []byte) error {
	return v.validateListAgainst("Book", data)
}

// ValidateAuthor checks a body against the Author schema.
func (v *SchemaValidator) ValidateAuthor(data []byte) error {
	return v.validateAgainst("Author", data)
}

// ValidateAuthorList checks a body against an array of the Author schema.
func (v *SchemaValidator) ValidateAuthorList(data []byte) error {
	return v.validateListAgainst("Author", data)
}

// ValidateCoverPhoto checks a body against the CoverPhoto schema.
func (v *SchemaValidator) ValidateCoverPhoto(data []byte) error {
	return v.validateAgainst("CoverPhoto", data)
}

// ValidateCoverPhotoList checks a body against an array of the CoverPhoto schema.
func (v *SchemaValidator) ValidateCoverPhotoList(data []byte) error {
	return v.validateListAgainst("CoverPhoto", data)
}

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
	"fmt"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Book collection endpoints.
func (e *Endpoints) Books() string {
	return "/api/v1/Books"
}

func (e *Endpoints) Book(id int) string {
	return fmt.Sprintf("/api/v1/Books/%d", id)
}

// Author collection endpoints.
func (e *Endpoints) Authors() string {
	return "/api/v1/Authors"
}

func (e *Endpoints) Author(id int) string {
	return fmt.Sprintf("/api/v1/Authors/%d", id)
}

// AuthorsByBook lists the authors referencing a given book.
func (e *Endpoints) AuthorsByBook(idBook int) string {
	return fmt.Sprintf("/api/v1/Authors/authors/books/%d", idBook)
}

// Cover photo endpoints.
func (e *Endpoints) CoverPhotos() string {
	return "/api/v1/CoverPhotos"
}

func (e *Endpoints) CoverPhoto(id int) string {
	return fmt.Sprintf("/api/v1/CoverPhotos/%d", id)
}

// CoverPhotosByBook lists the cover photos referencing a given book.
func (e *Endpoints) CoverPhotosByBook(idBook int) string {
	return fmt.Sprintf("/api/v1/CoverPhotos/books/covers/%d", idBook)
}

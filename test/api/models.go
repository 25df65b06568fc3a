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

// Typed views of the bookstore entities, used on the decode side of
// well-formed requests. Request payloads are built as untyped maps (see
// builders.go) so negative tests can carry deliberately invalid values;
// these structs only describe what a conforming response looks like.

// Book is a bookstore book. String fields are nullable in the API.
type Book struct {
	ID          int     `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PageCount   int     `json:"pageCount"`
	Excerpt     *string `json:"excerpt"`
	PublishDate string  `json:"publishDate"`
}

// Author is a bookstore author. IDBook is a non-owning reference to a Book;
// the API does not guarantee cascade semantics for it.
type Author struct {
	ID        int     `json:"id"`
	IDBook    int     `json:"idBook"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// CoverPhoto is a book cover image reference.
type CoverPhoto struct {
	ID     int     `json:"id"`
	IDBook int     `json:"idBook"`
	URL    *string `json:"url"`
}

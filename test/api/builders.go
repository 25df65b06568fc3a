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
	"time"
)

// Payload builders produce well-formed entity payloads over untyped maps.
// Defaults are derived from the entity ID so two builders seeded with the
// same ID build equal payloads. Overrides win verbatim and are never
// validated: scenarios that need a non-string title or a negative page count
// set them through WithField, and the remote API is the validation oracle.

// publishDateForID derives a stable publish date from an ID so defaults stay
// deterministic per ID while varying across entities.
func publishDateForID(id int) string {
	base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, id%8000).Format(time.RFC3339)
}

// BookPayloadBuilder builds book payloads for testing.
type BookPayloadBuilder struct {
	payload map[string]any
}

// NewBookPayload creates a book payload builder with defaults derived from a
// freshly generated new-range ID.
func NewBookPayload(gen *IDGen) *BookPayloadBuilder {
	return NewBookPayloadForID(gen.RandomNewBookID())
}

// NewBookPayloadForID creates a book payload builder with defaults derived
// from the given ID.
func NewBookPayloadForID(id int) *BookPayloadBuilder {
	return &BookPayloadBuilder{
		payload: map[string]any{
			"id":          id,
			"title":       fmt.Sprintf("Book %d", id),
			"description": fmt.Sprintf("Description for book %d", id),
			"pageCount":   100 + id%900,
			"excerpt":     fmt.Sprintf("Excerpt from book %d", id),
			"publishDate": publishDateForID(id),
		},
	}
}

// WithID sets the book ID.
func (b *BookPayloadBuilder) WithID(id int) *BookPayloadBuilder {
	b.payload["id"] = id
	return b
}

// WithTitle sets the book title.
func (b *BookPayloadBuilder) WithTitle(title string) *BookPayloadBuilder {
	b.payload["title"] = title
	return b
}

// WithDescription sets the book description.
func (b *BookPayloadBuilder) WithDescription(description string) *BookPayloadBuilder {
	b.payload["description"] = description
	return b
}

// WithPageCount sets the page count.
func (b *BookPayloadBuilder) WithPageCount(pageCount int) *BookPayloadBuilder {
	b.payload["pageCount"] = pageCount
	return b
}

// WithExcerpt sets the excerpt.
func (b *BookPayloadBuilder) WithExcerpt(excerpt string) *BookPayloadBuilder {
	b.payload["excerpt"] = excerpt
	return b
}

// WithPublishDate sets the publish date.
func (b *BookPayloadBuilder) WithPublishDate(publishDate string) *BookPayloadBuilder {
	b.payload["publishDate"] = publishDate
	return b
}

// WithField sets any field to any value, including semantically invalid ones.
// This is the negative-testing escape hatch; no validation happens here.
func (b *BookPayloadBuilder) WithField(name string, value any) *BookPayloadBuilder {
	b.payload[name] = value
	return b
}

// Without removes a field from the payload entirely.
func (b *BookPayloadBuilder) Without(name string) *BookPayloadBuilder {
	delete(b.payload, name)
	return b
}

// Build returns the completed book payload.
func (b *BookPayloadBuilder) Build() map[string]any {
	return b.payload
}

// AuthorPayloadBuilder builds author payloads for testing.
type AuthorPayloadBuilder struct {
	payload map[string]any
}

// NewAuthorPayload creates an author payload builder with defaults derived
// from a freshly generated new-range ID. The idBook reference points at a
// seeded book so the default payload is referentially sound.
func NewAuthorPayload(gen *IDGen) *AuthorPayloadBuilder {
	return NewAuthorPayloadForID(gen.RandomNewAuthorID(), gen.RandomBookID())
}

// NewAuthorPayloadForID creates an author payload builder with defaults
// derived from the given IDs.
func NewAuthorPayloadForID(id, idBook int) *AuthorPayloadBuilder {
	return &AuthorPayloadBuilder{
		payload: map[string]any{
			"id":        id,
			"idBook":    idBook,
			"firstName": fmt.Sprintf("First %d", id),
			"lastName":  fmt.Sprintf("Last %d", id),
		},
	}
}

// WithID sets the author ID.
func (b *AuthorPayloadBuilder) WithID(id int) *AuthorPayloadBuilder {
	b.payload["id"] = id
	return b
}

// WithBookID sets the referenced book ID.
func (b *AuthorPayloadBuilder) WithBookID(idBook int) *AuthorPayloadBuilder {
	b.payload["idBook"] = idBook
	return b
}

// WithFirstName sets the first name.
func (b *AuthorPayloadBuilder) WithFirstName(firstName string) *AuthorPayloadBuilder {
	b.payload["firstName"] = firstName
	return b
}

// WithLastName sets the last name.
func (b *AuthorPayloadBuilder) WithLastName(lastName string) *AuthorPayloadBuilder {
	b.payload["lastName"] = lastName
	return b
}

// WithField sets any field to any value, including semantically invalid ones.
func (b *AuthorPayloadBuilder) WithField(name string, value any) *AuthorPayloadBuilder {
	b.payload[name] = value
	return b
}

// Without removes a field from the payload entirely.
func (b *AuthorPayloadBuilder) Without(name string) *AuthorPayloadBuilder {
	delete(b.payload, name)
	return b
}

// Build returns the completed author payload.
func (b *AuthorPayloadBuilder) Build() map[string]any {
	return b.payload
}

// CoverPhotoPayloadBuilder builds cover photo payloads for testing.
type CoverPhotoPayloadBuilder struct {
	payload map[string]any
}

// NewCoverPhotoPayload creates a cover photo payload builder with defaults
// derived from a freshly generated new-range ID.
func NewCoverPhotoPayload(gen *IDGen) *CoverPhotoPayloadBuilder {
	return NewCoverPhotoPayloadForID(gen.RandomNewBookID(), gen.RandomBookID())
}

// NewCoverPhotoPayloadForID creates a cover photo payload builder with
// defaults derived from the given IDs.
func NewCoverPhotoPayloadForID(id, idBook int) *CoverPhotoPayloadBuilder {
	return &CoverPhotoPayloadBuilder{
		payload: map[string]any{
			"id":     id,
			"idBook": idBook,
			"url":    fmt.Sprintf("https://placeholdit.imgix.net/~text?txtsize=33&txt=Book %d&w=250&h=350", idBook),
		},
	}
}

// WithBookID sets the referenced book ID.
func (b *CoverPhotoPayloadBuilder) WithBookID(idBook int) *CoverPhotoPayloadBuilder {
	b.payload["idBook"] = idBook
	return b
}

// WithURL sets the photo URL.
func (b *CoverPhotoPayloadBuilder) WithURL(url string) *CoverPhotoPayloadBuilder {
	b.payload["url"] = url
	return b
}

// WithField sets any field to any value, including semantically invalid ones.
func (b *CoverPhotoPayloadBuilder) WithField(name string, value any) *CoverPhotoPayloadBuilder {
	b.payload[name] = value
	return b
}

// Build returns the completed cover photo payload.
func (b *CoverPhotoPayloadBuilder) Build() map[string]any {
	return b.payload
}

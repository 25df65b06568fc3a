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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// RandomSeededBook fetches a random book from the seeded range. Scenarios
// downstream depend on having a valid seed entity, so any non-200 fetch
// fails the calling setup immediately, naming the attempted ID and the
// status received.
func RandomSeededBook(client *APIClient, ctx context.Context, gen *IDGen) *Book {
	id := gen.RandomBookID()

	resp, err := client.Get(ctx, client.Endpoints().Book(id))
	if err != nil {
		Fail(fmt.Sprintf("fetching seeded book %d: %v", id, err))
	}

	if resp.StatusCode != http.StatusOK {
		Fail(fmt.Sprintf("fetching seeded book %d: expected status 200, got %d", id, resp.StatusCode))
	}

	book := &Book{}
	Expect(resp.JSON(book)).To(Succeed(), "seeded book %d should decode", id)

	return book
}

// RandomSeededAuthor fetches a random author from the seeded range, failing
// the calling setup on any non-200 response.
func RandomSeededAuthor(client *APIClient, ctx context.Context, gen *IDGen) *Author {
	id := gen.RandomAuthorID()

	resp, err := client.Get(ctx, client.Endpoints().Author(id))
	if err != nil {
		Fail(fmt.Sprintf("fetching seeded author %d: %v", id, err))
	}

	if resp.StatusCode != http.StatusOK {
		Fail(fmt.Sprintf("fetching seeded author %d: expected status 200, got %d", id, resp.StatusCode))
	}

	author := &Author{}
	Expect(resp.JSON(author)).To(Succeed(), "seeded author %d should decode", id)

	return author
}

// CreateBookWithCleanup creates a book and schedules a best-effort delete.
// The reference deployment discards writes, so cleanup failures are logged
// rather than failed: the suite's real collision defence is the disjoint
// ID ranges, not cleanup.
func CreateBookWithCleanup(client *APIClient, ctx context.Context, payload map[string]any) *Book {
	book, err := client.CreateBook(ctx, payload)
	if err != nil {
		Fail(fmt.Sprintf("creating book fixture: %v", err))
	}

	GinkgoWriter.Printf("Created book with ID: %d\n", book.ID)

	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up book: %d\n", book.ID)

		if deleteErr := client.DeleteBook(ctx, book.ID); deleteErr != nil {
			GinkgoWriter.Printf("Warning: Failed to delete book %d: %v\n", book.ID, deleteErr)
		}
	})

	return book
}

// CreateAuthorWithCleanup creates an author and schedules a best-effort delete.
func CreateAuthorWithCleanup(client *APIClient, ctx context.Context, payload map[string]any) *Author {
	author, err := client.CreateAuthor(ctx, payload)
	if err != nil {
		Fail(fmt.Sprintf("creating author fixture: %v", err))
	}

	GinkgoWriter.Printf("Created author with ID: %d\n", author.ID)

	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up author: %d\n", author.ID)

		if deleteErr := client.DeleteAuthor(ctx, author.ID); deleteErr != nil {
			GinkgoWriter.Printf("Warning: Failed to delete author %d: %v\n", author.ID, deleteErr)
		}
	})

	return author
}

// VerifyRoundTrip verifies that every field present in the request payload
// came back unchanged in the response body. The payload is normalized
// through JSON first so numeric types compare like-for-like.
func VerifyRoundTrip(payload map[string]any, body []byte) {
	var got map[string]any
	Expect(json.Unmarshal(body, &got)).To(Succeed(), "response body should be a JSON object")

	data, err := json.Marshal(payload)
	Expect(err).NotTo(HaveOccurred())

	var want map[string]any
	Expect(json.Unmarshal(data, &want)).To(Succeed())

	for field, expected := range want {
		Expect(got).To(HaveKeyWithValue(field, expected), "field %q should round-trip", field)
	}
}

// VerifyBookPresence verifies that books with the given IDs are present in the list.
func VerifyBookPresence(books []Book, expectedIDs []int) {
	ids := make([]int, len(books))
	for i, book := range books {
		ids[i] = book.ID
	}

	for _, expectedID := range expectedIDs {
		Expect(ids).To(ContainElement(expectedID), "Expected book ID %d to be present in the list", expectedID)
	}
}

// VerifyAuthorsReferenceBook verifies that every author in the list
// references the expected book.
func VerifyAuthorsReferenceBook(authors []Author, idBook int) {
	for _, author := range authors {
		Expect(author.IDBook).To(Equal(idBook), "Author %d should reference book %d", author.ID, idBook)
	}
}

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

//nolint:err113 // dynamic errors acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

// APIClient issues requests against the bookstore API. Each call performs
// exactly one HTTP request; there are no retries and no local recovery, so
// transport failures propagate to the calling scenario.
type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
}

// NewAPIClient creates a client from explicit configuration. There is no
// package-level default client: every consumer passes its own config.
func NewAPIClient(config *TestConfig) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// Endpoints exposes the path catalog for callers composing raw requests.
func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

// Response is the handle returned by every request. The body is read eagerly
// (the connection is released before the caller sees the response) and
// parsed lazily.
type Response struct {
	StatusCode int
	Header     http.Header
	body       []byte
}

// JSON parses the body into v, failing if the body is not valid JSON.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("parsing response body as JSON: %w", err)
	}

	return nil
}

// Text returns the raw body as a string.
func (r *Response) Text() string {
	return string(r.body)
}

// Bytes returns the raw body.
func (r *Response) Bytes() []byte {
	return r.body
}

// IsSuccess reports whether the status code is in the 2xx class.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// logError logs a transport-level error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR duration=%s traceparent=%s error=%v\n", method, path, duration, traceParent, err)
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func (c *APIClient) doRequest(ctx context.Context, method, path, contentType string, body io.Reader) (*Response, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err)
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceParent, err)
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		body:       respBody,
	}, nil
}

func marshalBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return bytes.NewReader(data), nil
}

// Get issues a GET request for the given path.
func (c *APIClient) Get(ctx context.Context, path string) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, path, "", nil)
}

// Post issues a POST request with a JSON-encoded body.
func (c *APIClient) Post(ctx context.Context, path string, body any) (*Response, error) {
	reader, err := marshalBody(body)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodPost, path, "application/json; charset=utf-8", reader)
}

// PostRaw issues a POST request with a verbatim body and content type. Used
// by scenarios exercising malformed JSON and unsupported media types.
func (c *APIClient) PostRaw(ctx context.Context, path, contentType string, body []byte) (*Response, error) {
	return c.doRequest(ctx, http.MethodPost, path, contentType, bytes.NewReader(body))
}

// Put issues a PUT request with a JSON-encoded body. The bookstore API
// treats PUT as a full replace.
func (c *APIClient) Put(ctx context.Context, path string, body any) (*Response, error) {
	reader, err := marshalBody(body)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodPut, path, "application/json; charset=utf-8", reader)
}

// Delete issues a DELETE request for the given path.
func (c *APIClient) Delete(ctx context.Context, path string) (*Response, error) {
	return c.doRequest(ctx, http.MethodDelete, path, "", nil)
}

// ListBooks returns the full book collection.
func (c *APIClient) ListBooks(ctx context.Context) ([]Book, error) {
	resp, err := c.Get(ctx, c.endpoints.Books())
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing books: unexpected status code: %d, body: %s", resp.StatusCode, resp.Text())
	}

	var books []Book
	if err := resp.JSON(&books); err != nil {
		return nil, fmt.Errorf("unmarshaling books response: %w", err)
	}

	return books, nil
}

// GetBook retrieves a specific book.
func (c *APIClient) GetBook(ctx context.Context, id int) (*Book, error) {
	resp, err := c.Get(ctx, c.endpoints.Book(id))
	if err != nil {
		return nil, fmt.Errorf("getting book: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		book := &Book{}
		if err := resp.JSON(book); err != nil {
			return nil, fmt.Errorf("unmarshaling book response: %w", err)
		}

		return book, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("book %d not found (status: %d)", id, resp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, resp.Text())
	}
}

// CreateBook creates a book from an untyped payload and returns the decoded
// entity. Payloads come from the builders so negative variants stay possible.
func (c *APIClient) CreateBook(ctx context.Context, payload map[string]any) (*Book, error) {
	resp, err := c.Post(ctx, c.endpoints.Books(), payload)
	if err != nil {
		return nil, fmt.Errorf("creating book: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("creating book: unexpected status code: %d, body: %s", resp.StatusCode, resp.Text())
	}

	book := &Book{}
	if err := resp.JSON(book); err != nil {
		return nil, fmt.Errorf("unmarshaling book response: %w", err)
	}

	return book, nil
}

// UpdateBook replaces a book and returns the decoded result.
func (c *APIClient) UpdateBook(ctx context.Context, id int, payload map[string]any) (*Book, error) {
	resp, err := c.Put(ctx, c.endpoints.Book(id), payload)
	if err != nil {
		return nil, fmt.Errorf("updating book: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("updating book: unexpected status code: %d, body: %s", resp.StatusCode, resp.Text())
	}

	book := &Book{}
	if err := resp.JSON(book); err != nil {
		return nil, fmt.Errorf("unmarshaling book response: %w", err)
	}

	return book, nil
}

// DeleteBook deletes a book. A 404 is not an error so repeated deletes stay
// idempotent from the caller's point of view.
func (c *APIClient) DeleteBook(ctx context.Context, id int) error {
	resp, err := c.Delete(ctx, c.endpoints.Book(id))
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return fmt.Errorf("deleting book %d: unexpected status code: %d, body: %s", id, resp.StatusCode, resp.Text())
	}
}

// ListAuthors returns the full author collection.
func (c *APIClient) ListAuthors(ctx context.Context) ([]Author, error) {
	resp, err := c.Get(ctx, c.endpoints.Authors())
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing authors: unexpected status code: %d, body: %s", resp.StatusCode, resp.Text())
	}

	var authors []Author
	if err := resp.JSON(&authors); err != nil {
		return nil, fmt.Errorf("unmarshaling authors response: %w", err)
	}

	return authors, nil
}

// GetAuthor retrieves a specific author.
func (c *APIClient) GetAuthor(ctx context.Context, id int) (*Author, error) {
	resp, err := c.Get(ctx, c.endpoints.Author(id))
	if err != nil {
		return nil, fmt.Errorf("getting author: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		author := &Author{}
		if err := resp.JSON(author); err != nil {
			return nil, fmt.Errorf("unmarshaling author response: %w", err)
		}

		return author, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("author %d not found (status: %d)", id, resp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, resp.Text())
	}
}

// ListAuthorsByBook lists the authors referencing a book.
func (c *APIClient) ListAuthorsByBook(ctx context.Context, idBook int) ([]Author, error) {
	resp, err := c.Get(ctx, c.endpoints.AuthorsByBook(idBook))
	if err != nil {
		return nil, fmt.Errorf("listing authors for book %d: %w", idBook, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing authors for book %d: unexpected status code: %d", idBook, resp.StatusCode)
	}

	var authors []Author
	if err := resp.JSON(&authors); err != nil {
		return nil, fmt.Errorf("unmarshaling authors response: %w", err)
	}

	return authors, nil
}

// CreateAuthor creates an author from an untyped payload.
func (c *APIClient) CreateAuthor(ctx context.Context, payload map[string]any) (*Author, error) {
	resp, err := c.Post(ctx, c.endpoints.Authors(), payload)
	if err != nil {
		return nil, fmt.Errorf("creating author: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("creating author: unexpected status code: %d, body: %s", resp.StatusCode, resp.Text())
	}

	author := &Author{}
	if err := resp.JSON(author); err != nil {
		return nil, fmt.Errorf("unmarshaling author response: %w", err)
	}

	return author, nil
}

// UpdateAuthor replaces an author and returns the decoded result.
func (c *APIClient) UpdateAuthor(ctx context.Context, id int, payload map[string]any) (*Author, error) {
	resp, err := c.Put(ctx, c.endpoints.Author(id), payload)
	if err != nil {
		return nil, fmt.Errorf("updating author: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("updating author: unexpected status code: %d, body: %s", resp.StatusCode, resp.Text())
	}

	author := &Author{}
	if err := resp.JSON(author); err != nil {
		return nil, fmt.Errorf("unmarshaling author response: %w", err)
	}

	return author, nil
}

// DeleteAuthor deletes an author, tolerating 404 for idempotency.
func (c *APIClient) DeleteAuthor(ctx context.Context, id int) error {
	resp, err := c.Delete(ctx, c.endpoints.Author(id))
	if err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return fmt.Errorf("deleting author %d: unexpected status code: %d, body: %s", id, resp.StatusCode, resp.Text())
	}
}

// ListCoverPhotosByBook lists the cover photos referencing a book.
func (c *APIClient) ListCoverPhotosByBook(ctx context.Context, idBook int) ([]CoverPhoto, error) {
	resp, err := c.Get(ctx, c.endpoints.CoverPhotosByBook(idBook))
	if err != nil {
		return nil, fmt.Errorf("listing cover photos for book %d: %w", idBook, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing cover photos for book %d: unexpected status code: %d", idBook, resp.StatusCode)
	}

	var photos []CoverPhoto
	if err := resp.JSON(&photos); err != nil {
		return nil, fmt.Errorf("unmarshaling cover photos response: %w", err)
	}

	return photos, nil
}

// GetCoverPhoto retrieves a specific cover photo.
func (c *APIClient) GetCoverPhoto(ctx context.Context, id int) (*CoverPhoto, error) {
	resp, err := c.Get(ctx, c.endpoints.CoverPhoto(id))
	if err != nil {
		return nil, fmt.Errorf("getting cover photo: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		photo := &CoverPhoto{}
		if err := resp.JSON(photo); err != nil {
			return nil, fmt.Errorf("unmarshaling cover photo response: %w", err)
		}

		return photo, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("cover photo %d not found (status: %d)", id, resp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, resp.Text())
	}
}

// CreateCoverPhoto creates a cover photo from an untyped payload.
func (c *APIClient) CreateCoverPhoto(ctx context.Context, payload map[string]any) (*CoverPhoto, error) {
	resp, err := c.Post(ctx, c.endpoints.CoverPhotos(), payload)
	if err != nil {
		return nil, fmt.Errorf("creating cover photo: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("creating cover photo: unexpected status code: %d, body: %s", resp.StatusCode, resp.Text())
	}

	photo := &CoverPhoto{}
	if err := resp.JSON(photo); err != nil {
		return nil, fmt.Errorf("unmarshaling cover photo response: %w", err)
	}

	return photo, nil
}

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

// Package api provides black-box test utilities for the bookstore REST API.
//
// # Separate Client Implementation
//
// This package maintains its own HTTP client (APIClient) rather than a
// generated client from the service's OpenAPI document. An independent
// implementation serves as triangulation on the API contract: the published
// document is still consulted, but only as a validation oracle (see
// SchemaValidator), never as the source of the requests themselves. The
// client also carries test-specific features:
//   - W3C trace context propagation for request correlation
//   - request/response logging through GinkgoWriter, toggled by config
//   - direct access to status codes and raw bodies for tolerant assertions
//
// # ID Range Partitioning
//
// The remote server is shared, persistent state the suite cannot lock or
// transact against, and entities created by scenarios are not reliably
// removed. The suite therefore partitions the ID space: seeded entities are
// drawn from the low ranges the deployment ships with, and created entities
// take IDs from a disjoint high range. This is an invariant of the suite,
// not of the API, and it is what allows scenarios to run under parallel
// workers without interference.
package api

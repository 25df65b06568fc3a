//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/orchard-qa/bookstore-conformance/test/api"
)

var _ = Describe("Authors Validation", func() {
	Context("When submitting type-mismatched fields", func() {
		Describe("Given deliberately invalid field types", func() {
			It("should reject a non-integer book reference", func() {
				payload := api.NewAuthorPayload(gen).WithField("idBook", "not-a-book").Build()

				resp, err := client.Post(ctx, client.Endpoints().Authors(), payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusUnprocessableEntity))
			})

			It("should reject a non-string first name", func() {
				payload := api.NewAuthorPayload(gen).WithField("firstName", []string{"not", "a", "string"}).Build()

				resp, err := client.Post(ctx, client.Endpoints().Authors(), payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusUnprocessableEntity))
			})

			It("should reject a non-integer ID", func() {
				payload := api.NewAuthorPayload(gen).WithField("id", 3.14).Build()

				resp, err := client.Post(ctx, client.Endpoints().Authors(), payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusUnprocessableEntity))
			})
		})

		Describe("Given nullable fields omitted", func() {
			It("should accept a payload without names", func() {
				payload := api.NewAuthorPayload(gen).
					Without("firstName").
					Without("lastName").
					Build()

				resp, err := client.Post(ctx, client.Endpoints().Authors(), payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusCreated))
			})
		})
	})

	Context("When submitting boundary string lengths", func() {
		Describe("Given a last name at the conventional 255-character limit", func() {
			It("should accept the name and return it unchanged", func() {
				name := strings.Repeat("N", 255)
				payload := api.NewAuthorPayload(gen).WithLastName(name).Build()

				resp, err := client.Post(ctx, client.Endpoints().Authors(), payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusCreated))

				var created api.Author
				Expect(resp.JSON(&created)).To(Succeed())
				Expect(created.LastName).NotTo(BeNil())
				Expect(*created.LastName).To(HaveLen(255))
			})
		})
	})

	Context("When submitting malformed requests", func() {
		Describe("Given broken JSON", func() {
			It("should reject the request with 400", func() {
				resp, err := client.PostRaw(ctx, client.Endpoints().Authors(), "application/json", []byte(`[{"id":`))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("When requesting boundary identifiers", func() {
		Describe("Given a negative ID", func() {
			It("should reject the request", func() {
				// Observed both 400 and 404 from the reference deployment;
				// record what this run saw.
				resp, err := client.Get(ctx, client.Endpoints().Author(-1))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusNotFound))
				GinkgoWriter.Printf("GET author -1 returned %d\n", resp.StatusCode)
			})
		})
	})
})

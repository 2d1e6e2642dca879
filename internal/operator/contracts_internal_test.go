/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package operator

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// newContractsStub fakes the two contracts service endpoints involved in the
// resource token exchange.
func newContractsStub(contractToken string, machineToken string, resourceToken string) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/context/machine-token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+contractToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"machineToken":"` + machineToken + `"}`))
	})
	mux.HandleFunc("/v1/resources/livepatch-onprem/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+machineToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"resourceToken":"` + resourceToken + `"}`))
	})
	return httptest.NewServer(mux)
}

var _ = Describe("testing: contracts.go", func() {
	Context("testing: FetchResourceToken()", func() {
		It("should exchange a contract token for a resource token", func() {
			server := newContractsStub("ct", "mt", "rt")
			defer server.Close()

			token, err := NewContractsClient(server.URL).FetchResourceToken(context.Background(), "ct")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("rt"))
		})

		It("should fail with a wrong contract token", func() {
			server := newContractsStub("ct", "mt", "rt")
			defer server.Close()

			_, err := NewContractsClient(server.URL).FetchResourceToken(context.Background(), "wrong")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("status 401"))
		})

		It("should fail if the service returns an empty resource token", func() {
			server := newContractsStub("ct", "mt", "")
			defer server.Close()

			_, err := NewContractsClient(server.URL).FetchResourceToken(context.Background(), "ct")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("empty resource token"))
		})

		It("should default to the hosted contracts service", func() {
			client := NewContractsClient("")
			Expect(client.baseURL).To(Equal("https://contracts.canonical.com"))
		})
	})
})

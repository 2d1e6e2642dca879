/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package operator

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	apitypes "k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gaborbk/livepatch-k8s-operator/api/v1alpha1"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/component"
)

var _ = Describe("testing: hooks.go", func() {
	var server *v1alpha1.LivepatchServer
	var clnt client.Client

	BeforeEach(func() {
		server = newTestServer()
		server.Spec.Contracts = &v1alpha1.ContractsSpec{
			ContractTokenSecret: &component.SecretKeyReference{Name: "contract-token"},
		}
	})

	newClient := func(objects ...client.Object) client.Client {
		return fake.NewClientBuilder().WithScheme(newTestScheme()).WithObjects(objects...).Build()
	}

	Context("testing: FetchResourceToken()", func() {
		It("should fetch the resource token and store it in an owned secret", func() {
			stub := newContractsStub("ct", "mt", "rt")
			defer stub.Close()
			server.Spec.Contracts.URL = stub.URL
			contractTokenSecret := newSecret("contract-token", map[string]string{"token": "ct"})
			dbURISecret := newSecret("db-uri", map[string]string{"uri": "postgresql://lp:pw@db:5432/livepatch-server"})
			clnt = newClient(contractTokenSecret, dbURISecret)
			Expect(component.ResolveReferences(context.Background(), clnt, server)).To(Succeed())

			Expect(FetchResourceToken(context.Background(), clnt, server)).To(Succeed())

			secret := &corev1.Secret{}
			Expect(clnt.Get(context.Background(), apitypes.NamespacedName{Namespace: "livepatch", Name: "server-resource-token"}, secret)).To(Succeed())
			Expect(secret.Data).To(HaveKeyWithValue("token", []byte("rt")))
			Expect(secret.OwnerReferences).To(HaveLen(1))
			Expect(secret.OwnerReferences[0].Kind).To(Equal("LivepatchServer"))
		})

		It("should not fetch again if the secret already exists", func() {
			// no stub running; a fetch attempt would fail
			server.Spec.Contracts.URL = "http://127.0.0.1:1"
			contractTokenSecret := newSecret("contract-token", map[string]string{"token": "ct"})
			dbURISecret := newSecret("db-uri", map[string]string{"uri": "postgresql://lp:pw@db:5432/livepatch-server"})
			existing := newSecret("server-resource-token", map[string]string{"token": "rt"})
			clnt = newClient(contractTokenSecret, dbURISecret, existing)
			Expect(component.ResolveReferences(context.Background(), clnt, server)).To(Succeed())

			Expect(FetchResourceToken(context.Background(), clnt, server)).To(Succeed())
		})

		It("should report a retriable error if the exchange fails", func() {
			server.Spec.Contracts.URL = "http://127.0.0.1:1"
			contractTokenSecret := newSecret("contract-token", map[string]string{"token": "ct"})
			dbURISecret := newSecret("db-uri", map[string]string{"uri": "postgresql://lp:pw@db:5432/livepatch-server"})
			clnt = newClient(contractTokenSecret, dbURISecret)
			Expect(component.ResolveReferences(context.Background(), clnt, server)).To(Succeed())

			err := FetchResourceToken(context.Background(), clnt, server)
			expectRetriable(err)
		})

		It("should do nothing without a contract token", func() {
			server.Spec.Contracts = nil
			clnt = newClient()

			Expect(FetchResourceToken(context.Background(), clnt, server)).To(Succeed())
		})

		It("should do nothing in an air-gapped setup", func() {
			server.Spec.Contracts.Airgapped = &v1alpha1.AirgappedSpec{Hostname: "contracts.internal"}
			clnt = newClient()

			Expect(FetchResourceToken(context.Background(), clnt, server)).To(Succeed())
		})

		It("should do nothing if an explicit sync token is configured", func() {
			server.Spec.PatchSync = &v1alpha1.PatchSyncSpec{
				TokenSecret: &component.SecretKeyReference{Name: "sync-token", Key: "token"},
			}
			clnt = newClient()

			Expect(FetchResourceToken(context.Background(), clnt, server)).To(Succeed())
		})
	})
})

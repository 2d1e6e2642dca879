/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package reconciler

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("testing: util.go", func() {
	Context("testing: sha256hex()", func() {
		It("should generate correct sha256 digest (as hex)", func() {
			Expect(sha256hex([]byte("gR4nDm4StEr7Liv3P4tchS3rv3rX9Qz"))).To(Equal("fd573febbef2243f835529515330eaa539ca971fc37e5ecd8f68d6a84149f740"))
		})
	})

	Context("testing: sha256base32()", func() {
		It("should generate correct sha256 digest (as base32)", func() {
			Expect(sha256base32([]byte("gR4nDm4StEr7Liv3P4tchS3rv3rX9Qz"))).To(Equal("7vlt72566isd7a2vffivgmhkuu44vfy7yn7f5tmpndlkqqkj65aa"))
		})
	})

	Context("testing: calculateObjectDigest()", func() {
		var object *corev1.ConfigMap

		BeforeEach(func() {
			object = &corev1.ConfigMap{
				TypeMeta: metav1.TypeMeta{
					APIVersion: "v1",
					Kind:       "ConfigMap",
				},
				ObjectMeta: metav1.ObjectMeta{
					Namespace:       "default",
					Name:            "test",
					ResourceVersion: "123456789",
					Generation:      123,
					ManagedFields: []metav1.ManagedFieldsEntry{
						{
							Manager:    "kubectl-create",
							Operation:  "Update",
							FieldsType: "FieldsV1",
							FieldsV1:   nil,
						},
					},
				},
				Data: map[string]string{
					"key": "value",
				},
			}
		})

		It("should not modify the object", func() {
			savedObject := object.DeepCopy()
			_, err := calculateObjectDigest(object, 1, ReconcilePolicyOnObjectChange)
			Expect(err).NotTo(HaveOccurred())
			Expect(object).To(Equal(savedObject))
		})

		It("should ignore volatile metadata", func() {
			digest, err := calculateObjectDigest(object, 1, ReconcilePolicyOnObjectChange)
			Expect(err).NotTo(HaveOccurred())
			object.ResourceVersion = "987654321"
			object.Generation = 456
			object.ManagedFields = nil
			newDigest, err := calculateObjectDigest(object, 1, ReconcilePolicyOnObjectChange)
			Expect(err).NotTo(HaveOccurred())
			Expect(newDigest).To(Equal(digest))
		})

		It("should change if the object content changes", func() {
			digest, err := calculateObjectDigest(object, 1, ReconcilePolicyOnObjectChange)
			Expect(err).NotTo(HaveOccurred())
			object.Data["key"] = "other-value"
			newDigest, err := calculateObjectDigest(object, 1, ReconcilePolicyOnObjectChange)
			Expect(err).NotTo(HaveOccurred())
			Expect(newDigest).NotTo(Equal(digest))
		})

		It("should ignore the component revision with policy on-object-change", func() {
			digest, err := calculateObjectDigest(object, 1, ReconcilePolicyOnObjectChange)
			Expect(err).NotTo(HaveOccurred())
			newDigest, err := calculateObjectDigest(object, 2, ReconcilePolicyOnObjectChange)
			Expect(err).NotTo(HaveOccurred())
			Expect(newDigest).To(Equal(digest))
		})

		It("should incorporate the component revision with policy on-object-or-component-change", func() {
			digest, err := calculateObjectDigest(object, 1, ReconcilePolicyOnObjectOrComponentChange)
			Expect(err).NotTo(HaveOccurred())
			Expect(digest).To(HaveSuffix("@1"))
			newDigest, err := calculateObjectDigest(object, 2, ReconcilePolicyOnObjectOrComponentChange)
			Expect(err).NotTo(HaveOccurred())
			Expect(newDigest).NotTo(Equal(digest))
		})

		It("should return a constant digest with policy once", func() {
			digest, err := calculateObjectDigest(object, 1, ReconcilePolicyOnce)
			Expect(err).NotTo(HaveOccurred())
			Expect(digest).To(Equal("__once__"))
		})
	})

	Context("testing: findMissingNamespaces()", func() {
		It("should report namespaces not contained in the object list", func() {
			namespace := &corev1.Namespace{
				TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Namespace"},
				ObjectMeta: metav1.ObjectMeta{Name: "livepatch"},
			}
			configMap := &corev1.ConfigMap{
				TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
				ObjectMeta: metav1.ObjectMeta{Namespace: "livepatch", Name: "livepatch-config"},
			}
			secret := &corev1.Secret{
				TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
				ObjectMeta: metav1.ObjectMeta{Namespace: "other", Name: "livepatch-postgres"},
			}
			Expect(findMissingNamespaces([]client.Object{namespace, configMap, secret})).To(Equal([]string{"other"}))
		})
	})
})

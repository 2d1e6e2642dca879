/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package reconciler

import (
	"fmt"
	"math"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

const reconcilerName = "livepatch-operator.gaborbk.dev"

func gvkFor(kind string) schema.GroupVersionKind {
	switch kind {
	case "Deployment":
		return schema.GroupVersionKind{Group: "apps", Version: "v1", Kind: kind}
	default:
		return schema.GroupVersionKind{Version: "v1", Kind: kind}
	}
}

var _ = Describe("testing: reconciler.go", func() {
	Context("testing: get*Policy()", func() {
		DescribeTable("testing: getAdoptionPolicy()",
			func(targetPolicy AdoptionPolicy, annotatedPolicy string, expectedPolicy AdoptionPolicy) {
				reconciler := NewReconciler(reconcilerName, nil, ReconcilerOptions{AdoptionPolicy: &targetPolicy})
				object := &metav1.PartialObjectMetadata{}
				if annotatedPolicy != "" {
					object.Annotations = map[string]string{reconcilerName + "/" + types.AnnotationKeySuffixAdoptionPolicy: annotatedPolicy}
				}
				resultingPolicy, err := reconciler.getAdoptionPolicy(object)
				Expect(err).NotTo(HaveOccurred())
				Expect(resultingPolicy).To(Equal(expectedPolicy))
			},
			Entry(nil, AdoptionPolicyNever, "", AdoptionPolicyNever),
			Entry(nil, AdoptionPolicyNever, types.AdoptionPolicyNever, AdoptionPolicyNever),
			Entry(nil, AdoptionPolicyNever, types.AdoptionPolicyIfUnowned, AdoptionPolicyIfUnowned),
			Entry(nil, AdoptionPolicyNever, types.AdoptionPolicyAlways, AdoptionPolicyAlways),
			Entry(nil, AdoptionPolicyIfUnowned, "", AdoptionPolicyIfUnowned),
			Entry(nil, AdoptionPolicyIfUnowned, types.AdoptionPolicyNever, AdoptionPolicyNever),
			Entry(nil, AdoptionPolicyIfUnowned, types.AdoptionPolicyAlways, AdoptionPolicyAlways),
			Entry(nil, AdoptionPolicyAlways, "", AdoptionPolicyAlways),
			Entry(nil, AdoptionPolicyAlways, types.AdoptionPolicyNever, AdoptionPolicyNever),
			Entry(nil, AdoptionPolicyAlways, types.AdoptionPolicyIfUnowned, AdoptionPolicyIfUnowned),
		)

		DescribeTable("testing: getReconcilePolicy()",
			func(annotatedPolicy string, expectedPolicy ReconcilePolicy) {
				reconciler := NewReconciler(reconcilerName, nil, ReconcilerOptions{})
				object := &metav1.PartialObjectMetadata{}
				if annotatedPolicy != "" {
					object.Annotations = map[string]string{reconcilerName + "/" + types.AnnotationKeySuffixReconcilePolicy: annotatedPolicy}
				}
				resultingPolicy, err := reconciler.getReconcilePolicy(object)
				Expect(err).NotTo(HaveOccurred())
				Expect(resultingPolicy).To(Equal(expectedPolicy))
			},
			Entry(nil, "", ReconcilePolicyOnObjectChange),
			Entry(nil, types.ReconcilePolicyOnObjectChange, ReconcilePolicyOnObjectChange),
			Entry(nil, types.ReconcilePolicyOnObjectOrComponentChange, ReconcilePolicyOnObjectOrComponentChange),
			Entry(nil, types.ReconcilePolicyOnce, ReconcilePolicyOnce),
		)

		DescribeTable("testing: getUpdatePolicy()",
			func(targetPolicy UpdatePolicy, annotatedPolicy string, expectedPolicy UpdatePolicy) {
				reconciler := NewReconciler(reconcilerName, nil, ReconcilerOptions{UpdatePolicy: &targetPolicy})
				object := &metav1.PartialObjectMetadata{}
				if annotatedPolicy != "" {
					object.Annotations = map[string]string{reconcilerName + "/" + types.AnnotationKeySuffixUpdatePolicy: annotatedPolicy}
				}
				resultingPolicy, err := reconciler.getUpdatePolicy(object)
				Expect(err).NotTo(HaveOccurred())
				Expect(resultingPolicy).To(Equal(expectedPolicy))
			},
			Entry(nil, UpdatePolicyRecreate, "", UpdatePolicyRecreate),
			Entry(nil, UpdatePolicyRecreate, types.UpdatePolicyReplace, UpdatePolicyReplace),
			Entry(nil, UpdatePolicyReplace, "", UpdatePolicyReplace),
			Entry(nil, UpdatePolicyReplace, types.UpdatePolicyRecreate, UpdatePolicyRecreate),
			Entry(nil, UpdatePolicyReplace, types.UpdatePolicySsaMerge, UpdatePolicySsaMerge),
			Entry(nil, UpdatePolicySsaMerge, "", UpdatePolicySsaMerge),
			Entry(nil, UpdatePolicySsaMerge, types.UpdatePolicyReplace, UpdatePolicyReplace),
		)

		DescribeTable("testing: getDeletePolicy()",
			func(targetPolicy DeletePolicy, annotatedPolicy string, expectedPolicy DeletePolicy) {
				reconciler := NewReconciler(reconcilerName, nil, ReconcilerOptions{DeletePolicy: &targetPolicy})
				object := &metav1.PartialObjectMetadata{}
				if annotatedPolicy != "" {
					object.Annotations = map[string]string{reconcilerName + "/" + types.AnnotationKeySuffixDeletePolicy: annotatedPolicy}
				}
				resultingPolicy, err := reconciler.getDeletePolicy(object)
				Expect(err).NotTo(HaveOccurred())
				Expect(resultingPolicy).To(Equal(expectedPolicy))
			},
			Entry(nil, DeletePolicyDelete, "", DeletePolicyDelete),
			Entry(nil, DeletePolicyDelete, types.DeletePolicyOrphan, DeletePolicyOrphan),
			Entry(nil, DeletePolicyOrphan, "", DeletePolicyOrphan),
			Entry(nil, DeletePolicyOrphan, types.DeletePolicyDelete, DeletePolicyDelete),
		)

		It("should reject an invalid policy annotation", func() {
			reconciler := NewReconciler(reconcilerName, nil, ReconcilerOptions{})
			object := &metav1.PartialObjectMetadata{
				ObjectMeta: metav1.ObjectMeta{
					Annotations: map[string]string{reconcilerName + "/" + types.AnnotationKeySuffixUpdatePolicy: "something-else"},
				},
			}
			_, err := reconciler.getUpdatePolicy(object)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("testing: get*Order()", func() {
		var reconciler *Reconciler

		BeforeEach(func() {
			reconciler = NewReconciler(reconcilerName, nil, ReconcilerOptions{})
		})

		DescribeTable("testing: getApplyOrder()",
			func(annotatedOrder string, expectError bool, expectedOrder int) {
				object := &metav1.PartialObjectMetadata{}
				if annotatedOrder != "" {
					object.Annotations = map[string]string{reconcilerName + "/" + types.AnnotationKeySuffixApplyOrder: annotatedOrder}
				}
				order, err := reconciler.getApplyOrder(object)
				if expectError {
					Expect(err).To(HaveOccurred())
				} else {
					Expect(err).NotTo(HaveOccurred())
					Expect(order).To(Equal(expectedOrder))
				}
			},
			Entry(nil, "", false, 0),
			Entry(nil, "0", false, 0),
			Entry(nil, "-1", false, -1),
			Entry(nil, "1", false, 1),
			Entry(nil, fmt.Sprintf("%d", math.MinInt16), false, math.MinInt16),
			Entry(nil, fmt.Sprintf("%d", math.MaxInt16), false, math.MaxInt16),
			Entry(nil, fmt.Sprintf("%d", math.MinInt16-1), true, 0),
			Entry(nil, fmt.Sprintf("%d", math.MaxInt16+1), true, 0),
			Entry(nil, "not-a-number", true, 0),
		)

		DescribeTable("testing: getDeleteOrder()",
			func(annotatedOrder string, expectError bool, expectedOrder int) {
				object := &metav1.PartialObjectMetadata{}
				if annotatedOrder != "" {
					object.Annotations = map[string]string{reconcilerName + "/" + types.AnnotationKeySuffixDeleteOrder: annotatedOrder}
				}
				order, err := reconciler.getDeleteOrder(object)
				if expectError {
					Expect(err).To(HaveOccurred())
				} else {
					Expect(err).NotTo(HaveOccurred())
					Expect(order).To(Equal(expectedOrder))
				}
			},
			Entry(nil, "", false, 0),
			Entry(nil, "0", false, 0),
			Entry(nil, "-1", false, -1),
			Entry(nil, "1", false, 1),
			Entry(nil, fmt.Sprintf("%d", math.MinInt16), false, math.MinInt16),
			Entry(nil, fmt.Sprintf("%d", math.MaxInt16), false, math.MaxInt16),
			Entry(nil, fmt.Sprintf("%d", math.MinInt16-1), true, 0),
			Entry(nil, fmt.Sprintf("%d", math.MaxInt16+1), true, 0),
			Entry(nil, "not-a-number", true, 0),
		)
	})

	Context("testing: sortObjectsForApply()", func() {
		It("should order namespaces and configuration before workloads", func() {
			makeObject := func(kind string, name string) client.Object {
				object := &metav1.PartialObjectMetadata{}
				object.SetGroupVersionKind(gvkFor(kind))
				object.SetName(name)
				return object
			}
			objects := []client.Object{
				makeObject("Deployment", "livepatch-server"),
				makeObject("ConfigMap", "livepatch-config"),
				makeObject("Namespace", "livepatch"),
				makeObject("ServiceAccount", "livepatch"),
			}
			sorted := sortObjectsForApply(objects, func(object client.Object) int { return 0 })
			Expect(sorted[0].GetObjectKind().GroupVersionKind().Kind).To(Equal("Namespace"))
			Expect(sorted[3].GetObjectKind().GroupVersionKind().Kind).To(Equal("Deployment"))
		})

		It("should honor the apply order before kind priorities", func() {
			makeObject := func(kind string, name string, order int) client.Object {
				object := &metav1.PartialObjectMetadata{}
				object.SetGroupVersionKind(gvkFor(kind))
				object.SetName(name)
				object.SetAnnotations(map[string]string{"order": fmt.Sprintf("%d", order)})
				return object
			}
			orderOf := func(object client.Object) int {
				order := 0
				fmt.Sscanf(object.GetAnnotations()["order"], "%d", &order)
				return order
			}
			objects := []client.Object{
				makeObject("ConfigMap", "late", 1),
				makeObject("Deployment", "early", 0),
			}
			sorted := sortObjectsForApply(objects, orderOf)
			Expect(sorted[0].GetName()).To(Equal("early"))
			Expect(sorted[1].GetName()).To(Equal("late"))
		})
	})

	Context("testing: sortObjectsForDelete()", func() {
		It("should delete workloads before configuration and namespaces", func() {
			inventory := []*InventoryItem{
				{TypeVersionInfo: TypeVersionInfo{Group: "", Version: "v1", Kind: "Namespace"}, NameInfo: NameInfo{Name: "livepatch"}},
				{TypeVersionInfo: TypeVersionInfo{Group: "", Version: "v1", Kind: "ConfigMap"}, NameInfo: NameInfo{Namespace: "livepatch", Name: "livepatch-config"}},
				{TypeVersionInfo: TypeVersionInfo{Group: "apps", Version: "v1", Kind: "Deployment"}, NameInfo: NameInfo{Namespace: "livepatch", Name: "livepatch-server"}},
			}
			sorted := sortObjectsForDelete(inventory)
			Expect(sorted[0].Kind).To(Equal("Deployment"))
			Expect(sorted[1].Kind).To(Equal("ConfigMap"))
			Expect(sorted[2].Kind).To(Equal("Namespace"))
		})
	})
})

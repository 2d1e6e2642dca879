/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package component

import (
	"encoding/json"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

type testComponentSpec struct {
	PlacementSpec `json:",inline"`
	Token         *SecretKeyReference `json:"token,omitempty"`
	Replicas      int                 `json:"replicas,omitempty"`
}

func (s *testComponentSpec) ToUnstructured() map[string]any {
	raw, err := json.Marshal(s)
	Expect(err).NotTo(HaveOccurred())
	result := make(map[string]any)
	Expect(json.Unmarshal(raw, &result)).To(Succeed())
	return result
}

type testComponent struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              testComponentSpec `json:"spec,omitempty"`
	Status            Status            `json:"status,omitempty"`
}

var _ Component = &testComponent{}

func (c *testComponent) GetSpec() types.Unstructurable {
	return &c.Spec
}

func (c *testComponent) GetStatus() *Status {
	return &c.Status
}

func (c *testComponent) DeepCopyObject() runtime.Object {
	if c == nil {
		return nil
	}
	out := &testComponent{TypeMeta: c.TypeMeta, Spec: c.Spec}
	c.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	c.Status.DeepCopyInto(&out.Status)
	return out
}

var _ = Describe("testing: component.go", func() {
	var component *testComponent

	BeforeEach(func() {
		component = &testComponent{
			ObjectMeta: metav1.ObjectMeta{
				Namespace: "livepatch",
				Name:      "server",
			},
			Spec: testComponentSpec{
				Replicas: 2,
			},
		}
	})

	Context("testing: newComponent()", func() {
		It("should instantiate the component type", func() {
			c := newComponent[*testComponent]()
			Expect(c).NotTo(BeNil())
		})
	})

	Context("testing: getSpec()", func() {
		It("should return a pointer to the component's spec", func() {
			spec := getSpec(component)
			Expect(spec).To(BeIdenticalTo(&component.Spec))
		})
	})

	Context("testing: assert*Configuration()", func() {
		It("should detect the placement configuration implemented by the spec", func() {
			component.Spec.Namespace = "livepatch-system"
			placementConfiguration, ok := assertPlacementConfiguration(component)
			Expect(ok).To(BeTrue())
			Expect(placementConfiguration.GetDeploymentNamespace()).To(Equal("livepatch-system"))
			Expect(placementConfiguration.GetDeploymentName()).To(BeEmpty())
		})

		It("should report missing requeue and retry configurations", func() {
			_, ok := assertRequeueConfiguration(component)
			Expect(ok).To(BeFalse())
			_, ok = assertRetryConfiguration(component)
			Expect(ok).To(BeFalse())
		})
	})

	Context("testing: calculateComponentDigest()", func() {
		It("should be stable across invocations", func() {
			Expect(calculateComponentDigest(component)).To(Equal(calculateComponentDigest(component)))
		})

		It("should change if the spec changes", func() {
			digest := calculateComponentDigest(component)
			component.Spec.Replicas = 3
			Expect(calculateComponentDigest(component)).NotTo(Equal(digest))
		})

		It("should change if the annotations change", func() {
			digest := calculateComponentDigest(component)
			component.Annotations = map[string]string{"livepatch-operator.gaborbk.dev/restart": "now"}
			Expect(calculateComponentDigest(component)).NotTo(Equal(digest))
		})

		It("should change if the content of a resolved reference changes", func() {
			component.Spec.Token = &SecretKeyReference{Name: "livepatch-token", Key: "token"}
			component.Spec.Token.value = []byte("first")
			component.Spec.Token.loaded = true
			digest := calculateComponentDigest(component)
			component.Spec.Token.value = []byte("second")
			Expect(calculateComponentDigest(component)).NotTo(Equal(digest))
		})
	})

	Context("testing: Status state accessors", func() {
		It("should maintain the ready condition along with the state", func() {
			status := component.GetStatus()

			status.SetState(StateProcessing, "Processing", "Dependent resources are being applied")
			state, reason, message := status.GetState()
			Expect(state).To(Equal(StateProcessing))
			Expect(reason).To(Equal("Processing"))
			Expect(message).To(Equal("Dependent resources are being applied"))
			Expect(status.getCondition(ConditionTypeReady).Status).To(Equal(ConditionUnknown))
			Expect(status.IsReady()).To(BeFalse())

			status.SetState(StateReady, "Ready", "Dependent resources successfully reconciled")
			Expect(status.getCondition(ConditionTypeReady).Status).To(Equal(ConditionTrue))
			Expect(status.IsReady()).To(BeTrue())

			status.SetState(StateError, "Error", "boom")
			Expect(status.getCondition(ConditionTypeReady).Status).To(Equal(ConditionFalse))
			Expect(status.Conditions).To(HaveLen(1))
		})
	})
})

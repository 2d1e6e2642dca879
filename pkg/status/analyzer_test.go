/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package status_test

import (
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/status"
)

var _ = Describe("testing: analyzer.go", func() {
	var analyzer status.StatusAnalyzer

	BeforeEach(func() {
		analyzer = status.NewStatusAnalyzer("test")
	})

	DescribeTable("testing: ComputeStatus()",
		func(generation int, observedGeneration int, conditions []metav1.Condition, hintObservedGeneration bool, hintReadyCondition bool, expectedStatus status.Status) {
			type ObjectStatus struct {
				ObservedGeneration int64              `json:"observedGeneration,omitempty"`
				Conditions         []metav1.Condition `json:"conditions,omitempty"`
			}
			type Object struct {
				metav1.ObjectMeta `json:"metadata,omitempty"`
				Status            ObjectStatus `json:"status"`
			}

			obj := Object{
				ObjectMeta: metav1.ObjectMeta{
					Generation: int64(generation),
				},
				Status: ObjectStatus{
					ObservedGeneration: int64(observedGeneration),
					Conditions:         conditions,
				},
			}
			var hints []string
			if hintObservedGeneration {
				hints = append(hints, "has-observed-generation")
			}
			if hintReadyCondition {
				hints = append(hints, "has-ready-condition")
			}
			if len(hints) > 0 {
				obj.Annotations = map[string]string{
					"test/status-hint": strings.Join(hints, ","),
				}
			}
			unstructuredContent, err := runtime.DefaultUnstructuredConverter.ToUnstructured(&obj)
			Expect(err).NotTo(HaveOccurred())
			unstructuredObj := &unstructured.Unstructured{Object: unstructuredContent}

			computedStatus, err := analyzer.ComputeStatus(unstructuredObj)
			Expect(err).NotTo(HaveOccurred())

			Expect(computedStatus).To(Equal(expectedStatus))
		},

		// no conditions, without/with has-observed-generation hint
		Entry(nil, 3, 0, nil, false, false, status.CurrentStatus),
		Entry(nil, 3, 1, nil, false, false, status.InProgressStatus),
		Entry(nil, 3, 3, nil, false, false, status.CurrentStatus),
		Entry(nil, 3, 0, nil, true, false, status.InProgressStatus),
		Entry(nil, 3, 1, nil, true, false, status.InProgressStatus),
		Entry(nil, 3, 3, nil, true, false, status.CurrentStatus),

		// ready condition unknown
		Entry(nil, 3, 3, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionUnknown}}, false, false, status.InProgressStatus),
		Entry(nil, 3, 3, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionUnknown}}, true, false, status.InProgressStatus),

		// ready condition false
		Entry(nil, 3, 3, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionFalse}}, false, false, status.InProgressStatus),
		Entry(nil, 3, 3, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionFalse}}, true, false, status.InProgressStatus),

		// ready condition true
		Entry(nil, 3, 0, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionTrue}}, false, false, status.CurrentStatus),
		Entry(nil, 3, 1, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionTrue}}, false, false, status.InProgressStatus),
		Entry(nil, 3, 3, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionTrue}}, false, false, status.CurrentStatus),
		Entry(nil, 3, 0, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionTrue}}, true, false, status.InProgressStatus),
		Entry(nil, 3, 3, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionTrue}}, true, false, status.CurrentStatus),

		// no conditions, has-ready-condition hint
		Entry(nil, 3, 3, nil, false, true, status.InProgressStatus),
		Entry(nil, 3, 3, nil, true, true, status.InProgressStatus),

		// ready condition with observed generation of its own
		Entry(nil, 3, 3, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionTrue, ObservedGeneration: 1}}, false, false, status.CurrentStatus),
		Entry(nil, 3, 3, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionTrue, ObservedGeneration: 3}}, true, false, status.CurrentStatus),
		Entry(nil, 3, 3, []metav1.Condition{{Type: "Ready", Status: metav1.ConditionFalse, ObservedGeneration: 3}}, true, false, status.InProgressStatus),
	)

	DescribeTable("testing: ComputeStatus() for jobs",
		func(conditions []map[string]any, expectedStatus status.Status) {
			object := &unstructured.Unstructured{
				Object: map[string]any{
					"apiVersion": "batch/v1",
					"kind":       "Job",
					"metadata": map[string]any{
						"name":       "schema-upgrade",
						"generation": int64(1),
					},
					"status": map[string]any{
						"startTime": "2026-01-01T00:00:00Z",
					},
				},
			}
			if len(conditions) > 0 {
				conds := make([]any, 0, len(conditions))
				for _, c := range conditions {
					conds = append(conds, c)
				}
				Expect(unstructured.SetNestedSlice(object.Object, conds, "status", "conditions")).To(Succeed())
			}

			computedStatus, err := analyzer.ComputeStatus(object)
			Expect(err).NotTo(HaveOccurred())

			Expect(computedStatus).To(Equal(expectedStatus))
		},

		Entry("running job is in progress", nil, status.InProgressStatus),
		Entry("completed job is current", []map[string]any{{"type": "Complete", "status": "True"}}, status.CurrentStatus),
		Entry("failed job is failed", []map[string]any{{"type": "Failed", "status": "True"}}, status.FailedStatus),
	)
})

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	kstatus "sigs.k8s.io/cli-utils/pkg/kstatus/status"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

const conditionTypeReady = "Ready"

type statusAnalyzer struct {
	reconcilerName string
}

// NewStatusAnalyzer creates the default StatusAnalyzer implementation.
// It uses kstatus internally, with two modifications:
//   - hints about the object's status shape can be passed through the
//     '<reconcilerName>/status-hint' annotation, as a comma-separated list;
//     'has-observed-generation' enhances the status with an observed generation
//     of -1 if none is present, 'has-ready-condition' adds an 'Unknown' ready
//     condition if none is present; both make kstatus treat objects whose
//     controller did not yet report anything as in progress
//   - jobs are considered in progress until a JobComplete or JobFailed
//     condition appears; plain kstatus would consider a started job as current,
//     which would let later apply waves proceed while the job is still running.
func NewStatusAnalyzer(reconcilerName string) StatusAnalyzer {
	return &statusAnalyzer{
		reconcilerName: reconcilerName,
	}
}

func (s *statusAnalyzer) ComputeStatus(object *unstructured.Unstructured) (Status, error) {
	if hint, ok := object.GetAnnotations()[s.reconcilerName+"/"+types.AnnotationKeySuffixStatusHint]; ok {
		object = object.DeepCopy()
		for _, hint := range strings.Split(hint, ",") {
			switch strcase.ToKebab(strings.TrimSpace(hint)) {
			case types.StatusHintHasObservedGeneration:
				if err := ensureObservedGeneration(object); err != nil {
					return UnknownStatus, err
				}
			case types.StatusHintHasReadyCondition:
				if err := ensureReadyCondition(object); err != nil {
					return UnknownStatus, err
				}
			default:
				return UnknownStatus, fmt.Errorf("unknown status hint %s", hint)
			}
		}
	}

	res, err := kstatus.Compute(object)
	if err != nil {
		return UnknownStatus, err
	}
	status := Status(res.Status)

	if object.GroupVersionKind() == (schema.GroupVersionKind{Group: "batch", Version: "v1", Kind: "Job"}) && status == CurrentStatus {
		// unlike kstatus we consider a job as in progress while its pods are
		// still running, resp. did not (yet) finish
		done := false
		objc, err := kstatus.GetObjectWithConditions(object.UnstructuredContent())
		if err != nil {
			return UnknownStatus, err
		}
		for _, cond := range objc.Status.Conditions {
			if (cond.Type == string(batchv1.JobComplete) || cond.Type == string(batchv1.JobFailed)) && cond.Status == corev1.ConditionTrue {
				done = true
				break
			}
		}
		if !done {
			status = InProgressStatus
		}
	}

	return status, nil
}

func ensureObservedGeneration(object *unstructured.Unstructured) error {
	_, found, err := unstructured.NestedInt64(object.Object, "status", "observedGeneration")
	if err != nil {
		return err
	}
	if !found {
		if err := unstructured.SetNestedField(object.Object, int64(-1), "status", "observedGeneration"); err != nil {
			return err
		}
	}
	return nil
}

func ensureReadyCondition(object *unstructured.Unstructured) error {
	conditions, found, err := unstructured.NestedSlice(object.Object, "status", "conditions")
	if err != nil {
		return err
	}
	if !found {
		conditions = make([]any, 0)
	}
	for _, condition := range conditions {
		if condition, ok := condition.(map[string]any); ok {
			condType, found, err := unstructured.NestedString(condition, "type")
			if err != nil {
				return err
			}
			if found && condType == conditionTypeReady {
				return nil
			}
		}
	}
	conditions = append(conditions, map[string]any{
		"type":   conditionTypeReady,
		"status": string(corev1.ConditionUnknown),
	})
	return unstructured.SetNestedSlice(object.Object, conditions, "status", "conditions")
}

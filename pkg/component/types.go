/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package component

import (
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/reconciler"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

// Component is the central interface that custom resource types have to implement
// in order to be managed by the generic reconciler. Besides being a usual
// controller-runtime client.Object, the implementing type has to expose its
// parameterization (as passed to the resource generator) and a reference to its
// status, which the reconciler maintains.
type Component interface {
	client.Object
	// GetSpec returns the rendering parameters of the component.
	// The returned value has to implement the types.Unstructurable interface.
	GetSpec() types.Unstructurable
	// GetStatus returns a read-write reference to the status of the component,
	// resp. to the corresponding substruct if the status extends component.Status.
	GetStatus() *Status
}

// The PlacementConfiguration interface is meant to be implemented by components
// (or their spec) which allow to override the default placement of the dependent
// objects (which is the component's namespace and name).
type PlacementConfiguration interface {
	// Return target namespace for the component deployment.
	// If the returned value is not the empty string, then this is the value that
	// will be passed to Generator.Generate() as namespace, and that will be used
	// to default the namespace of namespaced dependent objects.
	GetDeploymentNamespace() string
	// Return target name for the component deployment.
	// If the returned value is not the empty string, then this is the value that
	// will be passed to Generator.Generate() as name.
	GetDeploymentName() string
}

// The RequeueConfiguration interface is meant to be implemented by components
// (or their spec) which allow to override the default requeue interval of
// 10 minutes, that is, the period after which a ready component is re-examined.
type RequeueConfiguration interface {
	// Get requeue interval. Should be greater than 1 minute. A return value of
	// zero means to use the default.
	GetRequeueInterval() time.Duration
}

// The RetryConfiguration interface is meant to be implemented by components
// (or their spec) which allow to override the default retry interval, that is,
// the period after which reconciliation of a component in a retriable error
// situation is retried (by default, the effective requeue interval).
type RetryConfiguration interface {
	// Get retry interval. Should be greater than 1 minute. A return value of
	// zero means to use the default.
	GetRetryInterval() time.Duration
}

// +kubebuilder:object:generate=true

// PlacementSpec defines the placement of the dependent objects of a component.
type PlacementSpec struct {
	// +optional
	Namespace string `json:"namespace,omitempty"`
	// +optional
	Name string `json:"name,omitempty"`
}

// +kubebuilder:object:generate=true

// RequeueSpec defines the requeue interval of a component.
type RequeueSpec struct {
	// +optional
	RequeueInterval *metav1.Duration `json:"requeueInterval,omitempty"`
}

// +kubebuilder:object:generate=true

// RetrySpec defines the retry interval of a component.
type RetrySpec struct {
	// +optional
	RetryInterval *metav1.Duration `json:"retryInterval,omitempty"`
}

// +kubebuilder:object:generate=true

// Status defines the observed state of a component.
// Custom resource types implementing the Component interface are supposed to
// inline this type into their status.
type Status struct {
	ObservedGeneration int64 `json:"observedGeneration"`
	// +optional
	AppliedGeneration int64 `json:"appliedGeneration,omitempty"`
	// +optional
	LastObservedAt *metav1.Time `json:"lastObservedAt,omitempty"`
	// +optional
	LastAppliedAt *metav1.Time `json:"lastAppliedAt,omitempty"`
	// +optional
	Conditions []Condition `json:"conditions,omitempty"`
	// +optional
	// +kubebuilder:validation:Enum=Ready;Pending;Processing;DeletionPending;Deleting;Error
	State State `json:"state,omitempty"`
	// +optional
	Inventory []*reconciler.InventoryItem `json:"inventory,omitempty"`
}

// +kubebuilder:object:generate=true

// Condition contains details of one aspect of the current state of the component.
type Condition struct {
	Type ConditionType `json:"type"`
	// +kubebuilder:validation:Enum=True;False;Unknown
	Status ConditionStatus `json:"status"`
	// +optional
	LastTransitionTime *metav1.Time `json:"lastTransitionTime,omitempty"`
	// +optional
	Reason string `json:"reason,omitempty"`
	// +optional
	Message string `json:"message,omitempty"`
}

// ConditionType is a type of a component condition.
type ConditionType string

const (
	// ConditionTypeReady represents the readiness of the component as a whole.
	ConditionTypeReady ConditionType = "Ready"
)

// ConditionStatus is the status of a component condition.
type ConditionStatus string

const (
	// ConditionTrue means the component is in the condition.
	ConditionTrue ConditionStatus = "True"
	// ConditionFalse means the component is not in the condition.
	ConditionFalse ConditionStatus = "False"
	// ConditionUnknown means that the condition status could not be determined.
	ConditionUnknown ConditionStatus = "Unknown"
)

// State is the overall state of a component.
type State string

const (
	// StateProcessing means the component is being deployed, or was deployed but is not (yet) ready.
	StateProcessing State = "Processing"
	// StateDeletionPending means the deletion of the component is pending due to a retriable error.
	StateDeletionPending State = "DeletionPending"
	// StateDeleting means the deletion of the component's dependent objects is in progress.
	StateDeleting State = "Deleting"
	// StateReady means the component is fully reconciled and all dependent objects are ready.
	StateReady State = "Ready"
	// StateError means the reconciliation of the component ran into a non-retriable error.
	StateError State = "Error"
	// StatePending means the reconciliation of the component is pending due to a retriable error.
	StatePending State = "Pending"
)

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package types

// Label and annotation key suffixes used on dependent objects.
// The effective key is the reconciler name plus the suffix, for example
// livepatch-operator.gaborbk.dev/owner-id.
const (
	LabelKeySuffixOwnerId = "owner-id"

	AnnotationKeySuffixOwnerId         = "owner-id"
	AnnotationKeySuffixDigest          = "digest"
	AnnotationKeySuffixAdoptionPolicy  = "adoption-policy"
	AnnotationKeySuffixReconcilePolicy = "reconcile-policy"
	AnnotationKeySuffixUpdatePolicy    = "update-policy"
	AnnotationKeySuffixDeletePolicy    = "delete-policy"
	AnnotationKeySuffixApplyOrder      = "apply-order"
	AnnotationKeySuffixDeleteOrder     = "delete-order"
	AnnotationKeySuffixStatusHint      = "status-hint"
)

// Valid values of the adoption-policy annotation.
const (
	AdoptionPolicyNever     = "never"
	AdoptionPolicyIfUnowned = "if-unowned"
	AdoptionPolicyAlways    = "always"
)

// Valid values of the reconcile-policy annotation.
const (
	ReconcilePolicyOnObjectChange            = "on-object-change"
	ReconcilePolicyOnObjectOrComponentChange = "on-object-or-component-change"
	ReconcilePolicyOnce                      = "once"
)

// Valid values of the update-policy annotation.
const (
	UpdatePolicyRecreate = "recreate"
	UpdatePolicyReplace  = "replace"
	UpdatePolicySsaMerge = "ssa-merge"
)

// Valid values of the delete-policy annotation.
const (
	DeletePolicyDelete = "delete"
	DeletePolicyOrphan = "orphan"
)

// Valid values of the status-hint annotation (comma-separated).
const (
	StatusHintHasObservedGeneration = "has-observed-generation"
	StatusHintHasReadyCondition     = "has-ready-condition"
)

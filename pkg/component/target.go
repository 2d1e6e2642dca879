/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package component

import (
	"context"

	"github.com/pkg/errors"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/cluster"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/manifests"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/reconciler"
)

// reconcileTarget bundles the resource generator and the dependent object
// reconciler for one component type. It derives placement, owner id and
// revision from the given component, renders the manifests, and hands the
// result over to the reconciler, which tracks the dependents in the
// component's inventory.
type reconcileTarget[T Component] struct {
	reconcilerName    string
	reconcilerId      string
	client            cluster.Client
	resourceGenerator manifests.Generator
	reconciler        *reconciler.Reconciler
}

func newReconcileTarget[T Component](reconcilerName string, reconcilerId string, clnt cluster.Client, resourceGenerator manifests.Generator, options reconciler.ReconcilerOptions) *reconcileTarget[T] {
	return &reconcileTarget[T]{
		reconcilerName:    reconcilerName,
		reconcilerId:      reconcilerId,
		client:            clnt,
		resourceGenerator: resourceGenerator,
		reconciler:        reconciler.NewReconciler(reconcilerName, clnt, options),
	}
}

// Apply renders the component's manifests and applies them to the target cluster.
// It returns true if all dependent objects are ready.
func (t *reconcileTarget[T]) Apply(ctx context.Context, component T) (bool, error) {
	namespace := ""
	name := ""
	if placementConfiguration, ok := assertPlacementConfiguration(component); ok {
		namespace = placementConfiguration.GetDeploymentNamespace()
		name = placementConfiguration.GetDeploymentName()
	}
	if namespace == "" {
		namespace = component.GetNamespace()
	}
	if name == "" {
		name = component.GetName()
	}
	status := component.GetStatus()
	componentDigest := calculateComponentDigest(component)

	generateCtx := newContext(ctx).
		WithReconcilerName(t.reconcilerName).
		WithClient(t.client).
		WithComponent(component).
		WithComponentDigest(componentDigest)
	objects, err := t.resourceGenerator.Generate(generateCtx, namespace, name, component.GetSpec())
	if err != nil {
		return false, errors.Wrap(err, "error rendering manifests")
	}

	return t.reconciler.Apply(ctx, &status.Inventory, objects, namespace, t.ownerId(component), component.GetGeneration())
}

// Delete deletes the dependent objects recorded in the component's inventory.
// It returns true if all dependent objects are gone.
func (t *reconcileTarget[T]) Delete(ctx context.Context, component T) (bool, error) {
	status := component.GetStatus()
	return t.reconciler.Delete(ctx, &status.Inventory, t.ownerId(component))
}

// IsDeletionAllowed checks whether the dependent objects recorded in the
// component's inventory can be safely deleted.
func (t *reconcileTarget[T]) IsDeletionAllowed(ctx context.Context, component T) (bool, string, error) {
	status := component.GetStatus()
	return t.reconciler.IsDeletionAllowed(ctx, &status.Inventory, t.ownerId(component))
}

// ownerId returns the identifier recorded on dependent objects to express
// ownership by the given component. It is based on the component's namespace
// and name (not on the placement), and prefixed with the reconciler id, such
// that equally named components in different clusters remain distinguishable.
func (t *reconcileTarget[T]) ownerId(component T) string {
	return t.reconcilerId + "/" + component.GetNamespace() + "/" + component.GetName()
}

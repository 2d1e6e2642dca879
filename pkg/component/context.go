/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package component

import (
	"context"
	"fmt"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/cluster"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/manifests"
)

type (
	componentContextKeyType       struct{}
	componentDigestContextKeyType struct{}
)

var (
	componentContextKey       = componentContextKeyType{}
	componentDigestContextKey = componentDigestContextKeyType{}
)

func newContext(ctx context.Context) *reconcileContext {
	return &reconcileContext{Context: ctx}
}

type reconcileContext struct {
	context.Context
}

// note: reconciler name and client are stored with the context keys of the
// manifests package, such that generators can retrieve them through the
// accessors defined over there.

func (c *reconcileContext) WithReconcilerName(reconcilerName string) *reconcileContext {
	return &reconcileContext{Context: manifests.NewContextWithReconcilerName(c, reconcilerName)}
}

func (c *reconcileContext) WithClient(clnt cluster.Client) *reconcileContext {
	return &reconcileContext{Context: manifests.NewContextWithClient(c, clnt)}
}

func (c *reconcileContext) WithComponent(component Component) *reconcileContext {
	return &reconcileContext{Context: context.WithValue(c, componentContextKey, component)}
}

func (c *reconcileContext) WithComponentDigest(componentDigest string) *reconcileContext {
	return &reconcileContext{Context: context.WithValue(c, componentDigestContextKey, componentDigest)}
}

// NewGenerateContext returns a context equipped with the given component and its
// digest, as seen by generators invoked from the reconciler. It allows generators
// relying on ComponentFromContext() to be invoked standalone.
func NewGenerateContext(ctx context.Context, component Component, componentDigest string) context.Context {
	return newContext(ctx).WithComponent(component).WithComponentDigest(componentDigest)
}

// ComponentFromContext retrieves the current component from the given context.
func ComponentFromContext(ctx context.Context) (Component, error) {
	if component, ok := ctx.Value(componentContextKey).(Component); ok {
		return component, nil
	}
	return nil, fmt.Errorf("component not found in context")
}

// ComponentDigestFromContext retrieves the current component digest from the given context.
func ComponentDigestFromContext(ctx context.Context) (string, error) {
	if componentDigest, ok := ctx.Value(componentDigestContextKey).(string); ok {
		return componentDigest, nil
	}
	return "", fmt.Errorf("component digest not found in context")
}

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package manifests

import (
	"context"
	"fmt"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/cluster"
)

type reconcilerNameContextKey struct{}
type clientContextKey struct{}

// NewContextWithReconcilerName returns a new context with the reconciler name added as value.
func NewContextWithReconcilerName(ctx context.Context, reconcilerName string) context.Context {
	return context.WithValue(ctx, reconcilerNameContextKey{}, reconcilerName)
}

// NewContextWithClient returns a new context with the client added as value.
func NewContextWithClient(ctx context.Context, client cluster.Client) context.Context {
	return context.WithValue(ctx, clientContextKey{}, client)
}

// ReconcilerNameFromContext retrieves the reconciler name from the given context.
func ReconcilerNameFromContext(ctx context.Context) (string, error) {
	if reconcilerName, ok := ctx.Value(reconcilerNameContextKey{}).(string); ok {
		return reconcilerName, nil
	}
	return "", fmt.Errorf("reconciler name not found in context")
}

// ClientFromContext retrieves the client from the given context.
func ClientFromContext(ctx context.Context) (cluster.Client, error) {
	if client, ok := ctx.Value(clientContextKey{}).(cluster.Client); ok {
		return client, nil
	}
	return nil, fmt.Errorf("client not found in context")
}

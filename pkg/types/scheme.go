/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package types

import "k8s.io/apimachinery/pkg/runtime"

// SchemeBuilder allows callers to contribute additional types to the reconciler's scheme.
type SchemeBuilder interface {
	AddToScheme(scheme *runtime.Scheme) error
}

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package types

// Unstructurable represents objects which can be converted into a string-keyed map.
// All Kubernetes API types, as well as all JSON objects, can be modelled as Unstructurable.
type Unstructurable interface {
	ToUnstructured() map[string]any
}

// UnstructurableMap is a string-keyed map implementing Unstructurable in the natural way.
type UnstructurableMap map[string]any

var _ Unstructurable = UnstructurableMap(nil)

// ToUnstructured returns the map itself.
func (m UnstructurableMap) ToUnstructured() map[string]any {
	return m
}

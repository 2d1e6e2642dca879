/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package reconciler

import (
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

// GetObjectKind returns the inventory item's ObjectKind accessor.
func (i *InventoryItem) GetObjectKind() schema.ObjectKind {
	return i
}

func (i InventoryItem) GroupVersionKind() schema.GroupVersionKind {
	return schema.GroupVersionKind(i.TypeVersionInfo)
}

func (i *InventoryItem) SetGroupVersionKind(gvk schema.GroupVersionKind) {
	i.TypeVersionInfo = TypeVersionInfo(gvk)
}

func (i InventoryItem) GetNamespace() string {
	return i.Namespace
}

func (i InventoryItem) GetName() string {
	return i.Name
}

// Matches checks whether the inventory item matches the given ObjectKey, in the
// sense that Group, Kind, Namespace and Name are the same. The group's Version
// is deliberately not compared; an object remains the same inventory item when
// it moves to another version of its API group.
func (i InventoryItem) Matches(key types.ObjectKey) bool {
	return i.GroupVersionKind().GroupKind() == key.GetObjectKind().GroupVersionKind().GroupKind() && i.Namespace == key.GetNamespace() && i.Name == key.GetName()
}

// String renders the inventory item; makes InventoryItem implement the Stringer interface.
func (i InventoryItem) String() string {
	return types.ObjectKeyToString(&i)
}

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package types

import (
	"fmt"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// ObjectKey represents types which have TypeMeta, a namespace and a name.
// Everything implementing controller-runtime's client.Object implements ObjectKey as well.
type ObjectKey interface {
	GetObjectKind() schema.ObjectKind
	GetNamespace() string
	GetName() string
}

// ObjectKeyToString renders an ObjectKey for logs and messages.
func ObjectKeyToString(key ObjectKey) string {
	gvk := key.GetObjectKind().GroupVersionKind()
	if namespace := key.GetNamespace(); namespace != "" {
		return fmt.Sprintf("%s %s/%s", gvk, namespace, key.GetName())
	}
	return fmt.Sprintf("%s %s", gvk, key.GetName())
}

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package reconciler

import (
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sap/go-generics/slices"

	apimeta "k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

func ref[T any](x T) *T {
	return &x
}

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}

func sha256hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func sha256base32(data []byte) string {
	sum := sha256.Sum256(data)
	return strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum[:]))
}

func checkRange(x int, min int, max int) error {
	if x < min || x > max {
		return fmt.Errorf("value %d not in allowed range [%d,%d]", x, min, max)
	}
	return nil
}

// calculateObjectDigest computes the digest recorded in the inventory for a
// dependent object. Fields which change on every write (resource version,
// generation, managed fields) do not contribute to the digest. With reconcile
// policy OnObjectOrComponentChange, the component revision is mixed in, so a
// component change re-applies the object even if its manifest is unchanged.
func calculateObjectDigest(obj client.Object, revision int64, reconcilePolicy ReconcilePolicy) (string, error) {
	if reconcilePolicy == ReconcilePolicyOnce {
		return "__once__", nil
	}

	resourceVersion := obj.GetResourceVersion()
	defer obj.SetResourceVersion(resourceVersion)
	obj.SetResourceVersion("")
	generation := obj.GetGeneration()
	defer obj.SetGeneration(generation)
	obj.SetGeneration(0)
	managedFields := obj.GetManagedFields()
	defer obj.SetManagedFields(managedFields)
	obj.SetManagedFields(nil)
	raw, err := json.Marshal(obj)
	if err != nil {
		return "", errors.Wrapf(err, "error serializing object %s", types.ObjectKeyToString(obj))
	}
	digest := sha256hex(raw)

	if reconcilePolicy == ReconcilePolicyOnObjectOrComponentChange {
		digest = fmt.Sprintf("%s@%d", digest, revision)
	}

	return digest, nil
}

func removeLabel(obj client.Object, key string) {
	labels := obj.GetLabels()
	delete(labels, key)
	obj.SetLabels(labels)
}

func setLabel(obj client.Object, key string, value string) {
	labels := obj.GetLabels()
	if labels == nil {
		labels = make(map[string]string)
	}
	labels[key] = value
	obj.SetLabels(labels)
}

func setAnnotation(obj client.Object, key string, value string) {
	annotations := obj.GetAnnotations()
	if annotations == nil {
		annotations = make(map[string]string)
	}
	annotations[key] = value
	obj.SetAnnotations(annotations)
}

func removeAnnotation(obj client.Object, key string) {
	annotations := obj.GetAnnotations()
	delete(annotations, key)
	obj.SetAnnotations(annotations)
}

func isNamespace(key types.ObjectKey) bool {
	return key.GetObjectKind().GroupVersionKind().GroupKind() == schema.GroupKind{Group: "", Kind: "Namespace"}
}

// findMissingNamespaces returns the namespaces referenced by the given objects
// which are not themselves part of the object list.
func findMissingNamespaces(objects []client.Object) []string {
	var namespaces []string
	for _, object := range objects {
		namespace := object.GetNamespace()
		if namespace == "" || slices.Contains(namespaces, namespace) {
			continue
		}
		found := false
		for _, obj := range objects {
			if isNamespace(obj) && obj.GetName() == namespace {
				found = true
				break
			}
		}
		if !found {
			namespaces = append(namespaces, namespace)
		}
	}
	return namespaces
}

func scopeFromRestMapping(mapping *apimeta.RESTMapping) int {
	switch mapping.Scope.Name() {
	case apimeta.RESTScopeNameNamespace:
		return scopeNamespaced
	case apimeta.RESTScopeNameRoot:
		return scopeCluster
	default:
		panic("this cannot happen")
	}
}

// normalizeObjects deep-copies the given objects, converting unstructured
// objects into their typed counterparts where the scheme recognizes the type,
// and completing type information of typed objects from the scheme.
func normalizeObjects(objects []client.Object, scheme *runtime.Scheme) ([]client.Object, error) {
	normalizedObjects := make([]client.Object, len(objects))
	for i, object := range objects {
		gvk := object.GetObjectKind().GroupVersionKind()
		if unstructuredObject, ok := object.(*unstructured.Unstructured); ok {
			if gvk.Version == "" || gvk.Kind == "" {
				return nil, fmt.Errorf("unstructured object %s is missing type information", types.ObjectKeyToString(object))
			}
			if scheme.Recognizes(gvk) {
				typedObject, err := scheme.New(gvk)
				if err != nil {
					return nil, errors.Wrapf(err, "error instantiating type for object %s", types.ObjectKeyToString(object))
				}
				clientObject, ok := typedObject.(client.Object)
				if !ok {
					return nil, fmt.Errorf("type of object %s does not implement client.Object", types.ObjectKeyToString(object))
				}
				if err := runtime.DefaultUnstructuredConverter.FromUnstructured(unstructuredObject.Object, clientObject); err != nil {
					return nil, errors.Wrapf(err, "error converting object %s", types.ObjectKeyToString(object))
				}
				normalizedObjects[i] = clientObject
			} else {
				normalizedObjects[i] = unstructuredObject.DeepCopy()
			}
		} else {
			schemeGvk, err := apiutil.GVKForObject(object, scheme)
			if err != nil {
				return nil, errors.Wrapf(err, "error retrieving scheme type information for object %s", types.ObjectKeyToString(object))
			}
			object = object.DeepCopyObject().(client.Object)
			if gvk.Version == "" || gvk.Kind == "" {
				object.GetObjectKind().SetGroupVersionKind(schemeGvk)
			} else if gvk != schemeGvk {
				return nil, fmt.Errorf("object %s specifies inconsistent type information (expected: %s)", types.ObjectKeyToString(object), schemeGvk)
			}
			normalizedObjects[i] = object
		}
	}
	return normalizedObjects, nil
}

func sortObjectsForApply[T client.Object](s []T, orderFunc func(client.Object) int) []T {
	priority := map[string]int{
		"Namespace": -4,
		"ValidatingWebhookConfiguration.admissionregistration.k8s.io": -3,
		"MutatingWebhookConfiguration.admissionregistration.k8s.io":   -3,
		"CustomResourceDefinition.apiextensions.k8s.io":               -2,
		"IngressClass.networking.k8s.io":                              -2,
		"PriorityClass.scheduling.k8s.io":                             -2,
		"StorageClass.storage.k8s.io":                                 -2,
		"ConfigMap":                                                   -1,
		"Secret":                                                      -1,
		"ServiceAccount":                                              -1,
		"ClusterRole.rbac.authorization.k8s.io":                       -1,
		"Role.rbac.authorization.k8s.io":                              -1,
		"ClusterRoleBinding.rbac.authorization.k8s.io":                -1,
		"RoleBinding.rbac.authorization.k8s.io":                       -1,
	}
	f := func(x T, y T) bool {
		orderx := orderFunc(x)
		ordery := orderFunc(y)
		gvx := x.GetObjectKind().GroupVersionKind().GroupKind().String()
		gvy := y.GetObjectKind().GroupVersionKind().GroupKind().String()
		return orderx > ordery || orderx == ordery && priority[gvx] > priority[gvy]
	}
	return slices.SortBy(s, f)
}

func sortObjectsForDelete(inventory []*InventoryItem) []*InventoryItem {
	priority := map[string]int{
		"CustomResourceDefinition.apiextensions.k8s.io":               -1,
		"ValidatingWebhookConfiguration.admissionregistration.k8s.io": 1,
		"MutatingWebhookConfiguration.admissionregistration.k8s.io":   1,
		"Service":                         2,
		"ConfigMap":                       2,
		"Secret":                          2,
		"ServiceAccount":                  2,
		"Namespace":                       3,
		"IngressClass.networking.k8s.io":  4,
		"PriorityClass.scheduling.k8s.io": 4,
		"StorageClass.storage.k8s.io":     4,
	}
	f := func(x *InventoryItem, y *InventoryItem) bool {
		orderx := x.DeleteOrder
		ordery := y.DeleteOrder
		gvx := x.GroupVersionKind().GroupKind().String()
		gvy := y.GroupVersionKind().GroupKind().String()
		return orderx > ordery || orderx == ordery && priority[gvx] > priority[gvy]
	}
	return slices.SortBy(inventory, f)
}

func getItem(inventory []*InventoryItem, key types.ObjectKey) *InventoryItem {
	var item *InventoryItem
	for _, candidate := range inventory {
		if candidate.Matches(key) {
			if item != nil {
				// panic if there is more than one matching item in the inventory;
				// although this is technically possible, it would indicate a severe issue elsewhere
				panic("this cannot happen")
			}
			item = candidate
		}
	}
	return item
}

func mustGetItem(inventory []*InventoryItem, key types.ObjectKey) *InventoryItem {
	item := getItem(inventory, key)
	if item == nil {
		panic("this cannot happen")
	}
	return item
}

func isNamespaceUsed(inventory []*InventoryItem, namespace string) bool {
	for _, item := range inventory {
		if item.Namespace == namespace {
			return true
		}
	}
	return false
}

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package manifests

import (
	"k8s.io/apimachinery/pkg/runtime"
)

// MergeMaps deep-merges two maps with the usual logic and returns the result.
// The first map (x) must consist deeply of JSON values only.
// Neither input map is changed. Both maps may be nil.
func MergeMaps(x, y map[string]any) map[string]any {
	if x == nil {
		x = make(map[string]any)
	} else {
		x = runtime.DeepCopyJSON(x)
	}
	MergeMapInto(x, y)
	return x
}

// MergeMapInto deep-merges the second map (y) over the first map (x).
// The first map is changed (unless y is empty or nil) and must not be nil;
// the second map is not changed and may be nil.
func MergeMapInto(x map[string]any, y map[string]any) {
	for k := range y {
		if v, ok := x[k].(map[string]any); ok {
			if w, ok := y[k].(map[string]any); ok {
				MergeMapInto(v, w)
				continue
			}
		}
		x[k] = y[k]
	}
}

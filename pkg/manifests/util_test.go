/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package manifests_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/manifests"
)

var _ = Describe("testing: util.go", func() {
	DescribeTable("testing: MergeMaps()",
		func(xs, ys, rs string) {
			x := jsonUnmarshal(xs)
			y := jsonUnmarshal(ys)
			Expect(manifests.MergeMaps(x, y)).To(Equal(jsonUnmarshal(rs)))
			// inputs must remain untouched
			Expect(x).To(Equal(jsonUnmarshal(xs)))
			Expect(y).To(Equal(jsonUnmarshal(ys)))
		},

		Entry("nested maps merge, scalars and slices overwrite",
			`{"a": {"a": {"x": 1}, "b": {"x": 1}, "u": [1], "v": [1], "x": 1, "y": 1}, "b": {"x": 1}, "u": [1], "x": 1, "y": 1}`,
			`{"a": {"a": {"x": 2, "z": 2}, "u": 2, "x": 2, "z": 2}, "u": 2, "x": 2, "z": 2}`,
			`{"a": {"a": {"x": 2, "z": 2}, "b": {"x": 1}, "u": 2, "v": [1], "x": 2, "y": 1, "z": 2}, "b": {"x": 1}, "u": 2, "x": 2, "y": 1, "z": 2}`,
		),
		Entry("nil first map",
			`null`,
			`{"x": 1}`,
			`{"x": 1}`,
		),
		Entry("nil second map",
			`{"x": 1}`,
			`null`,
			`{"x": 1}`,
		),
	)

	DescribeTable("testing: MergeMapInto()",
		func(xs, ys, rs string) {
			x := jsonUnmarshal(xs)
			y := jsonUnmarshal(ys)
			manifests.MergeMapInto(x, y)
			Expect(x).To(Equal(jsonUnmarshal(rs)))
			Expect(y).To(Equal(jsonUnmarshal(ys)))
		},

		Entry("map replaces scalar and vice versa",
			`{"a": {"x": 1}, "b": 1}`,
			`{"a": 2, "b": {"y": 2}}`,
			`{"a": 2, "b": {"y": 2}}`,
		),
	)
})

func jsonUnmarshal(s string) (x map[string]any) {
	if err := json.Unmarshal([]byte(s), &x); err != nil {
		panic(err)
	}
	return
}

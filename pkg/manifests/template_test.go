/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package manifests_test

import (
	"context"
	"testing/fstest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/manifests"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

var _ = Describe("testing: template.go", func() {
	var fsys fstest.MapFS

	BeforeEach(func() {
		fsys = fstest.MapFS{
			"templates/configmap.yaml": &fstest.MapFile{Data: []byte(
				`apiVersion: v1
kind: ConfigMap
metadata:
  name: {{ .Name }}-config
  namespace: {{ .Namespace }}
data:
  greeting: {{ include "greeting" . | quote }}
`)},
			"templates/_helpers.tpl.yaml": &fstest.MapFile{Data: []byte(
				`{{- define "greeting" -}}
hello {{ .who }}
{{- end -}}
`)},
			"templates/multi.yaml": &fstest.MapFile{Data: []byte(
				`{{- if .extras }}
apiVersion: v1
kind: Secret
metadata:
  name: {{ .Name }}-extras
stringData: {{ toYaml .extras | nindent 2 }}
---
apiVersion: v1
kind: ServiceAccount
metadata:
  name: {{ .Name }}
{{- end }}
`)},
			"templates/ignored.txt": &fstest.MapFile{Data: []byte(`not a manifest`)},
		}
	})

	It("renders matching templates into objects", func() {
		generator, err := manifests.NewTemplateGenerator(fsys, "templates")
		Expect(err).NotTo(HaveOccurred())

		objects, err := generator.Generate(context.Background(), "test-ns", "test", types.UnstructurableMap{
			"who":    "world",
			"extras": map[string]any{"token": "secret"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(objects).To(HaveLen(3))

		configMap := objects[0].(*unstructured.Unstructured)
		Expect(configMap.GetKind()).To(Equal("ConfigMap"))
		Expect(configMap.GetName()).To(Equal("test-config"))
		Expect(configMap.GetNamespace()).To(Equal("test-ns"))
		data, _, err := unstructured.NestedStringMap(configMap.Object, "data")
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(HaveKeyWithValue("greeting", "hello world"))

		Expect(objects[1].(*unstructured.Unstructured).GetKind()).To(Equal("Secret"))
		Expect(objects[2].(*unstructured.Unstructured).GetKind()).To(Equal("ServiceAccount"))
	})

	It("skips conditional output when disabled", func() {
		generator, err := manifests.NewTemplateGenerator(fsys, "templates")
		Expect(err).NotTo(HaveOccurred())

		objects, err := generator.Generate(context.Background(), "test-ns", "test", types.UnstructurableMap{"who": "world"})
		Expect(err).NotTo(HaveOccurred())
		Expect(objects).To(HaveLen(1))
	})

	It("honors explicit file patterns", func() {
		generator, err := manifests.NewTemplateGenerator(fsys, "templates", "configmap.yaml", "_*.yaml")
		Expect(err).NotTo(HaveOccurred())

		objects, err := generator.Generate(context.Background(), "test-ns", "test", types.UnstructurableMap{"who": "world"})
		Expect(err).NotTo(HaveOccurred())
		Expect(objects).To(HaveLen(1))
		Expect(objects[0].(*unstructured.Unstructured).GetKind()).To(Equal("ConfigMap"))
	})
})

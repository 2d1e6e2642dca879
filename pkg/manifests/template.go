/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package manifests

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/gaborbk/livepatch-k8s-operator/internal/templatex"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

// TemplateGenerator generates objects from a set of go-templated YAML
// manifests. All files under the given directory matching one of the given
// glob patterns (default '**.yaml') are parsed into one common template, so
// files can reference each other's named templates. Files whose base name
// starts with an underscore are parse-only helpers and produce no output.
// Templates can use the sprig function library, plus toYaml, fromYaml, toJson,
// fromJson, required, include and tpl.
type TemplateGenerator struct {
	files    []string
	template *template.Template
}

var _ Generator = &TemplateGenerator{}

// NewTemplateGenerator reads manifest templates from the given fsys and dir.
// If fsys is nil, the local OS filesystem is used.
func NewTemplateGenerator(fsys fs.FS, dir string, patterns ...string) (*TemplateGenerator, error) {
	if fsys == nil {
		fsys = os.DirFS("/")
		absoluteDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absoluteDir[1:]
	}
	if len(patterns) == 0 {
		patterns = []string{"**.yaml"}
	}

	var matchers []glob.Glob
	for _, pattern := range patterns {
		matcher, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Wrapf(err, "invalid manifest file pattern %s", pattern)
		}
		matchers = append(matchers, matcher)
	}

	g := &TemplateGenerator{}
	g.template = template.New("manifests").Option("missingkey=zero").Funcs(sprig.TxtFuncMap()).Funcs(templatex.FuncMap())
	g.template.Funcs(templatex.FuncMapForTemplate(g.template))

	err := fs.WalkDir(fsys, dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		name := strings.TrimPrefix(strings.TrimPrefix(path, dir), "/")
		if !slices.ContainsFunc(matchers, func(m glob.Glob) bool { return m.Match(name) }) {
			return nil
		}
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		if _, err := g.template.New(name).Parse(string(raw)); err != nil {
			return errors.Wrapf(err, "error parsing template %s", name)
		}
		if !strings.HasPrefix(filepath.Base(name), "_") {
			g.files = append(g.files, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(g.files)

	return g, nil
}

// NewTransformableTemplateGenerator is a convenience to create a template
// generator that accepts transformers.
func NewTransformableTemplateGenerator(fsys fs.FS, dir string, patterns ...string) (TransformableGenerator, error) {
	g, err := NewTemplateGenerator(fsys, dir, patterns...)
	if err != nil {
		return nil, err
	}
	return NewGenerator(g), nil
}

func (g *TemplateGenerator) Generate(_ context.Context, namespace string, name string, parameters types.Unstructurable) ([]client.Object, error) {
	data := MergeMaps(parameters.ToUnstructured(), nil)
	data["Namespace"] = namespace
	data["Name"] = name

	var objects []client.Object
	for _, file := range g.files {
		var buf bytes.Buffer
		if err := g.template.ExecuteTemplate(&buf, file, data); err != nil {
			return nil, errors.Wrapf(err, "error rendering template %s", file)
		}
		decoder := utilyaml.NewYAMLToJSONDecoder(bytes.NewReader(templatex.AdjustTemplateOutput(buf.Bytes())))
		for {
			var content map[string]any
			if err := decoder.Decode(&content); err != nil {
				if err == io.EOF {
					break
				}
				return nil, errors.Wrapf(err, "error decoding output of template %s", file)
			}
			if len(content) == 0 {
				continue
			}
			object := &unstructured.Unstructured{Object: content}
			if object.GetAPIVersion() == "" || object.GetKind() == "" {
				return nil, errors.Errorf("template %s produced an object with missing apiVersion or kind", file)
			}
			objects = append(objects, object)
		}
	}
	return objects, nil
}

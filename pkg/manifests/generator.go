/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package manifests

import (
	"context"

	"github.com/pkg/errors"

	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

type transformableGenerator struct {
	generator             Generator
	parameterTransformers []ParameterTransformer
	objectTransformers    []ObjectTransformer
}

// NewGenerator wraps an existing generator such that parameter and object
// transformers can be attached to it.
func NewGenerator(generator Generator) TransformableGenerator {
	return &transformableGenerator{generator: generator}
}

func (g *transformableGenerator) WithParameterTransformer(transformer ParameterTransformer) TransformableGenerator {
	g.parameterTransformers = append(g.parameterTransformers, transformer)
	return g
}

func (g *transformableGenerator) WithObjectTransformer(transformer ObjectTransformer) TransformableGenerator {
	g.objectTransformers = append(g.objectTransformers, transformer)
	return g
}

func (g *transformableGenerator) Generate(ctx context.Context, namespace string, name string, parameters types.Unstructurable) ([]client.Object, error) {
	for i, transformer := range g.parameterTransformers {
		transformedParameters, err := transformer.TransformParameters(namespace, name, parameters)
		if err != nil {
			return nil, errors.Wrapf(err, "error calling parameter transformer (%d)", i)
		}
		parameters = transformedParameters
	}
	objects, err := g.generator.Generate(ctx, namespace, name, parameters)
	if err != nil {
		return nil, err
	}
	for i, transformer := range g.objectTransformers {
		transformedObjects, err := transformer.TransformObjects(namespace, name, objects)
		if err != nil {
			return nil, errors.Wrapf(err, "error calling object transformer (%d)", i)
		}
		objects = transformedObjects
	}
	return objects, nil
}

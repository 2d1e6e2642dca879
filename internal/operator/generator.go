/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package operator

import (
	"context"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"

	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/gaborbk/livepatch-k8s-operator/api/v1alpha1"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/component"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/manifests"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

// ReconcilerName identifies this operator; it is used as field owner, in
// finalizers, and as prefix of the labels and annotations maintained on
// dependent objects.
const ReconcilerName = "livepatch-operator.gaborbk.dev"

// AnnotationKeyRestart triggers a rolling restart of the server pods when its
// value changes; the value is copied into the pod template.
const AnnotationKeyRestart = ReconcilerName + "/restart"

const (
	defaultServerImageRepository     = "ubuntu/livepatch-server"
	defaultSchemaToolImageRepository = "ubuntu/livepatch-schema-tool"
	defaultPromtailImageRepository   = "grafana/promtail"
	defaultPromtailImageTag          = "2.9.4"
	defaultImageTag                  = "latest"
)

//go:embed all:templates
var templateFiles embed.FS

//go:embed dashboard.json
var dashboardJSON string

// ResourceGenerator renders the dependent objects of a LivepatchServer
// component (deployment, service, secrets, schema-upgrade job, and the
// optional ingress, promtail and dashboard resources).
type ResourceGenerator struct {
	templates *manifests.TemplateGenerator
}

var _ manifests.Generator = &ResourceGenerator{}

// NewResourceGenerator creates a ResourceGenerator from the embedded manifest
// templates.
func NewResourceGenerator() (*ResourceGenerator, error) {
	templates, err := manifests.NewTemplateGenerator(templateFiles, "templates")
	if err != nil {
		return nil, errors.Wrap(err, "error parsing manifest templates")
	}
	return &ResourceGenerator{templates: templates}, nil
}

// Generate implements the manifests.Generator interface. It ignores the passed
// parameters and works on the typed component retrieved from the context, so
// that resolved reference content is available.
func (g *ResourceGenerator) Generate(ctx context.Context, namespace string, name string, _ types.Unstructurable) ([]client.Object, error) {
	c, err := component.ComponentFromContext(ctx)
	if err != nil {
		return nil, err
	}
	server, ok := c.(*v1alpha1.LivepatchServer)
	if !ok {
		return nil, errors.Errorf("unexpected component type %T", c)
	}
	componentDigest, err := component.ComponentDigestFromContext(ctx)
	if err != nil {
		return nil, err
	}

	env, useResourceTokenSecret, err := buildEnvironment(server)
	if err != nil {
		return nil, err
	}

	spec := &server.Spec

	replicas := int32(1)
	if spec.Replicas != nil {
		replicas = *spec.Replicas
	}

	serverImage := imageRef(spec.Image, defaultServerImageRepository, defaultImageTag)
	schemaToolImage := imageRef(spec.SchemaToolImage, defaultSchemaToolImageRepository, defaultImageTag)

	trustedCACertificate := ""
	if spec.Contracts != nil && spec.Contracts.CACertificateSecret != nil {
		trustedCACertificate = string(spec.Contracts.CACertificateSecret.Value())
	}

	metricsEnabled := true
	dashboardEnabled := false
	if spec.Monitoring != nil {
		if spec.Monitoring.Metrics != nil {
			metricsEnabled = *spec.Monitoring.Metrics
		}
		if spec.Monitoring.GrafanaDashboard != nil {
			dashboardEnabled = *spec.Monitoring.GrafanaDashboard
		}
	}

	var logShipping map[string]any
	if spec.LogShipping != nil {
		logShipping = map[string]any{
			"lokiPushURL":   spec.LogShipping.LokiPushURL,
			"promtailImage": imageRef(spec.LogShipping.PromtailImage, defaultPromtailImageRepository, defaultPromtailImageTag),
		}
	}

	// sprig's map functions expect map[string]any
	envValues := make(map[string]any, len(env))
	for key, value := range env {
		envValues[key] = value
	}

	parameters := types.UnstructurableMap{
		"serverImage":             serverImage,
		"serverImagePullPolicy":   imagePullPolicy(spec.Image),
		"serverImagePullSecret":   imagePullSecret(spec.Image),
		"schemaToolImage":         schemaToolImage,
		"replicas":                int64(replicas),
		"env":                     envValues,
		"configChecksum":          componentDigest,
		"restartedAt":             server.GetAnnotations()[AnnotationKeyRestart],
		"useResourceTokenSecret":  useResourceTokenSecret,
		"resourceTokenSecretName": ResourceTokenSecretName(name),
		"trustedCACertificate":    trustedCACertificate,
		"ingress":                 toMap(spec.Ingress),
		"service":                 toMap(spec.Service),
		"logShipping":             logShipping,
		"metrics":                 metricsEnabled,
		"dashboard":               "",
		"kubernetes":              toMap(spec.Kubernetes),
		// the job name carries this suffix, so a change of the database
		// connection or of the schema tool image re-runs the migrations
		"schemaJobSuffix": shortHash(env["LP_DATABASE_CONNECTION_STRING"], schemaToolImage),
	}
	if dashboardEnabled {
		parameters["dashboard"] = dashboardJSON
	}

	return g.templates.Generate(ctx, namespace, name, parameters)
}

func imageRef(image *component.ImageSpec, defaultRepository string, defaultTag string) string {
	repository := defaultRepository
	tag := defaultTag
	if image != nil {
		if image.Repository != "" {
			repository = image.Repository
		}
		if image.Tag != "" {
			tag = image.Tag
		}
	}
	return repository + ":" + tag
}

func imagePullPolicy(image *component.ImageSpec) string {
	if image != nil && image.PullPolicy != "" {
		return image.PullPolicy
	}
	return "IfNotPresent"
}

func imagePullSecret(image *component.ImageSpec) string {
	if image == nil {
		return ""
	}
	return image.PullSecret
}

func shortHash(values ...string) string {
	hash := sha256.New()
	for _, value := range values {
		hash.Write([]byte(value))
		hash.Write([]byte{0})
	}
	return hex.EncodeToString(hash.Sum(nil))[0:10]
}

// toMap converts a (pointer to a) struct into its unstructured representation;
// nil pointers map to nil.
func toMap(x any) map[string]any {
	if x == nil {
		return nil
	}
	raw, err := json.Marshal(x)
	if err != nil {
		panic(err)
	}
	if string(raw) == "null" {
		return nil
	}
	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		panic(err)
	}
	return result
}

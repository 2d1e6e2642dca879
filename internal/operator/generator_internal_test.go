/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package operator

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/controller-runtime/pkg/client"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gaborbk/livepatch-k8s-operator/api/v1alpha1"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/component"
)

var _ = Describe("testing: generator.go", func() {
	var generator *ResourceGenerator
	var server *v1alpha1.LivepatchServer

	BeforeEach(func() {
		var err error
		generator, err = NewResourceGenerator()
		Expect(err).NotTo(HaveOccurred())
		server = newTestServer()
	})

	generate := func() []client.Object {
		GinkgoHelper()
		ctx := component.NewGenerateContext(context.Background(), server, "digest123")
		objects, err := generator.Generate(ctx, server.Namespace, server.Name, server.GetSpec())
		Expect(err).NotTo(HaveOccurred())
		return objects
	}

	find := func(objects []client.Object, kind string, name string) *unstructured.Unstructured {
		for _, object := range objects {
			if object.GetObjectKind().GroupVersionKind().Kind == kind && object.GetName() == name {
				return object.(*unstructured.Unstructured)
			}
		}
		return nil
	}

	resolveDefault := func() {
		GinkgoHelper()
		Expect(resolve(server, newSecret("db-uri", map[string]string{
			"uri": "postgresql://lp:pw@db:5432/livepatch-server",
		}))).To(Succeed())
	}

	It("should generate the core resource set", func() {
		resolveDefault()
		objects := generate()

		Expect(find(objects, "ConfigMap", "server-logrotate")).NotTo(BeNil())
		Expect(find(objects, "Service", "server")).NotTo(BeNil())

		secret := find(objects, "Secret", "server-env")
		Expect(secret).NotTo(BeNil())
		env, _, err := unstructured.NestedStringMap(secret.Object, "stringData")
		Expect(err).NotTo(HaveOccurred())
		Expect(env).To(HaveKeyWithValue("LP_DATABASE_CONNECTION_STRING", "postgresql://lp:pw@db:5432/livepatch-server"))

		deployment := find(objects, "Deployment", "server")
		Expect(deployment).NotTo(BeNil())
		Expect(deployment.GetAnnotations()).To(HaveKeyWithValue("livepatch-operator.gaborbk.dev/apply-order", "1"))
		podAnnotations, _, err := unstructured.NestedStringMap(deployment.Object, "spec", "template", "metadata", "annotations")
		Expect(err).NotTo(HaveOccurred())
		Expect(podAnnotations).To(HaveKeyWithValue("checksum/config", "digest123"))

		// no optional resources configured
		Expect(find(objects, "Ingress", "server")).To(BeNil())
		Expect(find(objects, "ConfigMap", "server-promtail")).To(BeNil())
		Expect(find(objects, "ConfigMap", "server-grafana-dashboard")).To(BeNil())
		Expect(find(objects, "Secret", "server-trusted-ca")).To(BeNil())
	})

	It("should run the schema upgrade before the server", func() {
		resolveDefault()
		objects := generate()

		var job *unstructured.Unstructured
		for _, object := range objects {
			if object.GetObjectKind().GroupVersionKind().Kind == "Job" {
				job = object.(*unstructured.Unstructured)
			}
		}
		Expect(job).NotTo(BeNil())
		Expect(job.GetName()).To(HavePrefix("server-schema-upgrade-"))
		Expect(job.GetAnnotations()).To(HaveKeyWithValue("livepatch-operator.gaborbk.dev/apply-order", "0"))

		containers, _, err := unstructured.NestedSlice(job.Object, "spec", "template", "spec", "containers")
		Expect(err).NotTo(HaveOccurred())
		Expect(containers).To(HaveLen(1))
		command, _, err := unstructured.NestedStringSlice(containers[0].(map[string]any), "command")
		Expect(err).NotTo(HaveOccurred())
		Expect(command).To(Equal([]string{
			"/usr/local/bin/livepatch-schema-tool", "upgrade", "/etc/livepatch/schema-upgrades", "--db", "$(LP_DATABASE_CONNECTION_STRING)",
		}))
	})

	It("should re-run the schema upgrade when the database connection changes", func() {
		resolveDefault()
		firstObjects := generate()

		other := newTestServer()
		Expect(resolve(other, newSecret("db-uri", map[string]string{
			"uri": "postgresql://lp:pw@other-db:5432/livepatch-server",
		}))).To(Succeed())
		server = other
		secondObjects := generate()

		firstName := ""
		secondName := ""
		for _, object := range firstObjects {
			if object.GetObjectKind().GroupVersionKind().Kind == "Job" {
				firstName = object.GetName()
			}
		}
		for _, object := range secondObjects {
			if object.GetObjectKind().GroupVersionKind().Kind == "Job" {
				secondName = object.GetName()
			}
		}
		Expect(firstName).NotTo(BeEmpty())
		Expect(secondName).NotTo(BeEmpty())
		Expect(secondName).NotTo(Equal(firstName))
	})

	It("should generate an ingress if configured", func() {
		server.Spec.Ingress = &v1alpha1.IngressSpec{
			Host:          "livepatch.example.com",
			ClassName:     "nginx",
			Annotations:   map[string]string{"nginx.ingress.kubernetes.io/proxy-body-size": "0"},
			TLSSecretName: "livepatch-tls",
		}
		resolveDefault()
		objects := generate()

		ingress := find(objects, "Ingress", "server")
		Expect(ingress).NotTo(BeNil())
		Expect(ingress.GetAnnotations()).To(HaveKeyWithValue("nginx.ingress.kubernetes.io/proxy-body-size", "0"))
		className, _, err := unstructured.NestedString(ingress.Object, "spec", "ingressClassName")
		Expect(err).NotTo(HaveOccurred())
		Expect(className).To(Equal("nginx"))
		tls, _, err := unstructured.NestedSlice(ingress.Object, "spec", "tls")
		Expect(err).NotTo(HaveOccurred())
		Expect(tls).To(HaveLen(1))
	})

	It("should add a promtail sidecar if log shipping is configured", func() {
		server.Spec.LogShipping = &v1alpha1.LogShippingSpec{
			LokiPushURL: "http://loki:3100/loki/api/v1/push",
		}
		resolveDefault()
		objects := generate()

		Expect(find(objects, "ConfigMap", "server-promtail")).NotTo(BeNil())
		deployment := find(objects, "Deployment", "server")
		containers, _, err := unstructured.NestedSlice(deployment.Object, "spec", "template", "spec", "containers")
		Expect(err).NotTo(HaveOccurred())
		Expect(containers).To(HaveLen(2))
		image, _, err := unstructured.NestedString(containers[1].(map[string]any), "image")
		Expect(err).NotTo(HaveOccurred())
		Expect(image).To(Equal("grafana/promtail:2.9.4"))
	})

	It("should publish the grafana dashboard if enabled", func() {
		server.Spec.Monitoring = &v1alpha1.MonitoringSpec{GrafanaDashboard: ref(true)}
		resolveDefault()
		objects := generate()

		dashboard := find(objects, "ConfigMap", "server-grafana-dashboard")
		Expect(dashboard).NotTo(BeNil())
		Expect(dashboard.GetLabels()).To(HaveKeyWithValue("grafana_dashboard", "1"))
		data, _, err := unstructured.NestedStringMap(dashboard.Object, "data")
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(HaveKey("livepatch.json"))
	})

	It("should apply service customizations if configured", func() {
		server.Spec.Service = &component.ServiceProperties{
			Type:                     corev1.ServiceTypeLoadBalancer,
			ExternalTrafficPolicy:    corev1.ServiceExternalTrafficPolicyTypeLocal,
			LoadBalancerSourceRanges: []string{"10.0.0.0/8"},
			Labels:                   map[string]string{"team": "kernel"},
			Annotations:              map[string]string{"metallb.universe.tf/address-pool": "default"},
		}
		resolveDefault()
		objects := generate()

		service := find(objects, "Service", "server")
		Expect(service).NotTo(BeNil())
		Expect(service.GetLabels()).To(HaveKeyWithValue("team", "kernel"))
		Expect(service.GetAnnotations()).To(HaveKeyWithValue("metallb.universe.tf/address-pool", "default"))
		serviceType, _, err := unstructured.NestedString(service.Object, "spec", "type")
		Expect(err).NotTo(HaveOccurred())
		Expect(serviceType).To(Equal("LoadBalancer"))
		policy, _, err := unstructured.NestedString(service.Object, "spec", "externalTrafficPolicy")
		Expect(err).NotTo(HaveOccurred())
		Expect(policy).To(Equal("Local"))
		ranges, _, err := unstructured.NestedStringSlice(service.Object, "spec", "loadBalancerSourceRanges")
		Expect(err).NotTo(HaveOccurred())
		Expect(ranges).To(Equal([]string{"10.0.0.0/8"}))
	})

	It("should keep the service a plain ClusterIP by default", func() {
		resolveDefault()
		objects := generate()

		service := find(objects, "Service", "server")
		serviceType, _, err := unstructured.NestedString(service.Object, "spec", "type")
		Expect(err).NotTo(HaveOccurred())
		Expect(serviceType).To(Equal("ClusterIP"))
	})

	It("should omit the scrape annotations if metrics are disabled", func() {
		server.Spec.Monitoring = &v1alpha1.MonitoringSpec{Metrics: ref(false)}
		resolveDefault()
		objects := generate()

		service := find(objects, "Service", "server")
		Expect(service.GetAnnotations()).NotTo(HaveKey("prometheus.io/scrape"))
	})

	It("should install a trusted CA certificate if configured", func() {
		server.Spec.Contracts = &v1alpha1.ContractsSpec{
			CACertificateSecret: &component.SecretKeyReference{Name: "contracts-ca"},
		}
		Expect(resolve(server,
			newSecret("db-uri", map[string]string{"uri": "postgresql://lp:pw@db:5432/livepatch-server"}),
			newSecret("contracts-ca", map[string]string{"ca.crt": "-----BEGIN CERTIFICATE-----"}),
		)).To(Succeed())
		objects := generate()

		Expect(find(objects, "Secret", "server-trusted-ca")).NotTo(BeNil())
		deployment := find(objects, "Deployment", "server")
		initContainers, _, err := unstructured.NestedSlice(deployment.Object, "spec", "template", "spec", "initContainers")
		Expect(err).NotTo(HaveOccurred())
		Expect(initContainers).To(HaveLen(1))
	})

	It("should take the sync token from the resource token secret if a contract token is configured", func() {
		server.Spec.Contracts = &v1alpha1.ContractsSpec{
			ContractTokenSecret: &component.SecretKeyReference{Name: "contract-token"},
		}
		Expect(resolve(server,
			newSecret("db-uri", map[string]string{"uri": "postgresql://lp:pw@db:5432/livepatch-server"}),
			newSecret("contract-token", map[string]string{"token": "ct"}),
		)).To(Succeed())
		objects := generate()

		deployment := find(objects, "Deployment", "server")
		containers, _, err := unstructured.NestedSlice(deployment.Object, "spec", "template", "spec", "containers")
		Expect(err).NotTo(HaveOccurred())
		env, _, err := unstructured.NestedSlice(containers[0].(map[string]any), "env")
		Expect(err).NotTo(HaveOccurred())
		Expect(env).To(HaveLen(1))
		name, _, err := unstructured.NestedString(env[0].(map[string]any), "name")
		Expect(err).NotTo(HaveOccurred())
		Expect(name).To(Equal("LP_PATCH_SYNC_TOKEN"))
		secretName, _, err := unstructured.NestedString(env[0].(map[string]any), "valueFrom", "secretKeyRef", "name")
		Expect(err).NotTo(HaveOccurred())
		Expect(secretName).To(Equal("server-resource-token"))
	})

	It("should copy the restart annotation into the pod template", func() {
		server.Annotations = map[string]string{AnnotationKeyRestart: "2026-08-25T10:00:00Z"}
		resolveDefault()
		objects := generate()

		deployment := find(objects, "Deployment", "server")
		podAnnotations, _, err := unstructured.NestedStringMap(deployment.Object, "spec", "template", "metadata", "annotations")
		Expect(err).NotTo(HaveOccurred())
		Expect(podAnnotations).To(HaveKeyWithValue("livepatch-operator.gaborbk.dev/restarted-at", "2026-08-25T10:00:00Z"))
	})
})

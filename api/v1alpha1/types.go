/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	runtime "k8s.io/apimachinery/pkg/runtime"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/component"
	livepatchtypes "github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

// LivepatchServerSpec defines the desired state of a Livepatch server deployment.
type LivepatchServerSpec struct {
	component.PlacementSpec `json:",inline"`
	component.RequeueSpec   `json:",inline"`
	component.RetrySpec     `json:",inline"`

	// Server holds the core server configuration.
	Server ServerSpec `json:"server"`

	// Database configures the connection to the PostgreSQL backend.
	Database DatabaseSpec `json:"database"`

	// PatchSync configures the download of patches from the upstream Livepatch service.
	// +optional
	PatchSync *PatchSyncSpec `json:"patchSync,omitempty"`

	// PatchStorage configures where downloaded patch blobs are kept.
	// +optional
	PatchStorage *PatchStorageSpec `json:"patchStorage,omitempty"`

	// Contracts configures access to the (hosted or airgapped) contracts service.
	// +optional
	Contracts *ContractsSpec `json:"contracts,omitempty"`

	// CVECatalog enables mirroring of the CVE catalog from the given source.
	// +optional
	CVECatalog *CVECatalogSpec `json:"cveCatalog,omitempty"`

	// Ingress exposes the server through an Ingress resource.
	// +optional
	Ingress *IngressSpec `json:"ingress,omitempty"`

	// Service customizes the Service fronting the server pods.
	// +optional
	Service *component.ServiceProperties `json:"service,omitempty"`

	// LogShipping ships the server log file to a Loki endpoint via a promtail sidecar.
	// +optional
	LogShipping *LogShippingSpec `json:"logShipping,omitempty"`

	// Monitoring toggles the prometheus scrape annotations and the grafana dashboard.
	// +optional
	Monitoring *MonitoringSpec `json:"monitoring,omitempty"`

	// Image overrides the server image.
	// +optional
	Image *component.ImageSpec `json:"image,omitempty"`

	// SchemaToolImage overrides the image used by the schema-upgrade job.
	// +optional
	SchemaToolImage *component.ImageSpec `json:"schemaToolImage,omitempty"`

	// Replicas is the desired number of server pods.
	// +optional
	// +kubebuilder:validation:Minimum=1
	Replicas *int32 `json:"replicas,omitempty"`

	// Kubernetes carries generic workload properties (scheduling, security, resources).
	// +optional
	Kubernetes *component.KubernetesProperties `json:"kubernetes,omitempty"`

	// ExtraConfig contains additional dotted server config keys (as in the
	// upstream config file) which are rendered into LP_* environment variables
	// verbatim; values may reference other environment variables in $VAR form.
	// +optional
	ExtraConfig map[string]string `json:"extraConfig,omitempty"`
}

// ServerSpec holds the core server configuration.
type ServerSpec struct {
	// URLTemplate is the template of the URL under which patches are served,
	// for example https://livepatch.example.com/v1/patches/{filename}.
	// The server cannot be brought up without it.
	// +optional
	URLTemplate string `json:"urlTemplate,omitempty"`

	// IsHosted marks this deployment as an on-prem (hosted) server.
	// +optional
	// +kubebuilder:default=true
	IsHosted *bool `json:"isHosted,omitempty"`

	// LogLevel sets the server log level.
	// +optional
	// +kubebuilder:validation:Enum=debug;info;warning;error
	LogLevel string `json:"logLevel,omitempty"`
}

// DatabaseSpec configures the connection to the PostgreSQL backend. Exactly one
// of ConnectionSecret and URISecret must be set.
type DatabaseSpec struct {
	// ConnectionSecret references a secret with username, password, host and
	// port keys (as published by a database provisioner); the server DSN is
	// composed from it, using database name livepatch-server.
	// +optional
	ConnectionSecret *component.SecretReference `json:"connectionSecret,omitempty"`

	// URISecret references a secret key holding a complete postgresql:// URI.
	// Mutually exclusive with ConnectionSecret.
	// +optional
	URISecret *component.SecretKeyReference `json:"uriSecret,omitempty" fallbackKeys:"uri,dsn"`
}

// PatchSyncSpec configures the download of patches from the upstream service.
type PatchSyncSpec struct {
	// +optional
	// +kubebuilder:default=true
	Enabled *bool `json:"enabled,omitempty"`

	// TokenSecret references a secret key holding the patch sync token.
	// If unset, a resource token is obtained through the contracts service,
	// provided a contract token is configured.
	// +optional
	TokenSecret *component.SecretKeyReference `json:"tokenSecret,omitempty" fallbackKeys:"token"`
}

// PatchStorageSpec configures where downloaded patch blobs are kept.
type PatchStorageSpec struct {
	// +optional
	// +kubebuilder:validation:Enum=filesystem;postgres
	// +kubebuilder:default=postgres
	Type string `json:"type,omitempty"`

	// PostgresURISecret references a secret key holding the URI of a dedicated
	// patch storage database; defaults to the main database connection.
	// +optional
	PostgresURISecret *component.SecretKeyReference `json:"postgresURISecret,omitempty" fallbackKeys:"uri,dsn"`
}

// ContractsSpec configures access to the contracts service.
type ContractsSpec struct {
	// URL of the contracts service.
	// +optional
	URL string `json:"url,omitempty"`

	// CACertificateSecret references a secret key holding a PEM CA certificate
	// which is installed as trusted CA in the server containers.
	// +optional
	CACertificateSecret *component.SecretKeyReference `json:"caCertificateSecret,omitempty" fallbackKeys:"ca.crt"`

	// ContractTokenSecret references a secret key holding a contract token,
	// which is exchanged for a patch sync resource token.
	// +optional
	ContractTokenSecret *component.SecretKeyReference `json:"contractTokenSecret,omitempty" fallbackKeys:"token" notFoundPolicy:"ignoreOnDeletion"`

	// Airgapped points the server to an air-gapped contracts service instead
	// of the hosted one. Mutually exclusive with ContractTokenSecret.
	// +optional
	Airgapped *AirgappedSpec `json:"airgapped,omitempty"`
}

// AirgappedSpec locates an air-gapped contracts service.
type AirgappedSpec struct {
	// +required
	// +kubebuilder:validation:MinLength=1
	Hostname string `json:"hostname"`
	// +optional
	// +kubebuilder:validation:Enum=http;https
	// +kubebuilder:default=http
	Scheme string `json:"scheme,omitempty"`
	// +optional
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	Port int32 `json:"port,omitempty"`
}

// CVECatalogSpec enables mirroring of the CVE catalog.
type CVECatalogSpec struct {
	// +required
	// +kubebuilder:validation:MinLength=1
	URL string `json:"url"`
}

// IngressSpec exposes the server through an Ingress resource.
type IngressSpec struct {
	// +required
	// +kubebuilder:validation:MinLength=1
	Host string `json:"host"`
	// +optional
	ClassName string `json:"className,omitempty"`
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`
	// +optional
	TLSSecretName string `json:"tlsSecretName,omitempty"`
}

// LogShippingSpec ships the server log file to a Loki endpoint.
type LogShippingSpec struct {
	// +required
	// +kubebuilder:validation:MinLength=1
	LokiPushURL string `json:"lokiPushURL"`
	// +optional
	PromtailImage *component.ImageSpec `json:"promtailImage,omitempty"`
}

// MonitoringSpec toggles metrics scraping and the grafana dashboard.
type MonitoringSpec struct {
	// +optional
	// +kubebuilder:default=true
	Metrics *bool `json:"metrics,omitempty"`
	// +optional
	// +kubebuilder:default=false
	GrafanaDashboard *bool `json:"grafanaDashboard,omitempty"`
}

// LivepatchServerStatus defines the observed state of a LivepatchServer.
type LivepatchServerStatus struct {
	component.Status `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=lps
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"
// +genclient

// LivepatchServer is the Schema for the livepatchservers API.
type LivepatchServer struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec LivepatchServerSpec `json:"spec,omitempty"`
	// +kubebuilder:default={"observedGeneration":-1}
	Status LivepatchServerStatus `json:"status,omitempty"`
}

var _ component.Component = &LivepatchServer{}

// +kubebuilder:object:root=true

// LivepatchServerList contains a list of LivepatchServer.
type LivepatchServerList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []LivepatchServer `json:"items"`
}

func (s *LivepatchServerSpec) ToUnstructured() map[string]any {
	result, err := runtime.DefaultUnstructuredConverter.ToUnstructured(s)
	if err != nil {
		panic(err)
	}
	return result
}

func (c *LivepatchServer) GetSpec() livepatchtypes.Unstructurable {
	return &c.Spec
}

func (c *LivepatchServer) GetStatus() *component.Status {
	return &c.Status.Status
}

func init() {
	SchemeBuilder.Register(&LivepatchServer{}, &LivepatchServerList{})
}

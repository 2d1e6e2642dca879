/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cluster

import (
	"net/http"

	"k8s.io/client-go/discovery"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Client extends the controller-runtime client with discovery and event
// recording capabilities.
type Client interface {
	client.Client
	// DiscoveryClient returns a discovery client for the same cluster.
	DiscoveryClient() discovery.DiscoveryInterface
	// EventRecorder returns an event recorder bound to this client.
	EventRecorder() record.EventRecorder
	// Config returns the rest config this client was built from.
	Config() *rest.Config
	// HttpClient returns the underlying http client.
	HttpClient() *http.Client
}

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cluster

import (
	"context"
	"net/http"
	"sync"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	apitypes "k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

const (
	retryAfter         = time.Second
	nextRetryNotBefore = time.Minute
)

// NewClient wraps a controller-runtime client. Write operations returning a
// conflict error are converted into a RetriableError once per object and
// minute, so that occasional conflicts lead to a quick requeue instead of an
// error state.
func NewClient(clnt client.Client, discoveryClient discovery.DiscoveryInterface, eventRecorder record.EventRecorder, config *rest.Config, httpClient *http.Client) Client {
	return &clientImpl{
		Client:          clnt,
		discoveryClient: discoveryClient,
		eventRecorder:   eventRecorder,
		config:          config,
		httpClient:      httpClient,
		pendingRetries:  make(map[apitypes.UID]time.Time),
	}
}

type clientImpl struct {
	client.Client
	discoveryClient discovery.DiscoveryInterface
	eventRecorder   record.EventRecorder
	config          *rest.Config
	httpClient      *http.Client
	mu              sync.Mutex
	pendingRetries  map[apitypes.UID]time.Time
}

func (c *clientImpl) DiscoveryClient() discovery.DiscoveryInterface {
	return c.discoveryClient
}

func (c *clientImpl) EventRecorder() record.EventRecorder {
	return c.eventRecorder
}

func (c *clientImpl) Config() *rest.Config {
	return c.config
}

func (c *clientImpl) HttpClient() *http.Client {
	return c.httpClient
}

func (c *clientImpl) Create(ctx context.Context, obj client.Object, opts ...client.CreateOption) error {
	return c.maybeRetry(c.Client.Create(ctx, obj, opts...), obj.GetUID())
}

func (c *clientImpl) Delete(ctx context.Context, obj client.Object, opts ...client.DeleteOption) error {
	return c.maybeRetry(c.Client.Delete(ctx, obj, opts...), obj.GetUID())
}

func (c *clientImpl) Update(ctx context.Context, obj client.Object, opts ...client.UpdateOption) error {
	return c.maybeRetry(c.Client.Update(ctx, obj, opts...), obj.GetUID())
}

func (c *clientImpl) Patch(ctx context.Context, obj client.Object, patch client.Patch, opts ...client.PatchOption) error {
	return c.maybeRetry(c.Client.Patch(ctx, obj, patch, opts...), obj.GetUID())
}

func (c *clientImpl) Status() client.SubResourceWriter {
	return &subResourceClientImpl{SubResourceClient: c.Client.SubResource("status"), client: c}
}

func (c *clientImpl) SubResource(subResource string) client.SubResourceClient {
	return &subResourceClientImpl{SubResourceClient: c.Client.SubResource(subResource), client: c}
}

// maybeRetry turns a conflict error into a RetriableError, unless the same
// object already got a conflict retry within the last minute.
func (c *clientImpl) maybeRetry(err error, uid apitypes.UID) error {
	if apierrors.IsConflict(err) && uid != "" {
		c.mu.Lock()
		defer c.mu.Unlock()
		now := time.Now()
		for uid, notBefore := range c.pendingRetries {
			if now.After(notBefore) {
				delete(c.pendingRetries, uid)
			}
		}
		if _, ok := c.pendingRetries[uid]; !ok {
			c.pendingRetries[uid] = now.Add(nextRetryNotBefore)
			return types.NewRetriableError(err, ref(retryAfter))
		}
	}
	return err
}

func ref[T any](x T) *T {
	return &x
}

type subResourceClientImpl struct {
	client.SubResourceClient
	client *clientImpl
}

func (s *subResourceClientImpl) Create(ctx context.Context, obj client.Object, subResource client.Object, opts ...client.SubResourceCreateOption) error {
	return s.client.maybeRetry(s.SubResourceClient.Create(ctx, obj, subResource, opts...), obj.GetUID())
}

func (s *subResourceClientImpl) Update(ctx context.Context, obj client.Object, opts ...client.SubResourceUpdateOption) error {
	return s.client.maybeRetry(s.SubResourceClient.Update(ctx, obj, opts...), obj.GetUID())
}

func (s *subResourceClientImpl) Patch(ctx context.Context, obj client.Object, patch client.Patch, opts ...client.SubResourcePatchOption) error {
	return s.client.maybeRetry(s.SubResourceClient.Patch(ctx, obj, patch, opts...), obj.GetUID())
}

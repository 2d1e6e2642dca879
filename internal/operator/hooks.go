/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package operator

import (
	"context"
	"time"

	"github.com/pkg/errors"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	apitypes "k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/gaborbk/livepatch-k8s-operator/api/v1alpha1"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

const resourceTokenSecretKey = "token"

var tokenExchangeRetryAfter = 5 * time.Minute

// ResourceTokenSecretName returns the name of the managed secret holding the
// resource token fetched from the contracts service.
func ResourceTokenSecretName(name string) string {
	return name + "-resource-token"
}

// FetchResourceToken is a pre-reconcile hook which, for components that have a
// contract token configured (and neither an explicit patch sync token nor an
// air-gapped contracts service), exchanges the contract token for a resource
// token and stores it in an owned secret. The exchange happens once; the
// secret remains until the component is deleted.
func FetchResourceToken(ctx context.Context, clnt client.Client, server *v1alpha1.LivepatchServer) error {
	spec := &server.Spec
	if spec.Contracts == nil || spec.Contracts.ContractTokenSecret == nil || spec.Contracts.Airgapped != nil {
		return nil
	}
	if spec.PatchSync != nil && spec.PatchSync.TokenSecret != nil {
		return nil
	}

	secretName := ResourceTokenSecretName(server.Name)
	secret := &corev1.Secret{}
	err := clnt.Get(ctx, apitypes.NamespacedName{Namespace: server.Namespace, Name: secretName}, secret)
	if err == nil {
		return nil
	}
	if !apierrors.IsNotFound(err) {
		return errors.Wrapf(err, "error reading secret %s/%s", server.Namespace, secretName)
	}

	contractsClient := NewContractsClient(spec.Contracts.URL)
	resourceToken, err := contractsClient.FetchResourceToken(ctx, string(spec.Contracts.ContractTokenSecret.Value()))
	if err != nil {
		return types.NewRetriableError(errors.Wrap(err, "error exchanging contract token for resource token"), &tokenExchangeRetryAfter)
	}

	secret = &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: server.Namespace,
			Name:      secretName,
		},
		Data: map[string][]byte{
			resourceTokenSecretKey: []byte(resourceToken),
		},
	}
	if err := controllerutil.SetControllerReference(server, secret, clnt.Scheme()); err != nil {
		return errors.Wrap(err, "error setting owner reference on resource token secret")
	}
	if err := clnt.Create(ctx, secret); err != nil {
		return errors.Wrapf(err, "error creating secret %s/%s", server.Namespace, secretName)
	}
	log.FromContext(ctx).Info("resource token fetched and stored", "secret", secretName)
	return nil
}

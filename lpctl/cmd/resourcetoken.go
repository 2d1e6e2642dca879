/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	apitypes "k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/gaborbk/livepatch-k8s-operator/api/v1alpha1"
	"github.com/gaborbk/livepatch-k8s-operator/internal/operator"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/component"
)

const getResourceTokenUsage = `Exchange the configured contract token for a patch sync resource token,
and store it in the server's resource token secret. The running server
picks up the new token on its next restart.`

type getResourceTokenOptions struct {
	contractToken string
	show          bool
}

func newGetResourceTokenCmd() *cobra.Command {
	options := &getResourceTokenOptions{}

	cmd := &cobra.Command{
		Use:          "get-resource-token NAME",
		Short:        "Exchange the contract token for a patch sync token",
		Long:         getResourceTokenUsage,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := args[0]
			namespace := c.Flag("namespace").Value.String()
			ctx := context.TODO()

			clnt, err := getClient(c.Flag("kubeconfig").Value.String())
			if err != nil {
				return err
			}

			server := &v1alpha1.LivepatchServer{}
			if err := clnt.Get(ctx, apitypes.NamespacedName{Namespace: namespace, Name: name}, server); err != nil {
				return err
			}

			if server.Spec.Contracts != nil && server.Spec.Contracts.Airgapped != nil {
				return fmt.Errorf("server %s/%s runs air-gapped; there is no contracts service to fetch a token from", namespace, name)
			}
			if server.Spec.PatchSync != nil && server.Spec.PatchSync.TokenSecret != nil {
				return fmt.Errorf("server %s/%s has an explicit patch sync token configured; remove spec.patchSync.tokenSecret first", namespace, name)
			}

			contractsURL := ""
			if server.Spec.Contracts != nil {
				contractsURL = server.Spec.Contracts.URL
			}

			contractToken := options.contractToken
			if contractToken == "" {
				if server.Spec.Contracts == nil || server.Spec.Contracts.ContractTokenSecret == nil {
					return fmt.Errorf("server %s/%s has no contract token configured; pass one with --contract-token", namespace, name)
				}
				if err := component.ResolveReferences(ctx, clnt, server); err != nil {
					return err
				}
				contractToken = string(server.Spec.Contracts.ContractTokenSecret.Value())
			}

			resourceToken, err := operator.NewContractsClient(contractsURL).FetchResourceToken(ctx, contractToken)
			if err != nil {
				return err
			}

			secret := &corev1.Secret{
				ObjectMeta: metav1.ObjectMeta{
					Namespace: namespace,
					Name:      operator.ResourceTokenSecretName(name),
				},
			}
			if err := controllerutil.SetControllerReference(server, secret, clnt.Scheme()); err != nil {
				return err
			}
			secret.StringData = map[string]string{"token": resourceToken}
			if err := clnt.Create(ctx, secret); err != nil {
				if !apierrors.IsAlreadyExists(err) {
					return err
				}
				existing := &corev1.Secret{}
				if err := clnt.Get(ctx, apitypes.NamespacedName{Namespace: namespace, Name: secret.Name}, existing); err != nil {
					return err
				}
				existing.StringData = secret.StringData
				if err := clnt.Update(ctx, existing); err != nil {
					return err
				}
			}

			if options.show {
				fmt.Printf("%s\n", resourceToken)
			} else {
				fmt.Printf("Resource token stored in secret %s/%s\n", namespace, secret.Name)
			}
			return nil
		},
		ValidArgsFunction: func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if names, ok := completeServerNames(c, args); ok {
				return names, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&options.contractToken, "contract-token", "", "Contract token to exchange; defaults to the token configured in spec.contracts.contractTokenSecret")
	flags.BoolVar(&options.show, "show", false, "Print the fetched resource token instead of a confirmation message")

	return cmd
}

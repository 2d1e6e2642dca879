/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apitypes "k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/gaborbk/livepatch-k8s-operator/api/v1alpha1"
	"github.com/gaborbk/livepatch-k8s-operator/internal/operator"
)

const restartUsage = `Trigger a rolling restart of the Livepatch server pods`

func newRestartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "restart NAME",
		Short:        "Restart server pods",
		Long:         restartUsage,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := args[0]
			namespace := c.Flag("namespace").Value.String()

			clnt, err := getClient(c.Flag("kubeconfig").Value.String())
			if err != nil {
				return err
			}

			server := &v1alpha1.LivepatchServer{}
			if err := clnt.Get(context.TODO(), apitypes.NamespacedName{Namespace: namespace, Name: name}, server); err != nil {
				return err
			}

			patch := client.MergeFrom(server.DeepCopy())
			if server.Annotations == nil {
				server.Annotations = make(map[string]string)
			}
			restartedAt := time.Now().UTC().Format(time.RFC3339)
			server.Annotations[operator.AnnotationKeyRestart] = restartedAt
			if err := clnt.Patch(context.TODO(), server, patch); err != nil {
				return err
			}

			fmt.Printf("Restart of %s/%s requested (at %s)\n", namespace, name, restartedAt)
			return nil
		},
		ValidArgsFunction: func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if names, ok := completeServerNames(c, args); ok {
				return names, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"time"

	"github.com/sap/go-generics/slices"
	"github.com/spf13/cobra"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/cli-runtime/pkg/genericclioptions"

	"github.com/gaborbk/livepatch-k8s-operator/internal/operator"
)

const (
	fullName  = operator.ReconcilerName
	shortName = "lpctl"
)

const rootUsage = `Manage Livepatch server instances running on Kubernetes

Common actions for lpctl:
- lpctl status               Show the status of a Livepatch server
- lpctl ls                   List Livepatch servers
- lpctl restart              Trigger a rolling restart of the server pods
- lpctl get-resource-token   Exchange the contract token for a patch sync token
`

func newRootCmd() *cobra.Command {
	configFlags := genericclioptions.NewConfigFlags(true)
	configFlags.Namespace = ref("default")

	cmd := &cobra.Command{
		Use:          shortName,
		Short:        "Manage Livepatch server instances",
		Long:         rootUsage,
		SilenceUsage: true,
	}

	cmd.Flags().SortFlags = false
	configFlags.AddFlags(cmd.PersistentFlags())

	if err := cmd.RegisterFlagCompletionFunc("namespace", func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if clnt, err := getClient(c.Flag("kubeconfig").Value.String()); err == nil {
			namespaceList := &corev1.NamespaceList{}
			ctx, cancel := context.WithTimeout(context.TODO(), 3*time.Second)
			defer cancel()
			if err := clnt.List(ctx, namespaceList); err == nil {
				return slices.Collect(namespaceList.Items, func(namespace corev1.Namespace) string { return namespace.Name }), cobra.ShellCompDirectiveNoFileComp
			}
		}
		return nil, cobra.ShellCompDirectiveDefault
	}); err != nil {
		panic(err)
	}

	cmd.AddCommand(
		newVersionCmd(),
		newStatusCmd(),
		newListCmd(),
		newRestartCmd(),
		newGetResourceTokenCmd(),
	)

	return cmd
}

func Execute() error {
	return newRootCmd().Execute()
}

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sap/go-generics/slices"
	"github.com/spf13/cobra"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/gaborbk/livepatch-k8s-operator/api/v1alpha1"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/reconciler"
)

func ref[T any](x T) *T {
	return &x
}

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}

func getClient(kubeConfigPath string) (client.Client, error) {
	if kubeConfigPath == "" {
		kubeConfigPath = os.Getenv("KUBECONFIG")
	}
	if kubeConfigPath == "" {
		return nil, fmt.Errorf("no kubeconfig was specified")
	}
	kubeConfig, err := os.ReadFile(kubeConfigPath)
	if err != nil {
		return nil, err
	}
	config, err := clientcmd.RESTConfigFromKubeConfig(kubeConfig)
	if err != nil {
		return nil, err
	}
	scheme := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(v1alpha1.AddToScheme(scheme))
	return client.New(config, client.Options{Scheme: scheme})
}

func formatTimestamp(t time.Time) string {
	d := time.Since(t)
	if d > 24*time.Hour {
		return fmt.Sprintf("%dd", d/(24*time.Hour))
	} else if d > time.Hour {
		return fmt.Sprintf("%dh", d/time.Hour)
	} else if d > time.Minute {
		return fmt.Sprintf("%dm", d/time.Minute)
	} else {
		return fmt.Sprintf("%ds", d/time.Second)
	}
}

type serverDetails struct {
	Namespace       string `json:"namespace"`
	Name            string `json:"name"`
	State           string `json:"state"`
	Reason          string `json:"reason,omitempty"`
	Message         string `json:"message,omitempty"`
	NumAllObjects   int64  `json:"numAllObjects"`
	NumReadyObjects int64  `json:"numReadyObjects"`
	CreatedAt       string `json:"createdAt"`
	LastObservedAt  string `json:"lastObservedAt,omitempty"`
}

func getServerDetails(server *v1alpha1.LivepatchServer) *serverDetails {
	status := server.GetStatus()
	details := &serverDetails{
		Namespace:       server.Namespace,
		Name:            server.Name,
		State:           string(status.State),
		NumAllObjects:   int64(len(status.Inventory)),
		NumReadyObjects: int64(slices.Count(status.Inventory, func(item *reconciler.InventoryItem) bool { return item.Phase == reconciler.PhaseReady })),
		CreatedAt:       formatTimestamp(server.CreationTimestamp.Time),
	}
	for _, condition := range status.Conditions {
		if condition.Type == "Ready" {
			details.Reason = condition.Reason
			details.Message = condition.Message
		}
	}
	if status.LastObservedAt != nil {
		details.LastObservedAt = formatTimestamp(status.LastObservedAt.Time)
	}
	return details
}

// completeServerNames supplies shell completion for commands taking a
// LivepatchServer name as first argument.
func completeServerNames(c *cobra.Command, args []string) ([]string, bool) {
	if len(args) > 0 {
		return nil, false
	}
	clnt, err := getClient(c.Flag("kubeconfig").Value.String())
	if err != nil {
		return nil, false
	}
	namespace := c.Flag("namespace").Value.String()
	if namespace == "" {
		namespace = "default"
	}
	ctx, cancel := context.WithTimeout(context.TODO(), 3*time.Second)
	defer cancel()
	serverList := &v1alpha1.LivepatchServerList{}
	if err := clnt.List(ctx, serverList, client.InNamespace(namespace)); err != nil {
		return nil, false
	}
	return slices.Collect(serverList.Items, func(server v1alpha1.LivepatchServer) string { return server.Name }), true
}

/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sap/go-generics/slices"
	"github.com/spf13/cobra"

	"sigs.k8s.io/controller-runtime/pkg/client"
	kyaml "sigs.k8s.io/yaml"

	"github.com/gaborbk/livepatch-k8s-operator/api/v1alpha1"
)

const listUsage = `List Livepatch servers`

type listOptions struct {
	allNamespaces bool
	outputFormat  string
}

func newListCmd() *cobra.Command {
	options := &listOptions{}

	cmd := &cobra.Command{
		Use:          "list",
		Aliases:      []string{"ls"},
		Short:        "List Livepatch servers",
		Long:         listUsage,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			switch options.outputFormat {
			case "table", "yaml", "yamlstream", "json":
				return nil
			default:
				return fmt.Errorf("invalid value for flag --%s: %s", "output", options.outputFormat)
			}
		},
		RunE: func(c *cobra.Command, args []string) error {
			namespace := c.Flag("namespace").Value.String()
			if options.allNamespaces {
				namespace = ""
			}

			clnt, err := getClient(c.Flag("kubeconfig").Value.String())
			if err != nil {
				return err
			}

			serverList := &v1alpha1.LivepatchServerList{}
			if err := clnt.List(context.TODO(), serverList, client.InNamespace(namespace)); err != nil {
				return err
			}
			servers := serverList.Items

			switch options.outputFormat {
			case "table":
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n", "NAMESPACE", "NAME", "STATE", "OBJECTS", "READY", "CREATED")
				for i := range servers {
					details := getServerDetails(&servers[i])
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t\n",
						details.Namespace,
						details.Name,
						details.State,
						details.NumAllObjects,
						details.NumReadyObjects,
						details.CreatedAt,
					)
				}
				w.Flush()
			case "yaml":
				fmt.Printf("%s", string(must(kyaml.Marshal(slices.Collect(servers, func(server v1alpha1.LivepatchServer) *serverDetails { return getServerDetails(&server) })))))
			case "yamlstream":
				for i := range servers {
					fmt.Printf("---\n%s", must(kyaml.Marshal(getServerDetails(&servers[i]))))
				}
			case "json":
				fmt.Printf("%s\n", string(must(json.MarshalIndent(slices.Collect(servers, func(server v1alpha1.LivepatchServer) *serverDetails { return getServerDetails(&server) }), "", "  "))))
			}
			return nil
		},
		ValidArgsFunction: func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&options.allNamespaces, "all-namespaces", "A", false, "List servers across all namespaces")
	flags.StringVarP(&options.outputFormat, "output", "o", "table", "Output format; one of \"table\", \"yaml\", \"yamlstream\" or \"json\"")

	return cmd
}

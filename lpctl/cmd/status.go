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

	"github.com/spf13/cobra"

	apitypes "k8s.io/apimachinery/pkg/types"

	kyaml "sigs.k8s.io/yaml"

	"github.com/gaborbk/livepatch-k8s-operator/api/v1alpha1"
)

const statusUsage = `Show the status of a Livepatch server`

type statusOptions struct {
	outputFormat string
}

func newStatusCmd() *cobra.Command {
	options := &statusOptions{}

	cmd := &cobra.Command{
		Use:          "status NAME",
		Short:        "Show server status",
		Long:         statusUsage,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		PreRunE: func(c *cobra.Command, args []string) error {
			switch options.outputFormat {
			case "table", "yaml", "json":
				return nil
			default:
				return fmt.Errorf("invalid value for flag --%s: %s", "output", options.outputFormat)
			}
		},
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

			details := getServerDetails(server)
			switch options.outputFormat {
			case "table":
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintf(w, "%s:\t%s\t\n", "Namespace", details.Namespace)
				fmt.Fprintf(w, "%s:\t%s\t\n", "Name", details.Name)
				fmt.Fprintf(w, "%s:\t%s\t\n", "State", details.State)
				if details.Message != "" {
					fmt.Fprintf(w, "%s:\t%s\t\n", "Message", details.Message)
				}
				fmt.Fprintf(w, "%s:\t%d\t\n", "Number of objects", details.NumAllObjects)
				fmt.Fprintf(w, "%s:\t%d\t\n", "Number of ready objects", details.NumReadyObjects)
				fmt.Fprintf(w, "%s:\t%s\t\n", "Created at", details.CreatedAt)
				if details.LastObservedAt != "" {
					fmt.Fprintf(w, "%s:\t%s\t\n", "Last observed at", details.LastObservedAt)
				}
				w.Flush()
			case "yaml":
				fmt.Printf("%s", string(must(kyaml.Marshal(details))))
			case "json":
				fmt.Printf("%s\n", string(must(json.MarshalIndent(details, "", "  "))))
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
	flags.StringVarP(&options.outputFormat, "output", "o", "table", "Output format; one of \"table\", \"yaml\" or \"json\"")

	return cmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVerbsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verbs",
		Short: "List every verb with its aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := a.engine.Registry()
			bold := color.New(color.Bold).SprintFunc()

			for _, verb := range reg.Verbs() {
				aliases := reg.Aliases(verb)
				if len(aliases) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), bold(verb))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n",
					bold(verb), strings.Join(aliases, ", "))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "expectctl version %s\n", version)
		},
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/armaexpected/catalog"
	"github.com/katalvlaran/armaexpected/expected/drivers"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List drivers with their classes and probes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, d := range drivers.All() {
				desc := d.Describe()
				classes := make([]string, len(desc.Classes))
				for k, c := range desc.Classes {
					classes[k] = c.String()
				}
				fmt.Fprintf(out, "%s (%s)\n", desc.Name, strings.Join(classes, ", "))
				for _, p := range desc.Probes {
					fmt.Fprintf(out, "  %s\n", p)
				}
			}

			return nil
		},
	}
}

func newCatalogCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "catalog [class...]",
		Short: "Print the labeled samples of parameter classes",
		Long: `Prints one label per line for each class. With --all, prints every
supported class name with its sample count instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.New(a.cfg.CatalogOptions()...)
			out := cmd.OutOrStdout()
			if all {
				for _, c := range catalog.Classes() {
					if !c.Supported() {
						continue
					}
					seq, err := cat.Generate(c)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s\t%d\n", c, len(seq))
				}

				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("catalog: name at least one class or pass --all")
			}
			for _, name := range args {
				c, err := catalog.ParseClass(name)
				if err != nil {
					return err
				}
				seq, err := cat.Generate(c)
				if err != nil {
					return err
				}
				for _, l := range seq {
					fmt.Fprintln(out, l.Label)
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "summarize every supported class")

	return cmd
}

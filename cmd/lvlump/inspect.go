// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlump/model"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <model>",
		Short: "Describe a model without lumping it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.Load(args[0], model.WithLogger(a.logger))
			if err != nil {
				return err
			}
			sys := m.System
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "model:       %s\n", m.Name)
			fmt.Fprintf(w, "variables:   %d (%s)\n", sys.Dim(), strings.Join(sys.Ring().Names(), ", "))
			fmt.Fprintf(w, "degree:      %d\n", sys.Degree())
			fmt.Fprintf(w, "jacobian:    %d monomials\n", len(sys.Jacobian().Monomials()))
			if err = sys.Validate(); err != nil {
				fmt.Fprintf(w, "warning:     %v\n", err)
			}
			fmt.Fprintf(w, "constraints: %d kept, %d dropped\n", m.Constraints.Len(), len(m.Constraints.Dropped()))
			for _, c := range m.Constraints.Forms() {
				fmt.Fprintf(w, "  %s\n", c.Format(sys.Ring()))
			}
			fmt.Fprint(w, "equations:\n")
			for _, line := range strings.Split(strings.TrimSuffix(sys.String(), "\n"), "\n") {
				fmt.Fprintf(w, "  %s\n", line)
			}

			return nil
		},
	}
}

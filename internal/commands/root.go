// Package commands wires the portal's CLI: a serve command running the
// HTTP service and an export command generating quotation PDFs without
// a server.
package commands

import (
	"github.com/spf13/cobra"
)

// Set via -ldflags at release time.
var (
	version = "0.3.0"
	commit  = "none"
)

// NewRootCmd assembles the portal CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portal",
		Short:         "ruamngan internal business portal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newExportCmd())
	return root
}

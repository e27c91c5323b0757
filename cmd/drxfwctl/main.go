// Package main implements drxfwctl, a command-line inspector for DRC/DRH
// firmware containers: tree dump, CRC-tree verification, and section
// extraction.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "drxfwctl",
		Short: "Inspect and verify DRC/DRH firmware containers",
		Long: `drxfwctl decodes a firmware blob, walks its section and resource
tree, and can verify its CRC-32 integrity tree or extract a raw section
payload.`,
	}

	root.AddCommand(newInspectCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newBlendCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	drxfw "github.com/drxtools/drxfw"
	"github.com/drxtools/drxfw/internal/resource"

	"github.com/briandowns/spinner"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <blob>",
		Short: "Decode a blob and print its section/resource tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			spin.Prefix = fmt.Sprintf("Decoding %s... ", path)
			spin.Start()
			blob, err := drxfw.Open(path)
			spin.Stop()
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}

			fmt.Printf("image version %d, block size 0x%x, sequence/session %d, kind %s\n",
				blob.ImageVersion, blob.BlockSize, blob.SequencePerSession, blob.Firmware.Kind)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Name", "Version", "Kind", "Size"})
			table.SetAutoFormatHeaders(true)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetBorder(false)

			for _, sec := range blob.Firmware.Sections {
				name := sec.Name()
				if rs, ok := sec.(*drxfw.ResourceSection); ok {
					table.Append([]string{string(name[:]), fmt.Sprint(rs.Version()), "resource", fmt.Sprintf("%d resources", len(rs.Resources()))})
					for _, r := range rs.Resources() {
						table.Append([]string{"  " + resourceLabel(r), "", r.WireKind().String(), fmt.Sprintf("%d bytes", len(r.Payload()))})
					}
					continue
				}
				table.Append([]string{string(name[:]), fmt.Sprint(sec.Version()), "generic", fmt.Sprintf("%d bytes", len(sec.ToBytes()))})
			}
			table.Render()
			return nil
		},
	}
}

func resourceLabel(r resource.Resource) string {
	return fmt.Sprintf("id 0x%04x", r.ID())
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	drxfw "github.com/drxtools/drxfw"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <blob> <section-name> <out>",
		Short: "Dump a section's raw payload bytes to a file",
		Long: `extract decodes a blob and writes the raw ToBytes() payload of the
named section (exactly 4 ASCII characters, e.g. "IMG_") to the output
path. A resource section's extracted bytes are its re-encoded descriptor
table and payload pool, not any single resource's payload.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			blobPath, sectionName, outPath := args[0], args[1], args[2]
			if len(sectionName) != 4 {
				return fmt.Errorf("section name must be exactly 4 characters, got %q", sectionName)
			}

			blob, err := drxfw.Open(blobPath)
			if err != nil {
				return fmt.Errorf("opening %s: %w", blobPath, err)
			}

			var name [4]byte
			copy(name[:], sectionName)

			sec, ok := blob.Section(name)
			if !ok {
				return fmt.Errorf("section %q not found in %s", sectionName, blobPath)
			}

			//nolint:gosec // G306: extracted section payloads are not sensitive
			if err := os.WriteFile(outPath, sec.ToBytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}

			fmt.Printf("wrote %d bytes to %s\n", len(sec.ToBytes()), outPath)
			return nil
		},
	}
}

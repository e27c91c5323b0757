package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	drxfw "github.com/drxtools/drxfw"
)

func newBlendCmd() *cobra.Command {
	var sectionFlag string

	cmd := &cobra.Command{
		Use:   "blend <blob> <resource-id> <pixels-file> <out>",
		Short: "Blend raw palette-index pixels into a bitmap resource and re-save",
		Long: `blend decodes a blob, looks up a BITMAP resource by id within the
given resource section (default "IMG_"), overwrites its pixel data with
the contents of pixels-file via BlendBitmap, and re-saves the blob.
pixels-file width/height must be passed via --width/--height; it is a
no-op if those exceed the target bitmap's own dimensions.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			blobPath, idStr, pixelsPath, outPath := args[0], args[1], args[2], args[3]

			id, err := strconv.ParseUint(idStr, 0, 16)
			if err != nil {
				return fmt.Errorf("parsing resource id %q: %w", idStr, err)
			}

			width, err := cmd.Flags().GetUint32("width")
			if err != nil {
				return err
			}
			height, err := cmd.Flags().GetUint32("height")
			if err != nil {
				return err
			}

			pixels, err := os.ReadFile(pixelsPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", pixelsPath, err)
			}

			blob, err := drxfw.Open(blobPath)
			if err != nil {
				return fmt.Errorf("opening %s: %w", blobPath, err)
			}

			var name [4]byte
			copy(name[:], sectionFlag)

			sec, ok := blob.Section(name)
			if !ok {
				return fmt.Errorf("resource section %q not found", sectionFlag)
			}
			rs, ok := sec.(*drxfw.ResourceSection)
			if !ok {
				return fmt.Errorf("section %q is not a resource section", sectionFlag)
			}
			bmp, ok := rs.Bitmap(uint16(id))
			if !ok {
				return fmt.Errorf("bitmap resource 0x%x not found in section %q", id, sectionFlag)
			}

			bmp.BlendBitmap(pixels, width, height)

			if err := blob.Save(outPath); err != nil {
				return fmt.Errorf("saving %s: %w", outPath, err)
			}
			fmt.Printf("blended %d bytes into resource 0x%x, wrote %s\n", len(pixels), id, outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&sectionFlag, "section", "IMG_", "resource section name (4 ASCII characters)")
	cmd.Flags().Uint32("width", 0, "pixel buffer width")
	cmd.Flags().Uint32("height", 0, "pixel buffer height")
	return cmd
}

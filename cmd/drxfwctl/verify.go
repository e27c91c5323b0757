package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	drxfw "github.com/drxtools/drxfw"
	"github.com/drxtools/drxfw/internal/utils"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <blob>",
		Short: "Verify a blob's CRC-32 integrity tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			_, err = drxfw.Load(data)
			if err == nil {
				fmt.Printf("%s: OK\n", path)
				return nil
			}

			var codecErr *utils.CodecError
			if errors.As(err, &codecErr) {
				fmt.Printf("%s: FAILED (%s: %s)\n", path, codecErr.Kind, codecErr.Context)
			} else {
				fmt.Printf("%s: FAILED (%v)\n", path, err)
			}
			os.Exit(1)
			return nil
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Charwekey/TechWrapSaga/internal/recap"
	"github.com/Charwekey/TechWrapSaga/internal/recap/raster"
)

var downloadDir string

var downloadCmd = &cobra.Command{
	Use:   "download <wrap-id>",
	Short: "Fetch a wrap and save its recap card as a PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid wrap id %q", args[0])
		}

		wrap, err := fetchWrap(cmd.Context(), apiBase, id)
		if err != nil {
			return err
		}

		img, err := raster.Capture(recap.Compose(wrap))
		if err != nil {
			// A capture failure must never leave a broken file behind;
			// surface the guidance and stop.
			var capErr *raster.CaptureError
			if errors.As(err, &capErr) {
				fmt.Fprintln(os.Stderr, capErr.Guidance())
			}
			return err
		}

		path := filepath.Join(downloadDir, raster.FileName(wrap.Name))
		if err := os.WriteFile(path, img, 0o644); err != nil {
			return fmt.Errorf("write image: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Saved", path)
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadDir, "output", "o", ".", "directory to write the PNG into")
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
	"github.com/Charwekey/TechWrapSaga/internal/recap"
	"github.com/Charwekey/TechWrapSaga/internal/recap/raster"
	"github.com/Charwekey/TechWrapSaga/internal/recap/svg"
)

var (
	renderInput  string
	renderFormat string
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a wrap JSON document to SVG or PNG without an API server",
	Long: `render reads a wrap document from a JSON file and runs the same
compose-and-capture pipeline the download command uses. Useful for theme
work and debugging without a running backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(renderInput)
		if err != nil {
			return err
		}
		var wrap domain.Wrap
		if err := json.Unmarshal(raw, &wrap); err != nil {
			return fmt.Errorf("parse wrap document: %w", err)
		}

		card := recap.Compose(wrap)

		var out []byte
		switch renderFormat {
		case "svg":
			out = svg.Render(card)
		case "png":
			out, err = raster.Capture(card)
			if err != nil {
				var capErr *raster.CaptureError
				if errors.As(err, &capErr) {
					fmt.Fprintln(os.Stderr, capErr.Guidance())
				}
				return err
			}
		default:
			return fmt.Errorf("unknown format %q (want svg or png)", renderFormat)
		}

		if renderOut == "-" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		if err := os.WriteFile(renderOut, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", renderOut)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderInput, "input", "", "path to a wrap JSON document (required)")
	renderCmd.Flags().StringVar(&renderFormat, "format", "svg", "output format: svg or png")
	renderCmd.Flags().StringVar(&renderOut, "out", "-", "output file, or - for stdout")
	//nolint:errcheck — flag exists, registered one line above
	renderCmd.MarkFlagRequired("input")
}

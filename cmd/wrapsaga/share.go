package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Charwekey/TechWrapSaga/internal/service"
	"github.com/Charwekey/TechWrapSaga/internal/sharelink"
)

var shareCmd = &cobra.Command{
	Use:   "share <wrap-id>",
	Short: "Share a recap link via the platform share facilities",
	Long: `share builds the canonical recap URL and tries, in order: the native
share facility, the system clipboard, and finally a manual copy prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid wrap id %q", args[0])
		}

		url := service.ShareURL(shareBase, id)
		out := cmd.OutOrStdout()

		switch sharelink.New(out).Share(url) {
		case sharelink.OutcomeNative:
			fmt.Fprintln(out, "Opened share link:", url)
		case sharelink.OutcomeCancelled:
			// User dismissed the share sheet — a normal, silent outcome.
		}
		return nil
	},
}

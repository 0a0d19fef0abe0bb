package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yildizm/testimonialhero/internal/notify"
	"github.com/yildizm/testimonialhero/internal/session"
	"github.com/yildizm/testimonialhero/internal/testimonial"
)

func newLinkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "link <email>",
		Short: "Print the testimonial collection link for an email",
		Long: `Print the personal collection link the dashboard shows for an email.

The email is checked the same way the landing page checks it: it must be
non-empty and contain an '@'.`,
		Example: `  testimonialhero link jane@acme.com`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			if err := session.ValidateEmail(email); err != nil {
				var rejection *notify.Rejection
				if errors.As(err, &rejection) {
					return fmt.Errorf("%s: %s", rejection.Title, rejection.Description)
				}
				return err
			}

			links := linksFromConfig(GetGlobalConfig().Links)
			fmt.Fprintln(cmd.OutOrStdout(), testimonial.WithScheme(links.Personal(email)))
			return nil
		},
	}
}

// Command verify-form fills in the verification form and submits it to the intake endpoint.
package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/navarrastar/resume-verify/pkg/clients/intake"
	"github.com/navarrastar/resume-verify/pkg/config"
	"github.com/navarrastar/resume-verify/pkg/form"
	"github.com/navarrastar/resume-verify/pkg/utils"
)

const appName = "verify-form"

func main() {
	_ = godotenv.Load()
	utils.InitLogger(appName)

	if err := newRootCmd(config.LoadConfig()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var email, linkedin, phone string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Schedule an AI verification call for a candidate",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := intake.NewClient(strings.TrimRight(cfg.BackendURL, "/"), cfg.RequestTimeout)
			controller := form.NewController(client, form.LogNotifier{Logger: utils.Logger})

			controller.UpdateField(form.FieldEmail, email)
			controller.UpdateField(form.FieldLinkedIn, linkedin)
			controller.UpdateField(form.FieldPhone, phone)

			err := controller.Submit(context.Background())

			var verr *form.ValidationError
			if errors.As(err, &verr) {
				_ = cmd.Usage()
			}
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&linkedin, "linkedin", "", "LinkedIn profile URL")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "verification backend base URL")
	cmd.Flags().DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout")

	return cmd
}

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rental/config"
	"rental/helper"
	"rental/shared/logger"
)

func command(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return helper.Runner(config.Get(), action)
		},
	}
}

func main() {
	logger.InitLogger()

	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Rental database migrations",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		command(helper.ActionUp, "Apply every pending migration"),
		command(helper.ActionDown, "Roll back the latest migration"),
		command(helper.ActionStepUp, "Apply the next pending migration"),
		command(helper.ActionDrop, "Roll back every migration"),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}

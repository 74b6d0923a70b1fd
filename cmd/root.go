package cmd

import (
	"fmt"
	"os"

	"catalog-web/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "catalog-web",
	Short: "Catalog Web Service",
	Long: `Catalog Web serves catalog item pages.
Each page is loaded from the backend catalog API at request time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// The item command already printed the backend failure
		if isUpstreamFailure(err) {
			os.Exit(1)
		}

		// Console format with the development config gives ISO8601 timestamps for CLI users
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

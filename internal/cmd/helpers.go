package cmd

import (
	"github.com/spf13/cobra"

	"github.com/netham45/fwbump/internal/config"
	"github.com/netham45/fwbump/internal/header"
	"github.com/netham45/fwbump/internal/slogger"
)

func defaultFile() string {
	if appConfig != nil && appConfig.Default.File != "" {
		return appConfig.Default.File
	}
	return config.DefaultHeaderFile
}

func defaultKind() string {
	if appConfig != nil && appConfig.Default.Kind != "" {
		return appConfig.Default.Kind
	}
	return config.DefaultKind
}

func productName() string {
	if appConfig != nil && appConfig.Product != "" {
		return appConfig.Product
	}
	return config.DefaultProduct
}

func newUpdater(cmd *cobra.Command) *header.Updater {
	return &header.Updater{
		Product: productName(),
		Logger:  slogger.L(cmd.Context()),
	}
}

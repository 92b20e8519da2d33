package cmd

import (
	"github.com/spf13/cobra"
)

const serviceName = "txnotify"

// Version is overridden at build time with -ldflags "-X txnotify/cmd.Version=...".
var Version = "dev"

// NewRootCmd builds the txnotify command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   serviceName,
		Short: "Human readable status messages for uniswap transactions",
		Long: `txnotify turns the lifecycle of uniswap exchange transactions
(sent, pending, confirmed, failed) into short status messages.

It can run as a service that tracks transactions on a node and publishes
the messages, or format a single message from the command line.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newFormatCmd(),
		newVersionCmd(),
	)

	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

package cmd

import (
	"errors"
	"fmt"

	"txnotify/internal/config"
	"txnotify/internal/message"

	"github.com/spf13/cobra"
)

var (
	errUnknownEvent error = errors.New("unknown event code")
	errNoMessage    error = errors.New("no message for this transaction")
)

type formatOptions struct {
	to        string
	hash      string
	params    []string
	networkID string
}

func newFormatCmd() *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format <methodName> <eventCode>",
		Short: "Print the status message of a transaction",
		Long: `Print the message shown for a transaction calling methodName when it
reaches eventCode (txSent, txPending, txConfirmed or txFailed).

Contract call arguments are passed in order with --param, the called
contract with --to. Exits with an error when there is no message.`,
		Example: `  txnotify format approve txSent --param 0x2E642b8D59B45a1D8c5aEf716A84FF44ea665914
  txnotify format ethToTokenSwapInput txConfirmed --to 0x09cabEC1eAd1c0Ba254B09efb3EE13841712bE14 --param 1 --param 1700000000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "address the transaction is sent to")
	cmd.Flags().StringVar(&opts.hash, "hash", "", "transaction hash")
	cmd.Flags().StringArrayVarP(&opts.params, "param", "p", nil, "contract call argument, repeat in call order")
	cmd.Flags().StringVar(&opts.networkID, "network-id", "", "network id, defaults to NETWORK_ID")

	return cmd
}

func runFormat(cmd *cobra.Command, opts *formatOptions, methodName, eventCode string) error {
	cfg, err := config.NewFormat()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.networkID != "" {
		cfg.NetworkID = opts.networkID
	}

	code, ok := message.ParseEventCode(eventCode)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownEvent, eventCode)
	}

	book, err := cfg.AddressBook()
	if err != nil {
		return fmt.Errorf("load address book: %w", err)
	}
	descriptor := message.Descriptor{
		Contract: message.Contract{
			MethodName: methodName,
			Parameters: opts.params,
		},
		Transaction: message.Transaction{
			Hash: opts.hash,
			To:   opts.to,
		},
	}

	text, ok := message.Format(methodName, code, descriptor, book.Table(cfg.Network()))
	if !ok {
		return errNoMessage
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

package commands

import (
	"io"

	"github.com/spf13/cobra"

	"techangel/internal/domain"
)

func toEVMCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-evm <ss58-address>",
		Short: "Derive the Ethereum (H160) address of an SS58 address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := api.ToEVM(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), res, func(w io.Writer) {
				field(w, "EVM", res.EVM)
				field(w, "Checksummed", res.Checksummed)
				field(w, "Public key", res.PublicKey.Hex())
				field(w, "SS58 format", res.Format)
			})
		},
	}
}

func toSS58Cmd() *cobra.Command {
	var format uint16
	cmd := &cobra.Command{
		Use:   "to-ss58 <0x-address>",
		Short: "Map an Ethereum address to its SS58 account",
		Long: "Map an Ethereum address to its SS58 account.\n\n" +
			"The mapping hashes the address, so converting the result back with\n" +
			"to-evm does not give the original address.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var f *domain.SS58Format
			if cmd.Flags().Changed("format") {
				v := domain.SS58Format(format)
				f = &v
			}
			res, err := api.ToSS58(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), res, func(w io.Writer) {
				field(w, "SS58", res.SS58)
				field(w, "Public key", res.PublicKey.Hex())
				field(w, "SS58 format", res.Format)
			})
		},
	}
	cmd.Flags().Uint16Var(&format, "format", 0, "SS58 network prefix, e.g. 0 Polkadot, 2 Kusama (default from config)")
	return cmd
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <address>",
		Short: "Show the network prefix and public key of an SS58 address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := api.Decode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), res, func(w io.Writer) {
				field(w, "SS58 format", res.Format)
				field(w, "Public key", res.PublicKey.Hex())
			})
		},
	}
}

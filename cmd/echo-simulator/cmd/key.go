// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ava-labs/echovm/client"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/crypto/ed25519"
	"github.com/ava-labs/echovm/utils"
)

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage ed25519 keys",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Generate a private key, e.g. for the faucet_key setting",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				k, err := ed25519.GeneratePrivateKey()
				if err != nil {
					return err
				}
				printKey(k)
				return nil
			},
		},
		&cobra.Command{
			Use:   "address [hex private key]",
			Short: "Print the address of a private key",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				k, err := ed25519.HexToPrivateKey(args[0])
				if err != nil {
					return err
				}
				printKey(k)
				return nil
			},
		},
		&cobra.Command{
			Use:   "derive [authorized|vending] [program] [authority|mint] [seed|price]",
			Short: "Print the address and bump of an echo buffer",
			Args:  cobra.ExactArgs(4),
			RunE: func(_ *cobra.Command, args []string) error {
				programID, err := codec.ParseAddress(args[1])
				if err != nil {
					return err
				}
				key, err := codec.ParseAddress(args[2])
				if err != nil {
					return err
				}
				value, err := strconv.ParseUint(args[3], 10, 64)
				if err != nil {
					return err
				}
				c := client.New(programID)
				var (
					addr codec.Address
					bump uint8
				)
				switch args[0] {
				case "authorized":
					addr, bump, err = c.AuthorizedBuffer(key, value)
				case "vending":
					addr, bump, err = c.VendingBuffer(key, value)
				default:
					return fmt.Errorf("%w: unknown buffer kind %q", ErrInvalidMethod, args[0])
				}
				if err != nil {
					return err
				}
				utils.Outf("{{yellow}}address:{{/}} %s\n", addr)
				utils.Outf("{{yellow}}bump:{{/}} %d\n", bump)
				return nil
			},
		},
	)
	return cmd
}

func printKey(k ed25519.PrivateKey) {
	utils.Outf("{{yellow}}private key:{{/}} %s\n", k.Hex())
	utils.Outf("{{yellow}}address:{{/}} %s\n", k.Address())
}

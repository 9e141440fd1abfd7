// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"crypto/rand"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/ava-labs/counter/utils"
)

func newAccountCmd(c *counterCLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage counter accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newAccountCreateCmd(c))
	return cmd
}

func newAccountCreateCmd(c *counterCLI) *cobra.Command {
	var keyStr string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Allocate a zeroed counter account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := newAccountKey(keyStr)
			if err != nil {
				return err
			}
			if err := c.host.CreateAccount(cmd.Context(), key); err != nil {
				return err
			}
			utils.Outf("{{green}}created account:{{/}} %s\n", key)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyStr, "key", "", "account key (random if empty)")
	return cmd
}

// newAccountKey parses [s] or, if it is empty, returns a random key.
func newAccountKey(s string) (ids.ShortID, error) {
	if len(s) > 0 {
		return ids.ShortFromString(s)
	}
	b := make([]byte, ids.ShortIDLen)
	if _, err := rand.Read(b); err != nil {
		return ids.ShortEmpty, err
	}
	return ids.ToShortID(b)
}

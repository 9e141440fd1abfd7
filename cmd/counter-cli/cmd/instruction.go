// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/ava-labs/counter/codec"
	"github.com/ava-labs/counter/instruction"
	"github.com/ava-labs/counter/utils"
)

type instructionCmd struct {
	use   string
	short string
	new   func(value uint32) instruction.Instruction
}

var (
	incrementCmd = instructionCmd{
		use:   "increment [account] [value]",
		short: "Add value to the counter",
		new:   func(v uint32) instruction.Instruction { return &instruction.Increment{Value: v} },
	}
	decrementCmd = instructionCmd{
		use:   "decrement [account] [value]",
		short: "Subtract value from the counter",
		new:   func(v uint32) instruction.Instruction { return &instruction.Decrement{Value: v} },
	}
	updateCmd = instructionCmd{
		use:   "update [account] [value]",
		short: "Set the counter to value",
		new:   func(v uint32) instruction.Instruction { return &instruction.Update{Value: v} },
	}
)

func newInstructionCmd(c *counterCLI, ic instructionCmd) *cobra.Command {
	return &cobra.Command{
		Use:   ic.use,
		Short: ic.short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := ids.ShortFromString(args[0])
			if err != nil {
				return err
			}
			value, err := utils.ParseUint32(args[1])
			if err != nil {
				return err
			}
			return c.send(cmd.Context(), key, ic.new(value))
		},
	}
}

func newResetCmd(c *counterCLI) *cobra.Command {
	return &cobra.Command{
		Use:   "reset [account]",
		Short: "Set the counter to zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := ids.ShortFromString(args[0])
			if err != nil {
				return err
			}
			return c.send(cmd.Context(), key, &instruction.Reset{})
		},
	}
}

func newInvokeCmd(c *counterCLI) *cobra.Command {
	return &cobra.Command{
		Use:   "invoke [account] [instruction hex]",
		Short: "Run a raw instruction against an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := ids.ShortFromString(args[0])
			if err != nil {
				return err
			}
			data, err := codec.ParseBytes(args[1])
			if err != nil {
				return err
			}
			return c.invoke(cmd.Context(), key, data)
		},
	}
}

func newGetCmd(c *counterCLI) *cobra.Command {
	return &cobra.Command{
		Use:   "get [account]",
		Short: "Print the counter held by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := ids.ShortFromString(args[0])
			if err != nil {
				return err
			}
			counter, err := c.host.Counter(cmd.Context(), key)
			if err != nil {
				return err
			}
			utils.Outf("{{yellow}}counter:{{/}} %d\n", counter)
			return nil
		},
	}
}

func (c *counterCLI) send(ctx context.Context, key ids.ShortID, i instruction.Instruction) error {
	data, err := instruction.Pack(i)
	if err != nil {
		return err
	}
	return c.invoke(ctx, key, data)
}

func (c *counterCLI) invoke(ctx context.Context, key ids.ShortID, data []byte) error {
	if err := c.host.Invoke(ctx, []ids.ShortID{key}, data); err != nil {
		return fmt.Errorf("invocation failed: %w", err)
	}
	counter, err := c.host.Counter(ctx, key)
	if err != nil {
		return err
	}
	utils.Outf("{{green}}applied{{/}} %s {{yellow}}counter:{{/}} %d\n", codec.Bytes(data), counter)
	return nil
}

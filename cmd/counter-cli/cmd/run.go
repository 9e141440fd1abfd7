// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(c *counterCLI) *cobra.Command {
	return &cobra.Command{
		Use:   "run [path]",
		Short: "Run a counter plan (JSON or YAML, - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				planBytes []byte
				err       error
			)
			if args[0] == "-" {
				planBytes, err = io.ReadAll(cmd.InOrStdin())
			} else {
				planBytes, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			plan, err := unmarshalPlan(planBytes)
			if err != nil {
				return err
			}
			return c.runPlan(cmd.Context(), plan, cmd.OutOrStdout())
		},
	}
}

// runPlan executes every step of [plan] and writes one JSON response per
// step to [w]. It returns ErrPlanFailed if any step did not meet its
// expectation.
func (c *counterCLI) runPlan(ctx context.Context, plan *Plan, w io.Writer) error {
	key, err := newAccountKey("")
	if err != nil {
		return err
	}
	if err := c.host.CreateAccount(ctx, key); err != nil {
		return err
	}
	c.log.Info("running plan",
		zap.String("name", plan.Name),
		zap.Stringer("account", key),
		zap.Int("steps", len(plan.Steps)),
	)

	failed := 0
	for i := range plan.Steps {
		resp := c.runStep(ctx, key, i, &plan.Steps[i])
		if len(resp.Error) > 0 {
			failed++
		}
		if _, err := fmt.Fprintln(w, string(resp.Marshal())); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d steps", ErrPlanFailed, failed, len(plan.Steps))
	}
	return nil
}

func (c *counterCLI) runStep(ctx context.Context, key ids.ShortID, id int, step *Step) *Response {
	resp := NewResponse(id)
	data, err := step.Bytes()
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.Result.Instruction = data

	invokeErr := c.host.Invoke(ctx, []ids.ShortID{key}, data)
	counter, err := c.host.Counter(ctx, key)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.Result.Counter = counter

	switch {
	case invokeErr != nil && !step.ExpectErr:
		resp.Error = invokeErr.Error()
	case invokeErr == nil && step.ExpectErr:
		resp.Error = "expected step to fail"
	case step.Expect != nil && *step.Expect != counter:
		resp.Error = fmt.Sprintf("expected counter %d, got %d", *step.Expect, counter)
	}
	return resp
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/counter/codec"
	"github.com/ava-labs/counter/consts"
	"github.com/ava-labs/counter/instruction"
)

var (
	ErrInvalidConfigFormat = errors.New("invalid plan format")
	ErrInvalidStep         = errors.New("invalid step")
	ErrPlanFailed          = errors.New("plan failed")
)

type Plan struct {
	// The name of the plan.
	Name string `json:"name" yaml:"name"`
	// A description of the plan.
	Description string `json:"description" yaml:"description"`
	// Steps run in order against a single fresh account.
	Steps []Step `json:"steps" yaml:"steps"`
}

type Step struct {
	// Description of the step.
	Description string `json:"description" yaml:"description"`
	// One of increment, decrement, update or reset. Ignored if Raw is set.
	Instruction string `json:"instruction" yaml:"instruction"`
	// Operand for increment, decrement and update.
	Value uint32 `json:"value" yaml:"value"`
	// Raw hex instruction bytes, sent as is.
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`
	// Expected counter after the step. Unchecked if nil.
	Expect *uint32 `json:"expect,omitempty" yaml:"expect,omitempty"`
	// Expect the step to fail.
	ExpectErr bool `json:"expectErr,omitempty" yaml:"expectErr,omitempty"`
}

// Bytes returns the wire encoding of the step's instruction.
func (s *Step) Bytes() ([]byte, error) {
	if len(s.Raw) > 0 {
		return codec.ParseBytes(s.Raw)
	}
	var i instruction.Instruction
	switch s.Instruction {
	case instruction.Name(consts.IncrementID):
		i = incrementCmd.new(s.Value)
	case instruction.Name(consts.DecrementID):
		i = decrementCmd.new(s.Value)
	case instruction.Name(consts.UpdateID):
		i = updateCmd.new(s.Value)
	case instruction.Name(consts.ResetID):
		i = &instruction.Reset{}
	default:
		return nil, fmt.Errorf("%w: unknown instruction %q", ErrInvalidStep, s.Instruction)
	}
	return instruction.Pack(i)
}

func NewResponse(id int) *Response {
	return &Response{
		ID: id,
	}
}

type Response struct {
	// The index of the step that generated this response.
	ID int `json:"id"`
	// The result of the step.
	Result Result `json:"result,omitempty"`
	// The error message if available.
	Error string `json:"error,omitempty"`
}

type Result struct {
	// The instruction that was sent.
	Instruction codec.Bytes `json:"instruction,omitempty"`
	// The counter after the step has completed.
	Counter uint32 `json:"counter"`
}

func (r *Response) Marshal() []byte {
	b, err := json.Marshal(r)
	if err != nil {
		return []byte(`{"error": "failed to marshal response"}`)
	}
	return b
}

func unmarshalPlan(bytes []byte) (*Plan, error) {
	var p Plan
	switch {
	case isJSON(bytes):
		if err := json.Unmarshal(bytes, &p); err != nil {
			return nil, err
		}
	case isYAML(bytes):
		if err := yaml.UnmarshalStrict(bytes, &p); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidConfigFormat
	}
	if len(p.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidConfigFormat)
	}
	return &p, nil
}

func isJSON(b []byte) bool {
	var js map[string]interface{}
	return json.Unmarshal(b, &js) == nil
}

func isYAML(b []byte) bool {
	var y map[string]interface{}
	return yaml.Unmarshal(b, &y) == nil
}

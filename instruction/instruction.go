// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instruction

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/counter/codec"
	"github.com/ava-labs/counter/consts"
)

var (
	ErrEmptyInstruction        = errors.New("empty instruction buffer")
	ErrUnrecognizedInstruction = errors.New("unrecognized instruction")
)

// Instruction is a decoded counter command.
type Instruction interface {
	codec.Typed
	fmt.Stringer

	// Apply returns the counter value that results from executing the
	// instruction against [counter]. Arithmetic wraps at 2^32.
	Apply(counter uint32) uint32

	// Marshal returns the payload that follows the type byte on the wire.
	Marshal() ([]byte, error)
}

var Registry *codec.TypeParser[Instruction]

var names = map[uint8]string{
	consts.IncrementID: "increment",
	consts.DecrementID: "decrement",
	consts.UpdateID:    "update",
	consts.ResetID:     "reset",
}

// Name returns the name of the instruction registered under [typeID].
func Name(typeID uint8) string {
	if name, ok := names[typeID]; ok {
		return name
	}
	return "unknown"
}

func init() {
	Registry = codec.NewTypeParser[Instruction]()

	errs := &wrappers.Errs{}
	errs.Add(
		Registry.Register(&Increment{}, UnmarshalIncrement),
		Registry.Register(&Decrement{}, UnmarshalDecrement),
		Registry.Register(&Update{}, UnmarshalUpdate),
		Registry.Register(&Reset{}, UnmarshalReset),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

// Unpack decodes the instruction in [data]. The first byte selects the
// instruction and bytes past the instruction's payload are ignored.
func Unpack(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInstruction
	}
	unmarshal, ok := Registry.LookupIndex(data[0])
	if !ok {
		return nil, fmt.Errorf("%w: tag=%d", ErrUnrecognizedInstruction, data[0])
	}
	return unmarshal(data[consts.ByteLen:])
}

// Pack encodes [i] in the format read by [Unpack].
func Pack(i Instruction) ([]byte, error) {
	payload, err := i.Marshal()
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, consts.ByteLen+len(payload))
	b = append(b, i.GetTypeID())
	return append(b, payload...), nil
}

func unmarshalOperand[T any](name string, b []byte) (*T, error) {
	if len(b) < consts.Uint32Len {
		return nil, fmt.Errorf(
			"%w: %w: %s operand requires %d bytes (got=%d)",
			codec.ErrDeserialization,
			codec.ErrInsufficientLength,
			name,
			consts.Uint32Len,
			len(b),
		)
	}
	v, err := codec.Deserialize[T](b[:consts.Uint32Len])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, name)
	}
	return v, nil
}

// Package script replays a list of container operations read from a YAML or
// JSON file and reports what every step returned.
package script

import (
	"errors"
	"fmt"

	"github.com/grpc-boot/container"
	"github.com/grpc-boot/container/codec"
)

var (
	ErrUnknownKind  = errors.New("unknown container kind")
	ErrUnknownOp    = errors.New("unknown operation")
	ErrMissingValue = fmt.Errorf("%w: step needs a value", container.ErrInvalidArgument)
	ErrMissingIndex = fmt.Errorf("%w: step needs an index", container.ErrInvalidArgument)
)

type Step struct {
	Op    string `yaml:"op" json:"op"`
	Value *int   `yaml:"value,omitempty" json:"value,omitempty"`
	Index *int   `yaml:"index,omitempty" json:"index,omitempty"`
}

type Script struct {
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind" json:"kind"`
	// Capacity only applies to the array list, 0 means the default.
	Capacity int    `yaml:"capacity,omitempty" json:"capacity,omitempty"`
	Initial  []int  `yaml:"initial,omitempty" json:"initial,omitempty"`
	Steps    []Step `yaml:"steps" json:"steps"`
	Output   string `yaml:"output,omitempty" json:"output,omitempty"`
}

// Load reads a script, the format follows the file extension.
func Load(path string) (s *Script, err error) {
	s = &Script{}
	if err = container.Load(path, s); err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}

	if err = s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) Validate() (err error) {
	if !container.IsKind(s.Kind) {
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}

	if s.Capacity < 0 {
		return fmt.Errorf("%w: capacity %d", container.ErrInvalidArgument, s.Capacity)
	}

	if s.Output != "" {
		if _, err = codec.Get(s.Output); err != nil {
			return err
		}
	}
	return nil
}

func (st Step) value() (value int, err error) {
	if st.Value == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingValue, st.Op)
	}
	return *st.Value, nil
}

func (st Step) index() (index int, err error) {
	if st.Index == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingIndex, st.Op)
	}
	return *st.Index, nil
}

// Package replay drives a camera from a recorded gesture script. It backs the
// mapzoom command line tool and doubles as a deterministic harness for
// interaction scenarios.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

// ErrUnknownStep is returned for a step whose op is not recognised.
var ErrUnknownStep = errors.New("unknown step")

// Step operations.
const (
	OpDown   = "down"
	OpMove   = "move"
	OpUp     = "up"
	OpCancel = "cancel"
	OpWheel  = "wheel"
	OpZoom   = "zoom"
	OpOffset = "offset"
	OpReset  = "reset"
	OpResize = "resize"
	OpFrames = "frames"
	OpSettle = "settle"
)

// Script is a sequence of input events applied to a fresh camera.
type Script struct {
	Name      string          `yaml:"name"`
	Container core.Dimensions `yaml:"container"`
	Steps     []Step          `yaml:"steps"`
}

// Step is one input event. Which fields matter depends on Op.
type Step struct {
	Op     string         `yaml:"op"`
	ID     core.ContactID `yaml:"id,omitempty"`
	X      float64        `yaml:"x,omitempty"`
	Y      float64        `yaml:"y,omitempty"`
	Delta  float64        `yaml:"delta,omitempty"`  // wheel deltaY
	Factor float64        `yaml:"factor,omitempty"` // zoom factor
	Width  float64        `yaml:"width,omitempty"`  // resize
	Height float64        `yaml:"height,omitempty"` // resize
	Count  int            `yaml:"count,omitempty"`  // frames to flush
}

// Parse decodes a script and checks every step.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile parses the script at path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate reports the first step with an unknown op or a bad count.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		switch st.Op {
		case OpDown, OpMove, OpUp, OpCancel, OpWheel, OpZoom,
			OpOffset, OpReset, OpResize, OpSettle:
		case OpFrames:
			if st.Count < 0 {
				return fmt.Errorf("step %d: negative frame count %d", i, st.Count)
			}
		default:
			return fmt.Errorf("step %d: %w %q", i, ErrUnknownStep, st.Op)
		}
	}
	return nil
}

// WheelScenario zooms in on the centre of a 1000x600 container, pans while
// zoomed, then resets.
func WheelScenario() *Script {
	return &Script{
		Name:      "wheel",
		Container: core.Dimensions{Width: 1000, Height: 600},
		Steps: []Step{
			{Op: OpWheel, X: 500, Y: 300, Delta: -10},
			{Op: OpSettle},
			{Op: OpWheel, X: 250, Y: 150, Delta: -10},
			{Op: OpSettle},
			{Op: OpDown, ID: 1, X: 500, Y: 300},
			{Op: OpMove, ID: 1, X: 400, Y: 250},
			{Op: OpUp, ID: 1},
			{Op: OpSettle},
			{Op: OpOffset, X: 150},
			{Op: OpSettle},
			{Op: OpReset},
			{Op: OpSettle},
		},
	}
}

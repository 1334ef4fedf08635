package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/serialization"
)

// ErrStateMismatch is returned by LoadStateDict when the state does not fit
// the network's shape.
var ErrStateMismatch = errors.New("state dict does not match network")

// StateDict exports the parameter values of an MLP.
//
// Keys have the form "layers.{l}.neurons.{n}.w{i}" and
// "layers.{l}.neurons.{n}.b".
func (m *MLP) StateDict() map[string]float64 {
	state := make(map[string]float64)
	m.walk(func(key string, p *autodiff.Value) {
		state[key] = p.Data()
	})
	return state
}

// LoadStateDict overwrites parameter values from state.
//
// Every parameter must have an entry and state must have no extra entries;
// otherwise an error wrapping ErrStateMismatch is returned and no parameter
// is modified.
func (m *MLP) LoadStateDict(state map[string]float64) error {
	var missing []string
	count := 0
	m.walk(func(key string, _ *autodiff.Value) {
		count++
		if _, ok := state[key]; !ok {
			missing = append(missing, key)
		}
	})

	if len(missing) > 0 {
		return fmt.Errorf("missing %d keys (first %q): %w", len(missing), missing[0], ErrStateMismatch)
	}
	if len(state) != count {
		return fmt.Errorf("got %d entries, network has %d parameters: %w", len(state), count, ErrStateMismatch)
	}

	m.walk(func(key string, p *autodiff.Value) {
		p.SetData(state[key])
	})
	return nil
}

// Save writes the network's parameters to path as a SafeTensors checkpoint.
// The layer sizes are recorded in the file metadata.
func (m *MLP) Save(path string) error {
	meta := map[string]string{"architecture": m.String()}
	if err := serialization.WriteFile(path, m.StateDict(), meta); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}

// Load restores parameters saved with Save. The checkpoint must match the
// network exactly, as for LoadStateDict.
func (m *MLP) Load(path string) error {
	state, _, err := serialization.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load checkpoint: %w", err)
	}
	return m.LoadStateDict(state)
}

func (m *MLP) walk(f func(key string, p *autodiff.Value)) {
	for l, layer := range m.layers {
		for n, neuron := range layer.neurons {
			prefix := fmt.Sprintf("layers.%d.neurons.%d.", l, n)
			for i, w := range neuron.weights {
				f(fmt.Sprintf("%sw%d", prefix, i), w)
			}
			f(prefix+"b", neuron.bias)
		}
	}
}

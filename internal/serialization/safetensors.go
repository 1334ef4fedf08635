package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
)

const (
	scalarSize  = 8
	dtypeF64    = "F64"
	metadataKey = "__metadata__"
)

// TensorHeader represents a tensor in the SafeTensors header.
type TensorHeader struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// WriteStateDict writes state to w. Metadata may be nil.
func WriteStateDict(w io.Writer, state map[string]float64, metadata map[string]string) error {
	names := make([]string, 0, len(state))
	for name := range state {
		if err := validateName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(map[string]any, len(names)+1)
	if len(metadata) > 0 {
		header[metadataKey] = metadata
	}
	data := make([]byte, len(names)*scalarSize)
	for i, name := range names {
		start := int64(i * scalarSize)
		header[name] = TensorHeader{
			DType:       dtypeF64,
			Shape:       []int64{},
			DataOffsets: [2]int64{start, start + scalarSize},
		}
		binary.LittleEndian.PutUint64(data[start:], math.Float64bits(state[name]))
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	return nil
}

// ReadStateDict parses a state written by WriteStateDict (or any SafeTensors
// file whose entries are single F64 values) and returns it with its metadata.
func ReadStateDict(r io.Reader) (map[string]float64, map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse header: %w", err)
	}

	var metadata map[string]string
	entries := make([]entry, 0, len(raw))
	for name, msg := range raw {
		if name == metadataKey {
			if err := json.Unmarshal(msg, &metadata); err != nil {
				return nil, nil, fmt.Errorf("failed to parse metadata: %w", err)
			}
			continue
		}
		if err := validateName(name); err != nil {
			return nil, nil, err
		}

		var th TensorHeader
		if err := json.Unmarshal(msg, &th); err != nil {
			return nil, nil, fmt.Errorf("failed to parse tensor %q: %w", name, err)
		}
		if th.DType != dtypeF64 {
			return nil, nil, fmt.Errorf("tensor %q has dtype %s: %w", name, th.DType, ErrUnsupportedDType)
		}
		if !isScalarShape(th.Shape) {
			return nil, nil, fmt.Errorf("tensor %q has shape %v: %w", name, th.Shape, ErrUnsupportedShape)
		}
		entries = append(entries, entry{Name: name, Start: th.DataOffsets[0], End: th.DataOffsets[1]})
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read data: %w", err)
	}
	if err := validateOffsets(entries, int64(len(data))); err != nil {
		return nil, nil, err
	}

	state := make(map[string]float64, len(entries))
	for _, e := range entries {
		state[e.Name] = math.Float64frombits(binary.LittleEndian.Uint64(data[e.Start:e.End]))
	}
	return state, metadata, nil
}

// WriteFile saves state to path, replacing any existing file.
func WriteFile(path string, state map[string]float64, metadata map[string]string) error {
	var buf bytes.Buffer
	if err := WriteStateDict(&buf, state, metadata); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadFile loads a state saved with WriteFile.
func ReadFile(path string) (map[string]float64, map[string]string, error) {
	//nolint:gosec // G304: path comes from the caller, as expected for checkpoint loading
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = f.Close() // Best effort close
	}()

	return ReadStateDict(f)
}

// isScalarShape accepts the rank-0 shape and the equivalent [1].
func isScalarShape(shape []int64) bool {
	return len(shape) == 0 || (len(shape) == 1 && shape[0] == 1)
}

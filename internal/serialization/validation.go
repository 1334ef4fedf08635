package serialization

import (
	"fmt"
	"sort"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 100 * 1024 * 1024 // 100MB
	MaxTensorCount   = 100_000
	MaxTensorNameLen = 4096
)

// entry is a parsed header record.
type entry struct {
	Name  string
	Start int64
	End   int64
}

// validateName rejects names that could escape a directory when entries are
// exported file-per-tensor by other tools.
func validateName(name string) error {
	switch {
	case name == "":
		return &ValidationError{Kind: ErrInvalidTensorName, Details: "empty name"}
	case len(name) > MaxTensorNameLen:
		return &ValidationError{Kind: ErrInvalidTensorName, Tensor: name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen)}
	case strings.Contains(name, ".."):
		return &ValidationError{Kind: ErrInvalidTensorName, Tensor: name, Details: "contains '..'"}
	case strings.ContainsAny(name, "/\\\x00"):
		return &ValidationError{Kind: ErrInvalidTensorName, Tensor: name, Details: "contains path separator or null byte"}
	}
	return nil
}

// validateOffsets checks that every entry is exactly one float64 wide, lies
// inside the data section and does not overlap its neighbour.
func validateOffsets(entries []entry, dataSize int64) error {
	if len(entries) > MaxTensorCount {
		return &ValidationError{Kind: ErrInvalidDataOffsets,
			Details: fmt.Sprintf("got %d tensors, max %d", len(entries), MaxTensorCount)}
	}

	sorted := make([]entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	for i, e := range sorted {
		if e.Start < 0 || e.End-e.Start != scalarSize {
			return &ValidationError{Kind: ErrInvalidDataOffsets, Tensor: e.Name,
				Details: fmt.Sprintf("offsets [%d, %d] do not span one float64", e.Start, e.End)}
		}
		if e.End > dataSize {
			return &ValidationError{Kind: ErrTruncatedData, Tensor: e.Name,
				Details: fmt.Sprintf("end %d > data size %d", e.End, dataSize)}
		}
		if i < len(sorted)-1 && e.End > sorted[i+1].Start {
			next := sorted[i+1]
			return &ValidationError{Kind: ErrInvalidDataOffsets, Tensor: e.Name, Tensor2: next.Name,
				Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap", e.Start, e.End, next.Start, next.End)}
		}
	}
	return nil
}

// Package cache implements a set-associative cache model with LRU
// replacement, driven one memory access at a time.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
)

// Geometry describes the shape of a simulated cache. The number of sets and
// the block size are always powers of two, derived from the bit counts.
// A Geometry is immutable for the lifetime of a simulation run.
type Geometry struct {
	// IdxBits is the number of set-index bits (S = 2^IdxBits sets).
	IdxBits int `json:"idx_bits"`

	// Assoc is the associativity (number of lines per set).
	Assoc int `json:"assoc"`

	// BlockBits is the number of block-offset bits (B = 2^BlockBits bytes
	// per block).
	BlockBits int `json:"block_bits"`
}

// NumSets returns the number of sets, S = 2^IdxBits.
func (g Geometry) NumSets() int {
	return 1 << g.IdxBits
}

// BlockSize returns the block size in bytes, B = 2^BlockBits.
func (g Geometry) BlockSize() int {
	return 1 << g.BlockBits
}

// Validate checks that all geometry fields are positive.
func (g Geometry) Validate() error {
	if g.IdxBits <= 0 {
		return fmt.Errorf("idx_bits must be > 0")
	}
	if g.Assoc <= 0 {
		return fmt.Errorf("assoc must be > 0")
	}
	if g.BlockBits <= 0 {
		return fmt.Errorf("block_bits must be > 0")
	}
	return nil
}

// Decode splits a 64-bit address into its tag, set index, and block offset.
// The offset is the low BlockBits bits, the set index the next IdxBits bits,
// and the tag the remaining high-order bits. Every address is decodable;
// the offset plays no role in hit/miss classification.
func (g Geometry) Decode(addr uint64) (tag uint64, setIndex int, blockOffset uint64) {
	blockOffset = addr & (uint64(g.BlockSize()) - 1)
	setIndex = int((addr >> g.BlockBits) & uint64(g.NumSets()-1))
	tag = addr >> (g.BlockBits + g.IdxBits)

	return tag, setIndex, blockOffset
}

// LoadGeometry reads a Geometry from a JSON file and validates it.
func LoadGeometry(path string) (Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to read geometry file: %w", err)
	}

	var geometry Geometry
	if err := json.Unmarshal(data, &geometry); err != nil {
		return Geometry{}, fmt.Errorf("failed to parse geometry: %w", err)
	}

	if err := geometry.Validate(); err != nil {
		return Geometry{}, err
	}

	return geometry, nil
}

// Save writes the Geometry to a JSON file.
func (g Geometry) Save(path string) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize geometry: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write geometry file: %w", err)
	}

	return nil
}

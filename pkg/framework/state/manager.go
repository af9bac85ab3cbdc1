// Package state saves and restores parameter values in a compact binary format.
package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ametisf/snaprepeat/pkg/framework/param"
)

// Magic identifies a saved state blob
const Magic = "SNPRPT"

// Version is the state format written by Save
const Version uint32 = 1

var (
	// ErrInvalidFormat is returned when the data does not start with Magic
	ErrInvalidFormat = errors.New("invalid state format")
	// ErrNewerVersion is returned for states written by a newer format version
	ErrNewerVersion = errors.New("state version is newer than supported")
)

// Manager handles plugin state saving and loading
type Manager struct {
	version  uint32
	registry *param.Registry
}

// NewManager creates a new state manager
func NewManager(registry *param.Registry) *Manager {
	return &Manager{
		version:  Version,
		registry: registry,
	}
}

// Save writes the normalized value of every registered parameter.
//
// Layout (little endian): magic, version uint32, count int32, then count
// pairs of id uint32 and value float64.
func (m *Manager) Save(w io.Writer) error {
	if _, err := io.WriteString(w, Magic); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, m.version); err != nil {
		return fmt.Errorf("write version: %w", err)
	}

	params := m.registry.All()
	if err := binary.Write(w, binary.LittleEndian, int32(len(params))); err != nil {
		return fmt.Errorf("write parameter count: %w", err)
	}

	for _, p := range params {
		if err := binary.Write(w, binary.LittleEndian, p.ID); err != nil {
			return fmt.Errorf("write parameter %d: %w", p.ID, err)
		}
		if err := binary.Write(w, binary.LittleEndian, p.GetValue()); err != nil {
			return fmt.Errorf("write parameter %d: %w", p.ID, err)
		}
	}

	return nil
}

// Load reads a state written by Save and applies it to the registry.
// Unknown parameter IDs are skipped.
func (m *Manager) Load(r io.Reader) error {
	header := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if string(header) != Magic {
		return ErrInvalidFormat
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	if version > m.version {
		return fmt.Errorf("%w: got %d, support %d", ErrNewerVersion, version, m.version)
	}

	var paramCount int32
	if err := binary.Read(r, binary.LittleEndian, &paramCount); err != nil {
		return fmt.Errorf("read parameter count: %w", err)
	}
	if paramCount < 0 {
		return fmt.Errorf("%w: negative parameter count %d", ErrInvalidFormat, paramCount)
	}

	// Decode everything before touching the registry so a truncated
	// state leaves the current values alone.
	type entry struct {
		id    uint32
		value float64
	}
	entries := make([]entry, 0, min(int(paramCount), 64))
	for i := int32(0); i < paramCount; i++ {
		var e entry
		if err := binary.Read(r, binary.LittleEndian, &e.id); err != nil {
			return fmt.Errorf("read parameter %d: %w", i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &e.value); err != nil {
			return fmt.Errorf("read parameter %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	for _, e := range entries {
		if p := m.registry.Get(e.id); p != nil {
			p.SetValue(e.value)
		}
	}

	return nil
}

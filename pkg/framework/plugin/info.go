package plugin

import (
	"errors"
	"fmt"
)

// Plugin categories
const (
	CategoryEffect     = "Fx"
	CategoryInstrument = "Instrument"
)

// Info contains plugin metadata
type Info struct {
	ID         string // Unique plugin identifier (e.g., "com.example.myplugin")
	Name       string // Display name
	Vendor     string // Company/developer name
	UniqueID   int32  // Numeric identifier hosts key presets and sessions on
	Version    int32
	Inputs     int32 // Audio input channels
	Outputs    int32 // Audio output channels
	Parameters int32
	Category   string // Plugin category (e.g., "Fx", "Instrument")
}

// UID converts the identity to a 16-byte class ID. The first four bytes
// carry UniqueID (big endian), the rest are taken from ID.
func (i Info) UID() [16]byte {
	var uid [16]byte
	uid[0] = byte(i.UniqueID >> 24)
	uid[1] = byte(i.UniqueID >> 16)
	uid[2] = byte(i.UniqueID >> 8)
	uid[3] = byte(i.UniqueID)
	copy(uid[4:], i.ID)
	return uid
}

// Validate reports missing or inconsistent metadata
func (i Info) Validate() error {
	var errs []error
	if i.Name == "" {
		errs = append(errs, errors.New("name is empty"))
	}
	if i.UniqueID == 0 {
		errs = append(errs, errors.New("unique ID is zero"))
	}
	if i.Inputs < 0 || i.Outputs <= 0 {
		errs = append(errs, fmt.Errorf("invalid channel layout %d in / %d out", i.Inputs, i.Outputs))
	}
	if i.Parameters < 0 {
		errs = append(errs, fmt.Errorf("negative parameter count %d", i.Parameters))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("plugin %q: %w", i.Name, err)
	}
	return nil
}

package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DataExport is the full data export document. Field names are part of the
// import contract.
type DataExport struct {
	EMAs            []EMA         `json:"emas"`
	Sessions        []GameSession `json:"sessions"`
	ExportTimestamp string        `json:"exportTimestamp"`
}

// NewDataExport builds an export stamped with the given instant.
func NewDataExport(emas []EMA, sessions []GameSession, at time.Time) *DataExport {
	if emas == nil {
		emas = []EMA{}
	}
	if sessions == nil {
		sessions = []GameSession{}
	}
	return &DataExport{
		EMAs:            emas,
		Sessions:        sessions,
		ExportTimestamp: at.UTC().Format(time.RFC3339Nano),
	}
}

// ParseDataExport decodes and validates an export document. A single malformed
// record rejects the whole document.
func ParseDataExport(data []byte) (*DataExport, error) {
	var export DataExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if err := export.Validate(); err != nil {
		return nil, err
	}
	return &export, nil
}

// Validate checks every record in the document.
func (d *DataExport) Validate() error {
	for i := range d.EMAs {
		if err := d.EMAs[i].Validate(); err != nil {
			return fmt.Errorf("emas[%d] (%s): %w", i, d.EMAs[i].ID, err)
		}
	}
	for i := range d.Sessions {
		if err := d.Sessions[i].Validate(); err != nil {
			return fmt.Errorf("sessions[%d] (%s): %w", i, d.Sessions[i].ID, err)
		}
	}
	return nil
}

// ImportResult reports how many records an import appended.
type ImportResult struct {
	EMAsImported     int `json:"emasImported"`
	SessionsImported int `json:"sessionsImported"`
	EMAsSkipped      int `json:"emasSkipped"`
	SessionsSkipped  int `json:"sessionsSkipped"`
}

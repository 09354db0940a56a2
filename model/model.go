package model

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// UpdateSentinel is reported when the pending-updates count could not be
// measured, e.g. because the package manager refused to talk to us.
const UpdateSentinel = "unavailable"

type DiskRecord struct {
	Drive            string  `json:"drive"`
	FreeSpacePercent float64 `json:"free_space_percent"`
	FreeSpaceGB      float64 `json:"free_space_gb"`
	TotalSpaceGB     float64 `json:"total_space_gb"`
}

// CPURecord holds the aggregate processor load. LoadPercent is nil on
// platforms that cannot report a load figure.
type CPURecord struct {
	LoadPercent *int   `json:"load_percent,omitempty"`
	Name        string `json:"name"`
}

type MemoryRecord struct {
	UsedPercent float64 `json:"used_percent"`
	FreeGB      float64 `json:"free_gb"`
	TotalGB     float64 `json:"total_gb"`
}

type ProcessRecord struct {
	Name           string  `json:"name"`
	CPUTimeSeconds float64 `json:"cpu_time_seconds"`
	MemoryMB       float64 `json:"memory_mb"`
}

type NetworkStatus struct {
	InternetConnected bool `json:"internet_connected"`
}

// UpdateStatus is either a non-negative pending count or the sentinel,
// never both and never null.
type UpdateStatus struct {
	Pending     int
	Unavailable bool
}

func (u UpdateStatus) MarshalJSON() ([]byte, error) {
	if u.Unavailable {
		return json.Marshal(map[string]string{"pending_updates": UpdateSentinel})
	}
	return json.Marshal(map[string]int{"pending_updates": u.Pending})
}

func (u *UpdateStatus) UnmarshalJSON(data []byte) error {
	var raw struct {
		PendingUpdates json.RawMessage `json:"pending_updates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var count int
	if err := json.Unmarshal(raw.PendingUpdates, &count); err == nil {
		u.Pending = count
		u.Unavailable = false
		return nil
	}

	var sentinel string
	if err := json.Unmarshal(raw.PendingUpdates, &sentinel); err == nil && sentinel == UpdateSentinel {
		u.Pending = 0
		u.Unavailable = true
		return nil
	}

	return fmt.Errorf("pending_updates is neither a count nor %q: %s", UpdateSentinel, string(raw.PendingUpdates))
}

// HealthReport is the composite snapshot for one run.
type HealthReport struct {
	ComputerName string          `json:"computer_name"`
	Timestamp    time.Time       `json:"timestamp"`
	Disk         []DiskRecord    `json:"disk"`
	CPU          CPURecord       `json:"cpu"`
	Memory       MemoryRecord    `json:"memory"`
	TopProcesses []ProcessRecord `json:"top_processes"`
	Network      NetworkStatus   `json:"network"`
	Updates      UpdateStatus    `json:"updates"`
}

// Round2 rounds to two decimal places, the precision every derived figure
// in the report carries.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

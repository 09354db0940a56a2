package probes

import (
	"github.com/shirou/gopsutil/v3/host"
)

// HostSource reports the local machine's identity.
type HostSource interface {
	Hostname() (string, error)
}

type GopsutilHost struct{}

func (GopsutilHost) Hostname() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", err
	}
	return info.Hostname, nil
}

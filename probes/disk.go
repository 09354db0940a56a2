package probes

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/disk"

	"syshealth/model"
)

const gigabyte = 1 << 30

// Volume is one fixed local volume as seen by the OS.
type Volume struct {
	Path       string
	TotalBytes uint64
	FreeBytes  uint64
}

// VolumeSource enumerates the fixed local volumes.
type VolumeSource interface {
	Volumes() ([]Volume, error)
}

type DiskProbe struct {
	source VolumeSource
}

func NewDiskProbe(source VolumeSource) *DiskProbe {
	return &DiskProbe{source: source}
}

// Collect returns one record per volume with nonzero size. An enumeration
// failure is fatal for the run.
func (p *DiskProbe) Collect(logger lager.Logger) ([]model.DiskRecord, error) {
	logger = logger.Session("disk-probe")
	logger.Debug("starting")
	defer logger.Debug("ending")

	volumes, err := p.source.Volumes()
	if err != nil {
		logger.Error("enumerating-volumes", err)
		return nil, errors.Wrap(err, "enumerating volumes")
	}

	records := []model.DiskRecord{}
	for _, v := range volumes {
		if v.TotalBytes == 0 {
			continue
		}
		free := float64(v.FreeBytes)
		total := float64(v.TotalBytes)
		records = append(records, model.DiskRecord{
			Drive:            v.Path,
			FreeSpacePercent: model.Round2(free / total * 100),
			FreeSpaceGB:      model.Round2(free / gigabyte),
			TotalSpaceGB:     model.Round2(total / gigabyte),
		})
	}

	logger.Debug("collected", lager.Data{"volumes": len(records)})
	return records, nil
}

// GopsutilVolumes reads the mounted physical partitions.
type GopsutilVolumes struct{}

func (GopsutilVolumes) Volumes() ([]Volume, error) {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}

	volumes := []Volume{}
	for _, part := range partitions {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil {
			// an unreadable mount must not kill the snapshot
			continue
		}
		volumes = append(volumes, Volume{
			Path:       part.Mountpoint,
			TotalBytes: usage.Total,
			FreeBytes:  usage.Free,
		})
	}
	return volumes, nil
}

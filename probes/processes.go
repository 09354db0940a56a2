package probes

import (
	"sort"

	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"

	"syshealth/model"
)

const megabyte = 1 << 20

// ProcessInfo is one running process as seen by the OS process table.
type ProcessInfo struct {
	Name           string
	CPUTimeSeconds float64
	ResidentBytes  uint64
}

// ProcessSource enumerates the running processes.
type ProcessSource interface {
	Processes() ([]ProcessInfo, error)
}

type ProcessProbe struct {
	source ProcessSource
	limit  int
}

func NewProcessProbe(source ProcessSource, limit int) *ProcessProbe {
	return &ProcessProbe{source: source, limit: limit}
}

// Collect returns at most limit records ordered by cumulative CPU time,
// descending. Ties keep the enumeration order.
func (p *ProcessProbe) Collect(logger lager.Logger) ([]model.ProcessRecord, error) {
	logger = logger.Session("process-probe")
	logger.Debug("starting")
	defer logger.Debug("ending")

	infos, err := p.source.Processes()
	if err != nil {
		logger.Error("enumerating-processes", err)
		return nil, errors.Wrap(err, "enumerating processes")
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].CPUTimeSeconds > infos[j].CPUTimeSeconds
	})

	// a non-positive limit must not panic the slice below
	if p.limit > 0 && len(infos) > p.limit {
		infos = infos[:p.limit]
	}

	records := make([]model.ProcessRecord, 0, len(infos))
	for _, info := range infos {
		records = append(records, model.ProcessRecord{
			Name:           info.Name,
			CPUTimeSeconds: info.CPUTimeSeconds,
			MemoryMB:       model.Round2(float64(info.ResidentBytes) / megabyte),
		})
	}

	logger.Debug("collected", lager.Data{"processes": len(records)})
	return records, nil
}

// GopsutilProcesses walks the OS process table. Processes that disappear or
// refuse inspection mid-walk are skipped.
type GopsutilProcesses struct{}

func (GopsutilProcesses) Processes() ([]ProcessInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	infos := []ProcessInfo{}
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			continue
		}
		times, err := proc.Times()
		if err != nil {
			continue
		}
		info := ProcessInfo{
			Name:           name,
			CPUTimeSeconds: times.User + times.System,
		}
		if memInfo, err := proc.MemoryInfo(); err == nil && memInfo != nil {
			info.ResidentBytes = memInfo.RSS
		}
		infos = append(infos, info)
	}
	return infos, nil
}

package probes

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/mem"

	"syshealth/model"
)

// MemorySource reports total and free physical memory in bytes.
type MemorySource interface {
	Stats() (total uint64, free uint64, err error)
}

type MemoryProbe struct {
	source MemorySource
}

func NewMemoryProbe(source MemorySource) *MemoryProbe {
	return &MemoryProbe{source: source}
}

func (p *MemoryProbe) Collect(logger lager.Logger) (model.MemoryRecord, error) {
	logger = logger.Session("memory-probe")
	logger.Debug("starting")
	defer logger.Debug("ending")

	total, free, err := p.source.Stats()
	if err != nil {
		logger.Error("reading-memory", err)
		return model.MemoryRecord{}, errors.Wrap(err, "reading memory stats")
	}
	if total == 0 {
		err := errors.New("total physical memory reported as zero")
		logger.Error("reading-memory", err)
		return model.MemoryRecord{}, err
	}

	record := model.MemoryRecord{
		UsedPercent: model.Round2(float64(total-free) / float64(total) * 100),
		FreeGB:      model.Round2(float64(free) / gigabyte),
		TotalGB:     model.Round2(float64(total) / gigabyte),
	}

	logger.Debug("collected", lager.Data{"usedPercent": record.UsedPercent})
	return record, nil
}

type GopsutilMemory struct{}

func (GopsutilMemory) Stats() (uint64, uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	return vm.Total, vm.Free, nil
}

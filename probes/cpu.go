package probes

import (
	"math"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"

	"syshealth/model"
)

// CPUSource reports the aggregate processor load and the processor name.
// LoadPercent returns ok=false on platforms that cannot report load; that is
// accepted as degraded data, not an error.
type CPUSource interface {
	LoadPercent() (float64, bool, error)
	ModelName() (string, error)
}

type CPUProbe struct {
	source CPUSource
}

func NewCPUProbe(source CPUSource) *CPUProbe {
	return &CPUProbe{source: source}
}

func (p *CPUProbe) Collect(logger lager.Logger) (model.CPURecord, error) {
	logger = logger.Session("cpu-probe")
	logger.Debug("starting")
	defer logger.Debug("ending")

	load, ok, err := p.source.LoadPercent()
	if err != nil {
		logger.Error("reading-load", err)
		return model.CPURecord{}, errors.Wrap(err, "reading cpu load")
	}

	name, err := p.source.ModelName()
	if err != nil {
		logger.Error("reading-processor-name", err)
		return model.CPURecord{}, errors.Wrap(err, "reading processor name")
	}

	record := model.CPURecord{Name: name}
	if ok {
		percent := int(math.Round(load))
		// some platforms report marginally outside [0, 100]
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		record.LoadPercent = &percent
		logger.Debug("collected", lager.Data{"loadPercent": percent})
	} else {
		logger.Debug("load-unavailable")
	}

	return record, nil
}

// GopsutilCPU samples the aggregate load over a one second window.
type GopsutilCPU struct{}

func (GopsutilCPU) LoadPercent() (float64, bool, error) {
	percentages, err := cpu.Percent(time.Second, false)
	if err != nil {
		return 0, false, err
	}
	if len(percentages) == 0 {
		return 0, false, nil
	}
	return percentages[0], true, nil
}

func (GopsutilCPU) ModelName() (string, error) {
	infos, err := cpu.Info()
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "unknown", nil
	}
	return infos[0].ModelName, nil
}

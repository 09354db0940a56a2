package health

import (
	"time"

	"code.cloudfoundry.org/lager/v3"

	"syshealth/model"
	"syshealth/probes"
)

// Checker runs the six probes sequentially and assembles one composite
// snapshot. Disk, cpu, memory and process failures abort the run; the
// network probe degrades to disconnected and the update probe degrades to
// its sentinel.
type Checker struct {
	diskProbe    *probes.DiskProbe
	cpuProbe     *probes.CPUProbe
	memoryProbe  *probes.MemoryProbe
	processProbe *probes.ProcessProbe
	networkProbe *probes.NetworkProbe
	updateProbe  *probes.UpdateProbe
}

func NewChecker(
	diskProbe *probes.DiskProbe,
	cpuProbe *probes.CPUProbe,
	memoryProbe *probes.MemoryProbe,
	processProbe *probes.ProcessProbe,
	networkProbe *probes.NetworkProbe,
	updateProbe *probes.UpdateProbe,
) *Checker {
	return &Checker{
		diskProbe:    diskProbe,
		cpuProbe:     cpuProbe,
		memoryProbe:  memoryProbe,
		processProbe: processProbe,
		networkProbe: networkProbe,
		updateProbe:  updateProbe,
	}
}

// Run collects one snapshot. Hostname and clock come in as arguments so the
// pipeline stays deterministic under test.
func (c *Checker) Run(logger lager.Logger, hostname string, now time.Time) (model.HealthReport, error) {
	logger = logger.Session("health-check", lager.Data{"host": hostname})
	logger.Debug("starting")
	defer logger.Debug("ending")

	disk, err := c.diskProbe.Collect(logger)
	if err != nil {
		return model.HealthReport{}, err
	}

	cpu, err := c.cpuProbe.Collect(logger)
	if err != nil {
		return model.HealthReport{}, err
	}

	memory, err := c.memoryProbe.Collect(logger)
	if err != nil {
		return model.HealthReport{}, err
	}

	topProcesses, err := c.processProbe.Collect(logger)
	if err != nil {
		return model.HealthReport{}, err
	}

	network := c.networkProbe.Collect(logger)
	updates := c.updateProbe.Collect(logger)

	return Assemble(hostname, now, disk, cpu, memory, topProcesses, network, updates), nil
}

// Assemble is pure composition: no validation, no derived computation.
func Assemble(
	hostname string,
	now time.Time,
	disk []model.DiskRecord,
	cpu model.CPURecord,
	memory model.MemoryRecord,
	topProcesses []model.ProcessRecord,
	network model.NetworkStatus,
	updates model.UpdateStatus,
) model.HealthReport {
	return model.HealthReport{
		ComputerName: hostname,
		Timestamp:    now,
		Disk:         disk,
		CPU:          cpu,
		Memory:       memory,
		TopProcesses: topProcesses,
		Network:      network,
		Updates:      updates,
	}
}

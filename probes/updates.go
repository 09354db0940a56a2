package probes

import (
	"bufio"
	"bytes"
	"os/exec"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"

	"syshealth/model"
)

// UpdateSource reports the count of not-yet-installed OS updates.
type UpdateSource interface {
	PendingUpdates() (int, error)
}

type UpdateProbe struct {
	source UpdateSource
}

func NewUpdateProbe(source UpdateSource) *UpdateProbe {
	return &UpdateProbe{source: source}
}

// Collect queries the update source. Any failure, insufficient privilege
// included, degrades to the unavailability sentinel instead of propagating.
func (p *UpdateProbe) Collect(logger lager.Logger) model.UpdateStatus {
	logger = logger.Session("update-probe")
	logger.Debug("starting")
	defer logger.Debug("ending")

	count, err := p.source.PendingUpdates()
	if err != nil {
		logger.Info("update-check-unavailable", lager.Data{"error": err.Error()})
		return model.UpdateStatus{Unavailable: true}
	}

	logger.Debug("collected", lager.Data{"pending": count})
	return model.UpdateStatus{Pending: count}
}

// PackageManagerUpdates asks the system package manager for pending
// upgrades, trying apt first and falling back to dnf.
type PackageManagerUpdates struct{}

func (PackageManagerUpdates) PendingUpdates() (int, error) {
	if _, err := exec.LookPath("apt-get"); err == nil {
		return aptPendingUpdates()
	}
	if _, err := exec.LookPath("dnf"); err == nil {
		return dnfPendingUpdates()
	}
	return 0, errors.New("no supported package manager found")
}

func aptPendingUpdates() (int, error) {
	out, err := exec.Command("apt-get", "-s", "-o", "Debug::NoLocking=true", "upgrade").Output()
	if err != nil {
		return 0, errors.Wrap(err, "apt-get simulation failed")
	}

	count := 0
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "Inst ") {
			count++
		}
	}
	return count, nil
}

func dnfPendingUpdates() (int, error) {
	out, err := exec.Command("dnf", "-q", "check-update").Output()
	if err != nil {
		// exit status 100 means updates are listed on stdout
		exitErr, ok := err.(*exec.ExitError)
		if !ok || exitErr.ExitCode() != 100 {
			return 0, errors.Wrap(err, "dnf check-update failed")
		}
	}

	count := 0
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "Obsoleting") {
			continue
		}
		if len(strings.Fields(line)) == 3 {
			count++
		}
	}
	return count, nil
}

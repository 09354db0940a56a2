package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/docker/go-units"

	"syshealth/model"
)

// Print writes the human-readable summary. Not intended for machine parsing.
func Print(w io.Writer, r model.HealthReport) {
	fmt.Fprintf(w, "System Health Check - %s\n", r.ComputerName)
	fmt.Fprintf(w, "Collected at %s\n\n", r.Timestamp.Format("2006-01-02 15:04:05"))

	fmt.Fprintln(w, "Disk Space:")
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "  DRIVE\tFREE\tTOTAL\tFREE %")
	for _, d := range r.Disk {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%.2f%%\n",
			d.Drive,
			units.BytesSize(d.FreeSpaceGB*float64(units.GiB)),
			units.BytesSize(d.TotalSpaceGB*float64(units.GiB)),
			d.FreeSpacePercent,
		)
	}
	tw.Flush()

	if r.CPU.LoadPercent != nil {
		fmt.Fprintf(w, "\nCPU Load: %d%% (%s)\n", *r.CPU.LoadPercent, r.CPU.Name)
	} else {
		fmt.Fprintf(w, "\nCPU Load: unavailable (%s)\n", r.CPU.Name)
	}

	fmt.Fprintf(w, "Memory Usage: %.2f%% used, %s free of %s\n",
		r.Memory.UsedPercent,
		units.BytesSize(r.Memory.FreeGB*float64(units.GiB)),
		units.BytesSize(r.Memory.TotalGB*float64(units.GiB)),
	)

	fmt.Fprintln(w, "\nTop Processes by CPU Time:")
	tw = tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tCPU TIME (S)\tMEMORY (MB)")
	for _, p := range r.TopProcesses {
		fmt.Fprintf(tw, "  %s\t%.2f\t%.2f\n", p.Name, p.CPUTimeSeconds, p.MemoryMB)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nInternet Connected: %t\n", r.Network.InternetConnected)

	if r.Updates.Unavailable {
		fmt.Fprintf(w, "Pending Updates: %s\n", model.UpdateSentinel)
	} else {
		fmt.Fprintf(w, "Pending Updates: %d\n", r.Updates.Pending)
	}
}

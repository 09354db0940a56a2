package probes_test

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"

	"syshealth/model"
	"syshealth/probes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeVolumes struct {
	volumes []probes.Volume
	err     error
}

func (f fakeVolumes) Volumes() ([]probes.Volume, error) {
	return f.volumes, f.err
}

const gib = 1 << 30

var _ = Describe("DiskProbe", func() {
	var logger lager.Logger

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("disk-probe")
	})

	It("returns one record per volume with the free-space math applied", func() {
		probe := probes.NewDiskProbe(fakeVolumes{volumes: []probes.Volume{
			{Path: "/", TotalBytes: 100 * gib, FreeBytes: 25 * gib},
			{Path: "/data", TotalBytes: 200 * gib, FreeBytes: 150 * gib},
		}})

		records, err := probe.Collect(logger)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(Equal([]model.DiskRecord{
			{Drive: "/", FreeSpacePercent: 25.0, FreeSpaceGB: 25.0, TotalSpaceGB: 100.0},
			{Drive: "/data", FreeSpacePercent: 75.0, FreeSpaceGB: 150.0, TotalSpaceGB: 200.0},
		}))
	})

	It("keeps every percentage within [0, 100]", func() {
		probe := probes.NewDiskProbe(fakeVolumes{volumes: []probes.Volume{
			{Path: "/full", TotalBytes: 3 * gib, FreeBytes: 0},
			{Path: "/fresh", TotalBytes: 3 * gib, FreeBytes: 3 * gib},
			{Path: "/odd", TotalBytes: 3 * gib, FreeBytes: 1 * gib},
		}})

		records, err := probe.Collect(logger)
		Expect(err).NotTo(HaveOccurred())
		for _, record := range records {
			Expect(record.FreeSpacePercent).To(BeNumerically(">=", 0))
			Expect(record.FreeSpacePercent).To(BeNumerically("<=", 100))
		}
		Expect(records[2].FreeSpacePercent).To(Equal(33.33))
	})

	It("skips volumes reporting zero size", func() {
		probe := probes.NewDiskProbe(fakeVolumes{volumes: []probes.Volume{
			{Path: "/proc-ish", TotalBytes: 0, FreeBytes: 0},
			{Path: "/", TotalBytes: 100 * gib, FreeBytes: 50 * gib},
		}})

		records, err := probe.Collect(logger)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].Drive).To(Equal("/"))
	})

	Context("when the volume enumeration fails", func() {
		It("returns an error", func() {
			probe := probes.NewDiskProbe(fakeVolumes{err: errors.New("no volumes for you")})

			_, err := probe.Collect(logger)
			Expect(err).To(MatchError(ContainSubstring("no volumes for you")))
		})
	})
})

package config_test

import (
	"os"
	"path"

	"syshealth/commands/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	yaml "gopkg.in/yaml.v2"
)

var _ = Describe("Builder", func() {
	var (
		configDir      string
		configFilePath string
		builder        *config.Builder

		configOutputDir    string
		configTopProcesses int
		configEndpoint     string
	)

	BeforeEach(func() {
		configOutputDir = "/var/reports"
		configTopProcesses = 10
		configEndpoint = "1.1.1.1:53"
	})

	JustBeforeEach(func() {
		var err error
		configDir, err = os.MkdirTemp("", "")
		Expect(err).NotTo(HaveOccurred())

		cfg := config.Config{
			OutputDir:            configOutputDir,
			TopProcesses:         configTopProcesses,
			ConnectivityEndpoint: configEndpoint,
		}

		configYaml, err := yaml.Marshal(cfg)
		Expect(err).NotTo(HaveOccurred())
		configFilePath = path.Join(configDir, "config.yaml")
		Expect(os.WriteFile(configFilePath, configYaml, 0755)).To(Succeed())

		builder, err = config.NewBuilderFromFile(configFilePath)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(configDir)).To(Succeed())
	})

	It("keeps the file values when no overrides are applied", func() {
		cfg, err := builder.Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.OutputDir).To(Equal("/var/reports"))
		Expect(cfg.TopProcesses).To(Equal(10))
		Expect(cfg.ConnectivityEndpoint).To(Equal("1.1.1.1:53"))
	})

	Describe("WithOutputDir", func() {
		It("overrides the file value", func() {
			cfg, err := builder.WithOutputDir("/elsewhere").Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.OutputDir).To(Equal("/elsewhere"))
		})

		Context("when empty", func() {
			It("keeps the file value", func() {
				cfg, err := builder.WithOutputDir("").Build()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.OutputDir).To(Equal("/var/reports"))
			})
		})
	})

	Describe("WithTopProcesses", func() {
		It("overrides the file value", func() {
			cfg, err := builder.WithTopProcesses(3).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.TopProcesses).To(Equal(3))
		})

		Context("when zero", func() {
			It("keeps the file value", func() {
				cfg, err := builder.WithTopProcesses(0).Build()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.TopProcesses).To(Equal(10))
			})
		})
	})

	Describe("WithConnectivityEndpoint", func() {
		It("overrides the file value", func() {
			cfg, err := builder.WithConnectivityEndpoint("9.9.9.9:53").Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.ConnectivityEndpoint).To(Equal("9.9.9.9:53"))
		})

		Context("when empty", func() {
			It("keeps the file value", func() {
				cfg, err := builder.WithConnectivityEndpoint("").Build()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.ConnectivityEndpoint).To(Equal("1.1.1.1:53"))
			})
		})
	})

	Describe("defaults", func() {
		It("fills in everything left unset", func() {
			cfg, err := config.NewBuilder().Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.OutputDir).To(Equal("."))
			Expect(cfg.TopProcesses).To(Equal(config.DefaultTopProcesses))
			Expect(cfg.ConnectivityEndpoint).To(Equal("8.8.8.8:53"))
		})
	})

	Describe("validation", func() {
		Context("when the top-processes override is negative", func() {
			It("returns an error", func() {
				_, err := builder.WithTopProcesses(-1).Build()
				Expect(err).To(MatchError(ContainSubstring("invalid top_processes")))
			})
		})

		Context("when the file carries a negative top_processes", func() {
			BeforeEach(func() {
				configTopProcesses = -5
			})

			It("returns an error", func() {
				_, err := builder.Build()
				Expect(err).To(MatchError(ContainSubstring("invalid top_processes")))
			})
		})
	})
})

package config

import (
	"fmt"

	"syshealth/probes"
)

const DefaultTopProcesses = 5

type Builder struct {
	config *Config
}

func NewBuilder() *Builder {
	return &Builder{
		config: &Config{},
	}
}

func NewBuilderFromFile(pathToYaml string) (*Builder, error) {
	config, err := Load(pathToYaml)
	if err != nil {
		return nil, err
	}

	return &Builder{
		config: &config,
	}, nil
}

// Build validates the merged config and fills in the defaults for anything
// still unset.
func (b *Builder) Build() (Config, error) {
	if b.config.TopProcesses < 0 {
		return Config{}, fmt.Errorf("invalid top_processes: must be positive, got %d", b.config.TopProcesses)
	}

	if b.config.OutputDir == "" {
		b.config.OutputDir = "."
	}
	if b.config.TopProcesses == 0 {
		b.config.TopProcesses = DefaultTopProcesses
	}
	if b.config.ConnectivityEndpoint == "" {
		b.config.ConnectivityEndpoint = probes.DefaultEndpoint
	}

	return *b.config, nil
}

func (b *Builder) WithOutputDir(outputDir string) *Builder {
	if outputDir == "" {
		return b
	}

	b.config.OutputDir = outputDir
	return b
}

func (b *Builder) WithTopProcesses(topProcesses int) *Builder {
	if topProcesses == 0 {
		return b
	}

	b.config.TopProcesses = topProcesses
	return b
}

func (b *Builder) WithConnectivityEndpoint(endpoint string) *Builder {
	if endpoint == "" {
		return b
	}

	b.config.ConnectivityEndpoint = endpoint
	return b
}

package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	OutputDir            string `yaml:"output_dir"`
	TopProcesses         int    `yaml:"top_processes"`
	ConnectivityEndpoint string `yaml:"connectivity_endpoint"`
}

func Load(configPath string) (Config, error) {
	configContent, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config path: %s", err)
	}

	var config Config
	err = yaml.Unmarshal(configContent, &config)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config file: %s", err)
	}

	return config, nil
}

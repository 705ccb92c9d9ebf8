package main

import (
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/hupe1980/pairstore/bench"
)

// TOMLConfig represents the structure of the pairbench TOML config file
type TOMLConfig struct {
	Ops          int      `toml:"ops"`
	Seed         *int64   `toml:"seed"`
	Workloads    []string `toml:"workloads"`
	Impls        []string `toml:"impls"`
	CapacityHint *int     `toml:"capacity_hint"`
	LogLevel     string   `toml:"log_level"`
	LogFormat    string   `toml:"log_format"`
	Report       string   `toml:"report"`
	Codec        string   `toml:"codec"`
	MetricsFile  string   `toml:"metrics_file"`
}

// loadConfigFile applies the TOML config file to every CLI field that still
// holds its default value. Flags given on the command line take precedence.
func loadConfigFile(cli *CLI) error {
	if cli.ConfigFile == "" {
		return nil
	}

	configBytes, err := os.ReadFile(cli.ConfigFile)
	if err != nil {
		return err
	}

	var tomlCfg TOMLConfig
	if _, err = toml.Decode(string(configBytes), &tomlCfg); err != nil {
		return err
	}

	if cli.Ops == bench.DefaultOps && tomlCfg.Ops != 0 {
		cli.Ops = tomlCfg.Ops
	}
	if cli.Seed == bench.DefaultSeed && tomlCfg.Seed != nil {
		cli.Seed = *tomlCfg.Seed
	}
	if slices.Equal(cli.Workloads, defaultWorkloads()) && len(tomlCfg.Workloads) > 0 {
		cli.Workloads = tomlCfg.Workloads
	}
	if slices.Equal(cli.Impls, bench.ImplNames()) && len(tomlCfg.Impls) > 0 {
		cli.Impls = tomlCfg.Impls
	}
	if cli.CapacityHint == -1 && tomlCfg.CapacityHint != nil {
		cli.CapacityHint = *tomlCfg.CapacityHint
	}
	if cli.LogLevel == defaultLogLevel && tomlCfg.LogLevel != "" {
		cli.LogLevel = tomlCfg.LogLevel
	}
	if cli.LogFormat == defaultLogFormat && tomlCfg.LogFormat != "" {
		cli.LogFormat = tomlCfg.LogFormat
	}
	if cli.Report == "" && tomlCfg.Report != "" {
		cli.Report = tomlCfg.Report
	}
	if cli.Codec == defaultCodec && tomlCfg.Codec != "" {
		cli.Codec = tomlCfg.Codec
	}
	if cli.MetricsFile == "" && tomlCfg.MetricsFile != "" {
		cli.MetricsFile = tomlCfg.MetricsFile
	}
	return nil
}

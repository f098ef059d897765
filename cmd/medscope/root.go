package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/medwire/inspector"
)

// fileConfig mirrors the inspector options in YAML form. Zero values
// leave the corresponding default untouched.
type fileConfig struct {
	MaxInputSize        int `yaml:"maxInputSize"`
	MaxProbeDepth       int `yaml:"maxProbeDepth"`
	MaxTreeDepth        int `yaml:"maxTreeDepth"`
	MaxTreeItems        int `yaml:"maxTreeItems"`
	MaxStructureEntries int `yaml:"maxStructureEntries"`
	MaxFieldsPerRecord  int `yaml:"maxFieldsPerRecord"`
	Workers             int `yaml:"workers"`
}

// rootFlags holds the persistent flags shared by all subcommands.
type rootFlags struct {
	configPath string
	output     string
	workers    int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:     "medscope",
		Short:   "Inspect healthcare message payloads",
		Long:    "medscope classifies pasted healthcare message text (HL7 v2, HL7 v3 CDA, FHIR, ASTM, JSON, XML), parses it into a normalized form and reports its structure.",
		Version: version,
		// Subcommands do their own argument handling.
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file with engine limits")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "text", "Output format: text, json")
	cmd.PersistentFlags().IntVar(&flags.workers, "workers", 0, "Worker count for batch parsing (0 = number of CPUs)")

	cmd.AddCommand(newDetectCmd(flags))
	cmd.AddCommand(newParseCmd(flags))
	cmd.AddCommand(newTreeCmd(flags))

	return cmd
}

// engineOptions builds the inspector options from the config file, when
// one was given.
func (f *rootFlags) engineOptions() ([]inspector.Option, error) {
	var opts []inspector.Option

	if f.configPath != "" {
		data, err := os.ReadFile(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		var cfg fileConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		opts = append(opts,
			inspector.WithMaxInputSize(cfg.MaxInputSize),
			inspector.WithMaxProbeDepth(cfg.MaxProbeDepth),
			inspector.WithMaxTreeDepth(cfg.MaxTreeDepth),
			inspector.WithMaxTreeItems(cfg.MaxTreeItems),
			inspector.WithMaxStructureEntries(cfg.MaxStructureEntries),
			inspector.WithMaxFieldsPerRecord(cfg.MaxFieldsPerRecord),
			inspector.WithWorkerCount(cfg.Workers),
		)
	}

	if f.workers > 0 {
		opts = append(opts, inspector.WithWorkerCount(f.workers))
	}
	return opts, nil
}

func (f *rootFlags) jsonOutput() bool {
	return f.output == "json"
}

// readInput reads one input: a file path, or stdin when the argument is
// "-" or absent.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}

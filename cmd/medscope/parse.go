package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/medwire/inspector"
	"github.com/medwire/inspector/detect"
	"github.com/medwire/inspector/parse"
	"github.com/medwire/inspector/worker"
)

// parseOutput is the JSON output structure for one parsed input.
type parseOutput struct {
	Input     string  `json:"input"`
	Format    string  `json:"format,omitempty"`
	Version   string  `json:"version,omitempty"`
	Error     string  `json:"error,omitempty"`
	Formatted string  `json:"formatted,omitempty"`
	Analysis  any     `json:"analysis,omitempty"`
	Duration  float64 `json:"durationMs"`
}

func newParseCmd(flags *rootFlags) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "parse [file...|-]",
		Short: "Parse messages into normalized form",
		Long:  "Parse one or more messages. The format is detected automatically unless pinned with --format. Multiple files are parsed in parallel.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.engineOptions()
			if err != nil {
				return err
			}

			var format inspector.Format
			if formatFlag != "" {
				format = inspector.Format(formatFlag)
				if !format.IsValid() {
					return fmt.Errorf("unknown format %q", formatFlag)
				}
			}

			inputs, err := collectInputs(args)
			if err != nil {
				return err
			}

			// Batches often repeat the same payload; memoize detection.
			detector := detect.NewCached(128)
			parser := parse.New(opts...)

			o := inspector.DefaultOptions()
			for _, opt := range opts {
				opt(o)
			}
			pool := worker.NewPool(detector, parser, o.WorkerCount)
			for _, in := range inputs {
				pool.Submit(worker.Job{ID: in.Name, Text: in.Text, Format: format})
			}
			batch := pool.CloseAndWait()

			outputs := orderedOutputs(inputs, batch)

			if flags.jsonOutput() {
				out, err := json.MarshalIndent(outputs, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
			} else {
				for _, out := range outputs {
					printParsed(cmd, out)
				}
			}

			if batch.HasErrors() {
				return fmt.Errorf("%d of %d input(s) failed", batch.FailureCount(), batch.TotalJobs)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Pin the format instead of detecting: hl7v2, hl7v3, fhir, astm, json, xml")
	return cmd
}

// namedInput is one message text with its display name.
type namedInput struct {
	Name string
	Text string
}

// collectInputs resolves the arguments to named message texts: stdin for
// "-" or no arguments, glob-expanded file paths otherwise. Order follows
// the arguments (and the sorted glob expansion within each), so batch
// output is deterministic across runs.
func collectInputs(args []string) ([]namedInput, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		text, name, err := readInput(args)
		if err != nil {
			return nil, err
		}
		return []namedInput{{Name: name, Text: text}}, nil
	}

	var inputs []namedInput
	seen := make(map[string]bool)
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", arg)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			data, err := os.ReadFile(match)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", match, err)
			}
			inputs = append(inputs, namedInput{Name: match, Text: string(data)})
		}
	}
	return inputs, nil
}

// orderedOutputs reports the batch results in input order; the pool
// delivers them in completion order.
func orderedOutputs(inputs []namedInput, batch *worker.BatchResult) []parseOutput {
	byID := make(map[string]*worker.JobResult, len(batch.Results))
	for _, r := range batch.Results {
		byID[r.ID] = r
	}

	outputs := make([]parseOutput, 0, len(inputs))
	for _, in := range inputs {
		if r, ok := byID[in.Name]; ok {
			outputs = append(outputs, toOutput(r))
		}
	}
	return outputs
}

func toOutput(r *worker.JobResult) parseOutput {
	out := parseOutput{
		Input:    r.ID,
		Duration: float64(r.Duration) / 1e6,
	}
	if r.Error != nil {
		out.Error = r.Error.Error()
	}
	if r.Detection != nil {
		out.Format = string(r.Detection.Format)
		out.Version = r.Detection.Version
	}
	if r.Parsed != nil {
		out.Format = string(r.Parsed.Format)
		if r.Parsed.Version != "" {
			out.Version = r.Parsed.Version
		}
		out.Formatted = r.Parsed.Formatted
		out.Analysis = r.Parsed.Analysis
	}
	return out
}

func printParsed(cmd *cobra.Command, out parseOutput) {
	cmd.Printf("== %s ==\n", out.Input)
	if out.Error != "" {
		cmd.Printf("Status: FAILED\n%s\n\n", out.Error)
		return
	}

	cmd.Printf("Format: %s\n", out.Format)
	if out.Version != "" {
		cmd.Printf("Version: %s\n", out.Version)
	}
	cmd.Println()
	cmd.Println(out.Formatted)

	if out.Analysis != nil {
		analysis, err := json.MarshalIndent(out.Analysis, "", "  ")
		if err == nil {
			cmd.Println("\nAnalysis:")
			cmd.Println(string(analysis))
		}
	}
	cmd.Println()
}

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medwire/inspector"
	"github.com/medwire/inspector/detect"
	"github.com/medwire/inspector/parse"
	"github.com/medwire/inspector/tree"
)

func newTreeCmd(flags *rootFlags) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "tree [file|-]",
		Short: "Render a message's structure as a bounded tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.engineOptions()
			if err != nil {
				return err
			}

			text, name, err := readInput(args)
			if err != nil {
				return err
			}

			var format inspector.Format
			if formatFlag != "" {
				format = inspector.Format(formatFlag)
				if !format.IsValid() {
					return fmt.Errorf("unknown format %q", formatFlag)
				}
			} else {
				detection := detect.New().Detect(text)
				if detection == nil {
					return fmt.Errorf("%s: no supported format matched", name)
				}
				format = detection.Format
			}

			result, err := parse.New(opts...).Parse(text, format)
			if err != nil {
				return err
			}

			value, err := genericAnalysis(result.Analysis)
			if err != nil {
				return err
			}
			root := tree.Build(value, opts...)

			if flags.jsonOutput() {
				out, err := json.MarshalIndent(root, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
				return nil
			}

			cmd.Printf("== %s (%s) ==\n", name, format)
			printTree(cmd, root, 0)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Pin the format instead of detecting: hl7v2, hl7v3, fhir, astm, json, xml")
	return cmd
}

// genericAnalysis round-trips a typed analysis through JSON so the tree
// builder sees plain maps and slices.
func genericAnalysis(analysis any) (any, error) {
	data, err := json.Marshal(analysis)
	if err != nil {
		return nil, err
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func printTree(cmd *cobra.Command, n *tree.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	line := fmt.Sprintf("%s%s", indent, n.Key)
	if n.Value != "" {
		line += ": " + n.Value
	}
	if n.IsPriority {
		line += " *"
	}
	cmd.Println(line)
	for _, child := range n.Children {
		printTree(cmd, child, depth+1)
	}
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medwire/inspector/detect"
)

func newDetectCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file|-]",
		Short: "Classify a message's format",
		Long:  "Classify message text as hl7v2, hl7v3, fhir, astm, json or xml, with a confidence score and a best-effort version.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, name, err := readInput(args)
			if err != nil {
				return err
			}

			result := detect.New().Detect(text)
			if result == nil {
				return fmt.Errorf("%s: no supported format matched", name)
			}

			if flags.jsonOutput() {
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
				return nil
			}

			cmd.Printf("== %s ==\n", name)
			cmd.Printf("Format:     %s\n", result.Format)
			if result.Version != "" {
				cmd.Printf("Version:    %s\n", result.Version)
			}
			cmd.Printf("Confidence: %.2f\n", result.Confidence)
			if mt := detect.MessageType(text, result.Format); mt != "" {
				cmd.Printf("Type:       %s\n", mt)
			}
			return nil
		},
	}
}

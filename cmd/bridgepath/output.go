package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// print writes v in the selected format. text renders the human form.
func (e *env) print(cmd *cobra.Command, v any, text func() string) error {
	out := cmd.OutOrStdout()

	switch e.format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(out, text())
		return err
	}
}

func formatPlan(p domain.StartupPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n%s\n", p.StartupName, p.Tagline, p.ValueProposition)
	if p.TargetAudience != "" {
		fmt.Fprintf(&b, "\nTarget audience: %s\n", p.TargetAudience)
	}
	b.WriteString("\nRoadmap:\n")
	for i, phase := range p.Roadmap {
		fmt.Fprintf(&b, "  %d. %s: %s\n", i+1, phase.Phase, phase.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

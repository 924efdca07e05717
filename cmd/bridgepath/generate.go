package main

import (
	"fmt"

	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/spf13/cobra"
)

type setupFunc func(cmd *cobra.Command) (*env, error)

// result is the envelope printed for one-shot generations.
type result[T any] struct {
	Result T    `json:"result" yaml:"result"`
	Demo   bool `json:"demo"   yaml:"demo"`
}

func startupCmd(setup setupFunc) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "startup [research text | -]",
		Short: "Turn research text into a startup plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			res := e.gateway.TryConvertResearchToStartup(cmd.Context(), text)
			if err := e.check(cmd, res.Err, res.Demo); err != nil {
				return err
			}
			return e.print(cmd, result[domain.StartupPlan]{Result: res.Value, Demo: res.Demo}, func() string {
				return formatPlan(res.Value)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read research text from a file")
	return cmd
}

func essayCmd(setup setupFunc) *cobra.Command {
	var scholarship, file string

	cmd := &cobra.Command{
		Use:   "essay --scholarship NAME [your background | -]",
		Short: "Draft a scholarship essay",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			res := e.gateway.TryGenerateScholarshipEssay(cmd.Context(), scholarship, details)
			if err := e.check(cmd, res.Err, res.Demo); err != nil {
				return err
			}
			return e.print(cmd, result[string]{Result: res.Value, Demo: res.Demo}, func() string {
				return res.Value
			})
		},
	}
	cmd.Flags().StringVarP(&scholarship, "scholarship", "s", "", "Scholarship name")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read your background from a file")
	_ = cmd.MarkFlagRequired("scholarship")
	return cmd
}

func pitchCmd(setup setupFunc) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "pitch [pitch text | -]",
		Short: "Score how ready a pitch is for investors",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			res := e.gateway.TryAnalyzePitchReadiness(cmd.Context(), text)
			if err := e.check(cmd, res.Err, res.Demo); err != nil {
				return err
			}
			return e.print(cmd, result[domain.ReadinessAssessment]{Result: res.Value, Demo: res.Demo}, func() string {
				return fmt.Sprintf("Readiness: %.0f/100\n\n%s", res.Value.Score, res.Value.Feedback)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the pitch from a file")
	return cmd
}

// check reports an unmasked failure as an error and notes demo results on
// stderr.
func (e *env) check(cmd *cobra.Command, err error, demo bool) error {
	if err == nil {
		return nil
	}
	if demo {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: the model is unavailable, showing a demo result")
		return nil
	}
	return fmt.Errorf("%w: %w", errGenerationFailed, err)
}

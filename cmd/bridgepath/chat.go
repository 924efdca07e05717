package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bridgepath-ai/gateway/internal/chat"
	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/fallback"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func chatCmd(setup setupFunc) *cobra.Command {
	var historyFile string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the hackathon mentor",
		Long: `Start an interactive mentor chat. Each line read from stdin is one
message. Type /quit or send EOF to leave.

--history seeds the conversation from a YAML or JSON list of
{role, text} turns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prior, err := loadHistory(historyFile)
			if err != nil {
				return err
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			session := e.gateway.CreateHackathonChat(cmd.Context(), prior)
			defer session.Close()

			return e.chatLoop(cmd, session)
		},
	}
	cmd.Flags().StringVar(&historyFile, "history", "", "File with earlier conversation turns")
	return cmd
}

func (e *env) chatLoop(cmd *cobra.Command, session *chat.Session) error {
	out := cmd.OutOrStdout()
	if err := e.printMessage(cmd, domain.NewChatMessage(domain.RoleModel, fallback.ChatGreeting), false); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for {
		if e.format == formatText {
			fmt.Fprint(out, "you> ")
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		}

		res := e.gateway.Reply(cmd.Context(), session, line)
		if res.Err != nil && !res.Demo {
			if errors.Is(res.Err, chat.ErrSessionClosed) || e.strict {
				return fmt.Errorf("%w: %w", errGenerationFailed, res.Err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", res.Err)
			continue
		}

		if err := e.printMessage(cmd, domain.NewChatMessage(domain.RoleModel, res.Value), res.Demo); err != nil {
			return err
		}
	}

	if e.format == formatText {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}

// printMessage writes one mentor message. JSON output is a stream of
// objects; YAML output is a stream of documents.
func (e *env) printMessage(cmd *cobra.Command, msg domain.ChatMessage, demo bool) error {
	out := cmd.OutOrStdout()
	payload := struct {
		Message domain.ChatMessage `json:"message" yaml:"message"`
		Demo    bool               `json:"demo"    yaml:"demo"`
	}{msg, demo}

	switch e.format {
	case formatJSON:
		return e.print(cmd, payload, nil)
	case formatYAML:
		fmt.Fprintln(out, "---")
		return e.print(cmd, payload, nil)
	default:
		_, err := fmt.Fprintf(out, "mentor> %s\n", msg.Text)
		return err
	}
}

func loadHistory(path string) ([]domain.Turn, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	// YAML is a superset of JSON, so one decoder reads both.
	var turns []domain.Turn
	if err := yaml.Unmarshal(data, &turns); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	for i, t := range turns {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("history turn %d: %w", i+1, err)
		}
	}
	return turns, nil
}

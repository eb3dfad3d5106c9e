// Package agent implements the interactive analyst behind the `assist`
// command: a chat session primed with the user's options profitability
// report.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const modelName = "gemini-2.5-flash"

const systemInstruction = `You are an options trading analyst. The user will
share an options profitability report: per-symbol trade grids, per-contract
settlement chains, and realized profit totals. Open interest counts currently
outstanding contracts; a profit marked provisional belongs to a position that
is still open. Answer questions about the report concisely and never invent
trades that are not in it.`

// Analyst is a chat session over one rendered report.
type Analyst struct {
	report string
	chat   *genai.Chat
}

// NewAnalyst primes an analyst with the rendered markdown report.
func NewAnalyst(report string) *Analyst {
	return &Analyst{report: report}
}

// Start creates the underlying chat and shares the report as its first turn.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, modelName, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat

	_, err = chat.Send(ctx, &genai.Part{Text: "Here is my current report:\n\n" + a.report})
	return err
}

// Ask sends one question and returns the analyst's answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}

const prompt = "assist> "

// Run starts the interactive REPL session over the report. Any initial
// prompts are flushed before reading from r.
func (a *Analyst) Run(ctx context.Context, client *genai.Client, w io.Writer, r io.Reader, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Ask about your options report. Type 'bye' to exit.")
	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			fmt.Fprintln(w, input)
		} else {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
			input = line
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" || input == "exit" || input == "quit" {
			fmt.Fprintln(w, "Goodbye.")
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}

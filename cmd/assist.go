package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/smehra/lotwise"
	"github.com/smehra/lotwise/renderer"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.5-flash"

const assistInstruction = `You are a tax accounting assistant. You receive a
markdown tax-loss harvesting report with FIFO lot details, short-term and
long-term unrealized losses. Explain in plain language what the report says
and which positions are worth reviewing. Short-term means held 365 days or
less. Do not give investment advice beyond explaining the numbers.`

// assistCmd asks Gemini to explain the current harvest report.
type assistCmd struct {
	asOf string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "explain the harvest report in plain language" }
func (*assistCmd) Usage() string {
	return `lotwise assist [-d <date>] [question ...]

  Builds the harvesting report from cached quotes and asks Gemini to explain
  it, optionally answering a specific question. Requires GEMINI_API_KEY.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "d", "0d", "Evaluation date for the report.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := lotwise.ParseDate(c.asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	trades, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	quotes, err := LoadQuotes()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	book := lotwise.Process(trades, asOf)
	priced := lotwise.ApplyQuotes(book.Holdings, quotes, asOf)
	report := renderer.HarvestMarkdown(priced, asOf)

	prompt := "Here is my harvesting report:\n\n" + report
	if f.NArg() > 0 {
		prompt += "\n\nQuestion: " + strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: assistInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, assistModel, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error from Gemini:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "No response from Gemini")
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}

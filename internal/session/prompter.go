package session

import (
	"context"
	"fmt"

	"github.com/mvaldesr/quizline/internal/console"
)

// Prompter asks the client a question and waits for the trimmed reply.
// Calls within one handler are strictly sequential; a suspended Ask belongs
// to exactly one session and stalls nobody else.
type Prompter struct {
	out *console.Printer
	in  LineReader
}

// NewPrompter binds a printer and a line source into a prompter.
func NewPrompter(out *console.Printer, in LineReader) *Prompter {
	return &Prompter{out: out, in: in}
}

// Ask prints the prompt and returns the client's next line, trimmed.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	p.out.Prompt(p.out.Colorize(console.TagRed, prompt))
	return p.in.ReadLine(ctx)
}

// AskPrefill asks with an editable default shown in the prompt; an empty
// reply keeps the prefill.
func (p *Prompter) AskPrefill(ctx context.Context, prompt, prefill string) (string, error) {
	answer, err := p.Ask(ctx, fmt.Sprintf("%s[%s] ", prompt, prefill))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return prefill, nil
	}
	return answer, nil
}

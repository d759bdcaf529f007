package session

import (
	"context"
	"strings"
	"unicode"
)

// Handler executes one command. arg is the rest of the input line, trimmed.
type Handler func(ctx context.Context, s *Session, arg string) error

// command is one entry in the session's dispatch table.
type command struct {
	name    string
	aliases []string
	usage   string
	summary string
	run     Handler
}

// commands enumerates the full surface in help order. Keyword match is
// case-sensitive and exact; anything else is an unrecognized command.
func commands() []*command {
	return []*command{
		{name: "help", aliases: []string{"h"}, usage: "h|help", summary: "show this help", run: handleHelp},
		{name: "list", usage: "list", summary: "list all quizzes", run: handleList},
		{name: "show", usage: "show <id>", summary: "show the question and answer of a quiz", run: handleShow},
		{name: "add", usage: "add", summary: "add a new quiz interactively", run: handleAdd},
		{name: "delete", usage: "delete <id>", summary: "delete a quiz", run: handleDelete},
		{name: "edit", usage: "edit <id>", summary: "edit a quiz", run: handleEdit},
		{name: "test", usage: "test <id>", summary: "try to answer one quiz", run: handleTest},
		{name: "play", aliases: []string{"p"}, usage: "p|play", summary: "answer all quizzes in random order", run: handlePlay},
		{name: "credits", usage: "credits", summary: "show credits", run: handleCredits},
		{name: "quit", aliases: []string{"q"}, usage: "q|quit", summary: "end the session", run: handleQuit},
	}
}

// newCommandTable maps every keyword and alias to its command.
func newCommandTable() map[string]*command {
	table := make(map[string]*command)
	for _, cmd := range commands() {
		table[cmd.name] = cmd
		for _, alias := range cmd.aliases {
			table[alias] = cmd
		}
	}
	return table
}

// splitCommand tokenizes a raw line into keyword and remainder. The keyword
// ends at the first whitespace of any kind.
func splitCommand(line string) (keyword, arg string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		return line[:i], strings.TrimSpace(line[i:])
	}
	return line, ""
}

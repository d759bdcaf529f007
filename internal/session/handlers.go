package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvaldesr/quizline/internal/catalog"
	"github.com/mvaldesr/quizline/internal/console"
)

func handleHelp(_ context.Context, s *Session, _ string) error {
	s.printer.Line("Commands:")
	for _, cmd := range commands() {
		s.printer.Linef("  %-12s %s", cmd.usage, cmd.summary)
	}
	return nil
}

func handleList(ctx context.Context, s *Session, _ string) error {
	quizzes, err := s.catalog.List(ctx)
	if err != nil {
		return err
	}
	for _, quiz := range quizzes {
		s.printer.Linef(" [%s]: %s", s.printer.Colorize(console.TagMagenta, fmt.Sprint(quiz.ID)), quiz.Question)
	}
	return nil
}

func handleShow(ctx context.Context, s *Session, arg string) error {
	quiz, err := s.requireQuiz(ctx, arg)
	if err != nil {
		return err
	}
	s.printQuiz(quiz)
	return nil
}

func handleAdd(ctx context.Context, s *Session, _ string) error {
	question, err := s.prompter.Ask(ctx, " Enter the question: ")
	if err != nil {
		return err
	}
	answer, err := s.prompter.Ask(ctx, " Enter the answer: ")
	if err != nil {
		return err
	}

	quiz, err := s.catalog.Create(ctx, question, answer)
	if err != nil {
		return err
	}
	s.printer.Linef(" %s: %s %s %s",
		s.printer.Colorize(console.TagMagenta, "Added"),
		quiz.Question,
		s.printer.Colorize(console.TagMagenta, "=>"),
		quiz.Answer)
	return nil
}

func handleDelete(ctx context.Context, s *Session, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := s.catalog.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return errNoSuchID(id)
		}
		return err
	}
	return nil
}

func handleEdit(ctx context.Context, s *Session, arg string) error {
	quiz, err := s.requireQuiz(ctx, arg)
	if err != nil {
		return err
	}

	question, err := s.prompter.AskPrefill(ctx, " Enter the question: ", quiz.Question)
	if err != nil {
		return err
	}
	answer, err := s.prompter.AskPrefill(ctx, " Enter the answer: ", quiz.Answer)
	if err != nil {
		return err
	}

	quiz.Question = question
	quiz.Answer = answer
	if err := s.catalog.Save(ctx, quiz); err != nil {
		return err
	}
	s.printer.Linef(" Quiz %s changed to: %s %s %s",
		s.printer.Colorize(console.TagMagenta, fmt.Sprint(quiz.ID)),
		quiz.Question,
		s.printer.Colorize(console.TagMagenta, "=>"),
		quiz.Answer)
	return nil
}

func handleTest(ctx context.Context, s *Session, arg string) error {
	quiz, err := s.requireQuiz(ctx, arg)
	if err != nil {
		return err
	}

	answer, err := s.prompter.Ask(ctx, fmt.Sprintf(" %s : ", quiz.Question))
	if err != nil {
		return err
	}

	// An empty or garbled answer is simply a wrong answer; the comparison
	// always produces an outcome.
	if answersMatch(answer, quiz.Answer) {
		s.printer.Line("Correct")
		s.printer.Banner("CORRECT", console.TagGreen)
	} else {
		s.printer.Line("Incorrect")
		s.printer.Banner("INCORRECT", console.TagRed)
	}
	return nil
}

func handleCredits(_ context.Context, s *Session, _ string) error {
	s.printer.Line("Quizline author:")
	s.printer.Tagged(console.TagGreen, "M. Valdes")
	return nil
}

func handleQuit(_ context.Context, _ *Session, _ string) error {
	return ErrQuit
}

func (s *Session) printQuiz(quiz *catalog.Quiz) {
	s.printer.Linef(" [%s]: %s %s %s",
		s.printer.Colorize(console.TagMagenta, fmt.Sprint(quiz.ID)),
		quiz.Question,
		s.printer.Colorize(console.TagMagenta, "=>"),
		quiz.Answer)
}

package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/arcanaland/tarotsim/internal/locale"
	"github.com/arcanaland/tarotsim/internal/render"
	"github.com/arcanaland/tarotsim/internal/spread"
)

// Interpreter produces the extensive prose reading
type Interpreter interface {
	Available() bool
	Interpret(ctx context.Context, r spread.Reading, b *locale.Bundle) (string, error)
}

// Present prints a reading followed, when requested, by its extensive
// interpretation. A failed interpretation never hides the reading.
func Present(ctx context.Context, p *render.Printer, r spread.Reading, interp Interpreter, extensive bool, logger *slog.Logger) {
	p.Reading(r)
	if !extensive || interp == nil {
		return
	}

	if interp.Available() {
		p.Generating()
	}
	text, err := interp.Interpret(ctx, r, p.Bundle())
	if err != nil && logger != nil {
		logger.WarnContext(ctx, "extensive reading failed", "reading", r.ID(), "error", err)
	}
	p.Extensive(text, err)
}

// Session is an interactive loop: pick a spread, ask a question, read the
// cards, repeat
type Session struct {
	in      *LineReader
	out     io.Writer
	printer *render.Printer
	engine  *spread.Engine
	interp  Interpreter
	logger  *slog.Logger
	spreads []spread.Spread
}

// NewSession creates a session reading answers from in and writing to the
// printer. interp may be nil.
func NewSession(in io.Reader, out io.Writer, printer *render.Printer, engine *spread.Engine, interp Interpreter, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		in:      NewLineReader(in),
		out:     out,
		printer: printer,
		engine:  engine,
		interp:  interp,
		logger:  logger,
		spreads: spread.All(),
	}
}

func (s *Session) labels() locale.Labels {
	return s.printer.Bundle().Labels
}

func (s *Session) aiAvailable() bool {
	return s.interp != nil && s.interp.Available()
}

// Run loops until the user quits, input ends or ctx is canceled
func (s *Session) Run(ctx context.Context) error {
	l := s.labels()

	fmt.Fprintf(s.out, "🔮 %s 🔮\n", l.Welcome)
	if s.aiAvailable() {
		fmt.Fprintf(s.out, "✨ %s\n", l.AIAvailable)
	}
	s.printer.Spreads(s.spreads)

	for {
		again, err := s.round(ctx)
		if errors.Is(err, ErrInputCancelled) || errors.Is(err, io.EOF) {
			fmt.Fprintf(s.out, "\n\n%s 🌟\n", l.Goodbye)
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintf(s.out, "%s 🌟\n", l.Goodbye)
			return nil
		}
	}
}

// round runs one menu iteration and reports whether to continue
func (s *Session) round(ctx context.Context) (bool, error) {
	l := s.labels()
	b := s.printer.Bundle()

	choice, err := s.ask(ctx, "\n"+l.ChooseSpread)
	if err != nil {
		return false, err
	}
	choice = strings.ToLower(choice)
	if choice == "q" {
		return false, nil
	}

	sp, ok := s.choose(choice)
	if !ok {
		fmt.Fprintln(s.out, l.InvalidChoice)
		return true, nil
	}

	question, err := s.ask(ctx, l.EnterQuestion)
	if err != nil {
		return false, err
	}

	extensive := false
	if s.aiAvailable() {
		reply, err := s.ask(ctx, l.AskExtensive)
		if err != nil {
			return false, err
		}
		extensive = b.IsYes(reply)
	}

	fmt.Fprintf(s.out, "\n🃏 %s\n", l.Shuffling)

	r, err := s.engine.ReadSpread(sp, question)
	if err != nil {
		s.logger.ErrorContext(ctx, "reading failed", "spread", sp.Kind, "error", err)
		fmt.Fprintf(s.out, "%s: %v\n", l.ErrorOccurred, err)
		return true, nil
	}
	Present(ctx, s.printer, r, s.interp, extensive, s.logger)

	another, err := s.ask(ctx, "\n"+l.AskAnother)
	if err != nil {
		return false, err
	}
	return b.IsYes(another), nil
}

// choose maps a menu number (1-based) to a spread
func (s *Session) choose(choice string) (spread.Spread, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(s.spreads) {
		return spread.Spread{}, false
	}
	return s.spreads[n-1], true
}

func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	return s.in.ReadLine(ctx)
}

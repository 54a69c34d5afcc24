// Package buddy produces the short friendly texts shown on the reward screen:
// riddles, praise for the last score, and fun facts.
//
// The service never fails from the caller's point of view. Generator errors,
// timeouts and empty replies all become one of the configured fallback texts.
package buddy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zukko-arcade/internal/config"
)

// Kind is the type of text requested.
type Kind int

const (
	KindRiddle Kind = iota
	KindPraise
	KindFunFact
)

// Kinds lists every request kind.
var Kinds = []Kind{KindRiddle, KindPraise, KindFunFact}

// String returns the kind's identifier.
func (k Kind) String() string {
	switch k {
	case KindRiddle:
		return "riddle"
	case KindPraise:
		return "praise"
	case KindFunFact:
		return "fact"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps an identifier back to a kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return KindRiddle, fmt.Errorf("buddy: unknown kind %q (want riddle, praise or fact)", s)
}

// Request is what a generator is asked to answer.
type Request struct {
	Kind   Kind
	Score  int
	Prompt string
}

// Generator produces reply text. Implementations must be safe for concurrent
// use; one generator is shared by every session.
type Generator interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

// Reply is the text to show and whether it is a fallback.
type Reply struct {
	Kind     Kind
	Text     string
	Fallback bool
}

// Service turns requests into replies.
type Service struct {
	cfg    config.BuddyConfig
	gen    Generator
	logger *log.Logger
}

// NewService creates a service around a generator. A nil logger discards.
func NewService(cfg config.BuddyConfig, gen Generator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{cfg: cfg, gen: gen, logger: logger}
}

// Backend names the generator in use.
func (s *Service) Backend() string {
	return s.gen.Name()
}

// Greeting returns the text shown before any request.
func (s *Service) Greeting() string {
	return s.cfg.Greeting
}

// Prompt builds the request text for a kind.
func (s *Service) Prompt(kind Kind, score int) (string, error) {
	var text string
	switch kind {
	case KindRiddle:
		text = s.cfg.Prompts.Riddle
	case KindPraise:
		text = s.cfg.Prompts.Praise
	case KindFunFact:
		text = s.cfg.Prompts.FunFact
	default:
		return "", fmt.Errorf("buddy: unknown kind %d", int(kind))
	}
	return fill(text, score)
}

// Request asks the generator for one reply, bounded by the configured timeout.
func (s *Service) Request(ctx context.Context, kind Kind, score int) Reply {
	score = max(score, 0)

	prompt, err := s.Prompt(kind, score)
	if err != nil {
		s.logger.Warn("buddy prompt failed", "kind", kind, "error", err)
		return Reply{Kind: kind, Text: s.cfg.Fallbacks.Failure, Fallback: true}
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	text, err := s.gen.Generate(ctx, Request{Kind: kind, Score: score, Prompt: prompt})
	if err != nil {
		s.logger.Warn("buddy request failed", "backend", s.gen.Name(), "kind", kind, "error", err)
		return Reply{Kind: kind, Text: s.cfg.Fallbacks.Failure, Fallback: true}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.logger.Warn("buddy reply was empty", "backend", s.gen.Name(), "kind", kind)
		return Reply{Kind: kind, Text: s.cfg.Fallbacks.Empty, Fallback: true}
	}

	s.logger.Debug("buddy replied", "backend", s.gen.Name(), "kind", kind, "chars", len(text))
	return Reply{Kind: kind, Text: text}
}

// RequestText is Request without the fallback flag.
func (s *Service) RequestText(ctx context.Context, kind Kind, score int) string {
	return s.Request(ctx, kind, score).Text
}

// fill executes a text that may reference {{.Score}}.
func fill(text string, score int) (string, error) {
	tmpl, err := template.New("buddy").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("buddy: parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Score int }{score}); err != nil {
		return "", fmt.Errorf("buddy: execute template: %w", err)
	}
	return buf.String(), nil
}

// Package showcase runs the scripted tour of Gemini capabilities used by scripts/examples.
package showcase

import (
	"context"
	"fmt"
	"io"

	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/log"
)

// Demo is one runnable showcase step.
type Demo struct {
	Name    string
	Heading string
	Short   string
	run     func(*Showcase, context.Context) error
}

// Showcase prints demo output to a writer.
type Showcase struct {
	l      log.Logger
	client gemini.IGemini
	out    io.Writer
}

func New(l log.Logger, client gemini.IGemini, out io.Writer) *Showcase {
	return &Showcase{
		l:      l,
		client: client,
		out:    out,
	}
}

// Demos lists the steps in the order RunAll executes them.
func Demos() []Demo {
	return []Demo{
		{Name: "basic", Heading: "🔹 Basic text generation", Short: "Single prompt, blocking call", run: (*Showcase).basicText},
		{Name: "thinking", Heading: "🔹 Thinking config (disabled reasoning)", Short: "Thinking budget set to 0", run: (*Showcase).thinkingDisabled},
		{Name: "system", Heading: "🔹 System instruction (role-play)", Short: "Role-play through a system instruction", run: (*Showcase).systemInstruction},
		{Name: "stream", Heading: "🔹 Streaming response (generated incrementally)", Short: "Print fragments as they arrive", run: (*Showcase).streaming},
		{Name: "chat", Heading: "🔹 Multi-turn chat", Short: "Two turns with shared history", run: (*Showcase).chat},
	}
}

// Run executes one demo by name.
func (s *Showcase) Run(ctx context.Context, name string) error {
	for _, d := range Demos() {
		if d.Name == name {
			return s.run(ctx, d)
		}
	}
	return fmt.Errorf("unknown demo %q", name)
}

// RunAll executes every demo in order and stops at the first failure.
func (s *Showcase) RunAll(ctx context.Context) error {
	for _, d := range Demos() {
		if err := s.run(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (s *Showcase) run(ctx context.Context, d Demo) error {
	fmt.Fprintln(s.out, d.Heading)
	if err := d.run(s, ctx); err != nil {
		s.l.Errorf(ctx, "internal.showcase.%s: %v", d.Name, err)
		return fmt.Errorf("%s: %w", d.Name, err)
	}
	return nil
}

package showcase

import (
	"context"
	"fmt"

	"gemini-playground/pkg/gemini"
)

const (
	basicPrompt       = "How does AI work?"
	thinkingPrompt    = "Summarize the difference between AI and ML."
	rolePlayPrompt    = "Introduce yourself to a new friend."
	rolePlayPersona   = "You are a cat named Neko. Respond playfully."
	streamPrompt      = "Write a haiku about sunrise over the ocean."
	chatFirstMessage  = "I have 2 dogs in my house."
	chatSecondMessage = "How many paws are in my house?"
)

func (s *Showcase) generate(ctx context.Context, b *gemini.RequestBuilder) error {
	req, err := b.Build()
	if err != nil {
		return err
	}
	text, err := s.client.Generate(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, text, "\n\n")
	return nil
}

func (s *Showcase) basicText(ctx context.Context) error {
	return s.generate(ctx, gemini.NewRequestBuilder("").Prompt(basicPrompt))
}

func (s *Showcase) thinkingDisabled(ctx context.Context) error {
	return s.generate(ctx, gemini.NewRequestBuilder("").Prompt(thinkingPrompt).DisableThinking(true))
}

func (s *Showcase) systemInstruction(ctx context.Context) error {
	return s.generate(ctx, gemini.NewRequestBuilder("").Prompt(rolePlayPrompt).SystemInstruction(rolePlayPersona))
}

// streaming prints only the new suffix of the accumulated text after each fragment.
func (s *Showcase) streaming(ctx context.Context) error {
	req, err := gemini.NewRequestBuilder("").Prompt(streamPrompt).Build()
	if err != nil {
		return err
	}

	printed := 0
	_, err = s.client.GenerateStream(ctx, req, func(acc string) {
		fmt.Fprint(s.out, acc[printed:])
		printed = len(acc)
	})
	if err != nil {
		fmt.Fprintln(s.out)
		return err
	}
	fmt.Fprint(s.out, "\n\n")
	return nil
}

func (s *Showcase) chat(ctx context.Context) error {
	session, err := s.client.NewChat("", nil)
	if err != nil {
		return err
	}

	for _, msg := range []string{chatFirstMessage, chatSecondMessage} {
		reply, err := session.Send(ctx, msg)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Model: %s\n", reply)
	}

	fmt.Fprintln(s.out, "History:")
	for _, turn := range session.History() {
		fmt.Fprintf(s.out, "  %s: %s\n", turn.Role, turn.Text)
	}
	fmt.Fprintln(s.out)
	return nil
}

// Command sample makes one blocking Gemini call and prints the answer.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"gemini-playground/config"
	"gemini-playground/pkg/gemini"
)

const samplePrompt = "Explain how AI works in a few words"

func main() {
	os.Exit(execute(context.Background(), os.Stdout, os.Stderr))
}

// execute runs the sample and returns the process exit code.
func execute(ctx context.Context, stdout, stderr io.Writer) int {
	if err := run(ctx, stdout); err != nil {
		config.ReportStartupError(stderr, err)
		return 1
	}
	return 0
}

func run(ctx context.Context, out io.Writer) error {
	creds, err := config.LoadCredentials()
	if err != nil {
		return err
	}

	client, err := gemini.New(ctx, gemini.Config{APIKey: creds.APIKey})
	if err != nil {
		return err
	}

	req, err := gemini.NewRequestBuilder(gemini.ModelGemini25Flash).Prompt(samplePrompt).Build()
	if err != nil {
		return err
	}

	text, err := client.Generate(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, text)
	return nil
}

// Command examples walks through the Gemini showcase demos.
//
// Run every demo in order:
//
//	go run ./scripts/examples
//
// Or a single one:
//
//	go run ./scripts/examples stream
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"gemini-playground/config"
	"gemini-playground/internal/showcase"
	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/log"
)

func main() {
	os.Exit(execute(newRootCmd()))
}

// execute runs the command tree and returns the process exit code.
func execute(root *cobra.Command) int {
	if err := root.Execute(); err != nil {
		config.ReportStartupError(root.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "examples",
		Short:         "Showcase Gemini API capabilities",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newShowcase(cmd)
			if err != nil {
				return err
			}
			return s.RunAll(cmd.Context())
		},
	}

	for _, demo := range showcase.Demos() {
		name := demo.Name
		root.AddCommand(&cobra.Command{
			Use:   name,
			Short: demo.Short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := newShowcase(cmd)
				if err != nil {
					return err
				}
				return s.Run(cmd.Context(), name)
			},
		})
	}

	return root
}

func newShowcase(cmd *cobra.Command) (*showcase.Showcase, error) {
	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := gemini.New(ctx, gemini.Config{APIKey: creds.APIKey})
	if err != nil {
		return nil, err
	}

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     log.ModeProduction,
		Encoding: log.EncodingConsole,
		Output:   cmd.ErrOrStderr(),
	})
	return showcase.New(logger, client, cmd.OutOrStdout()), nil
}

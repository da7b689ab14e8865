package usecase

import (
	"context"
	"errors"

	"gemini-playground/internal/playground"
	"gemini-playground/internal/playground/repository"
	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/metrics"
)

// Generate performs a blocking generation and records the run.
func (uc *implUseCase) Generate(ctx context.Context, input playground.GenerateInput) (playground.GenerateOutput, error) {
	req, err := uc.buildRequest(input)
	if err != nil {
		return playground.GenerateOutput{}, err
	}

	start := uc.now()
	text, err := uc.gemini.Generate(ctx, req)
	if err != nil {
		uc.metrics.ObserveCall(req.Model, metrics.ModeBlocking, metrics.StatusError, uc.now().Sub(start))
		uc.l.Errorf(ctx, "internal.playground.usecase.Generate: %v", err)
		return playground.GenerateOutput{}, err
	}
	uc.metrics.ObserveCall(req.Model, metrics.ModeBlocking, metrics.StatusOK, uc.now().Sub(start))

	return uc.record(ctx, input, req.Model, text, false)
}

// GenerateStream consumes the fragment stream, forwarding the accumulated text
// to render after every non-empty fragment. An interrupted stream is not recorded.
func (uc *implUseCase) GenerateStream(ctx context.Context, input playground.GenerateInput, render gemini.RenderFunc) (playground.GenerateOutput, error) {
	req, err := uc.buildRequest(input)
	if err != nil {
		return playground.GenerateOutput{}, err
	}

	start := uc.now()
	text, err := uc.gemini.GenerateStream(ctx, req, func(acc string) {
		uc.metrics.ObserveFragment(req.Model)
		if render != nil {
			render(acc)
		}
	})
	if err != nil {
		status := metrics.StatusError
		var remoteErr *gemini.RemoteError
		if errors.As(err, &remoteErr) && remoteErr.Incomplete {
			status = metrics.StatusIncomplete
		}
		uc.metrics.ObserveCall(req.Model, metrics.ModeStreaming, status, uc.now().Sub(start))
		uc.l.Errorf(ctx, "internal.playground.usecase.GenerateStream: %v", err)
		return playground.GenerateOutput{}, err
	}
	uc.metrics.ObserveCall(req.Model, metrics.ModeStreaming, metrics.StatusOK, uc.now().Sub(start))

	return uc.record(ctx, input, req.Model, text, true)
}

func (uc *implUseCase) buildRequest(input playground.GenerateInput) (gemini.Request, error) {
	if input.SessionID == "" {
		return gemini.Request{}, playground.ErrMissingSession
	}

	return gemini.NewRequestBuilder(input.Model).
		Prompt(input.Prompt).
		Image(input.Image).
		Temperature(input.Temperature).
		SystemInstruction(input.SystemInstruction).
		DisableThinking(input.DisableThinking).
		Build()
}

func (uc *implUseCase) record(ctx context.Context, input playground.GenerateInput, model, text string, streamed bool) (playground.GenerateOutput, error) {
	run, err := uc.repo.InsertRun(ctx, repository.InsertRunOptions{
		SessionID: input.SessionID,
		Model:     model,
		Prompt:    input.Prompt,
		Response:  text,
		Streamed:  streamed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.playground.usecase.record InsertRun: %v", err)
		return playground.GenerateOutput{}, err
	}
	return playground.GenerateOutput{Run: run}, nil
}

package gemini_test

import (
	"context"
	"iter"

	"google.golang.org/genai"
)

type generateCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

// fakeModels replays canned responses instead of calling the API.
type fakeModels struct {
	replies   []string
	fragments []string
	err       error
	// streamErrAt injects err before fragments[streamErrAt]; -1 disables.
	streamErrAt int

	calls       []generateCall
	streamCalls int
}

func newFakeModels() *fakeModels {
	return &fakeModels{streamErrAt: -1}
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls = append(f.calls, generateCall{model: model, contents: contents, config: config})
	if f.err != nil {
		return nil, f.err
	}
	reply := ""
	if len(f.replies) > 0 {
		reply = f.replies[0]
		f.replies = f.replies[1:]
	}
	return textResponse(reply), nil
}

func (f *fakeModels) GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error] {
	f.streamCalls++
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for i, fragment := range f.fragments {
			if i == f.streamErrAt {
				yield(nil, f.err)
				return
			}
			if !yield(textResponse(fragment), nil) {
				return
			}
		}
		if f.streamErrAt == len(f.fragments) {
			yield(nil, f.err)
		}
	}
}

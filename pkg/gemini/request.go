package gemini

import (
	"fmt"
	"math"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/genai"
)

// RequestBuilder assembles a single-turn Request. Optional settings are only
// sent when explicitly provided so server defaults stay in effect otherwise.
type RequestBuilder struct {
	model             string
	prompt            string
	image             []byte
	temperature       *float64
	systemInstruction string
	disableThinking   bool
}

// NewRequestBuilder starts a request for model. An empty model means DefaultModel.
func NewRequestBuilder(model string) *RequestBuilder {
	return &RequestBuilder{model: model}
}

// Prompt sets the text part. It is required.
func (b *RequestBuilder) Prompt(text string) *RequestBuilder {
	b.prompt = text
	return b
}

// Image sets raw image bytes placed before the text part. Nil or empty means no image.
func (b *RequestBuilder) Image(data []byte) *RequestBuilder {
	b.image = data
	return b
}

// Temperature overrides the sampling temperature, valid in [0, 1].
func (b *RequestBuilder) Temperature(t float64) *RequestBuilder {
	b.temperature = &t
	return b
}

// SystemInstruction sets the system instruction. An empty string means none.
func (b *RequestBuilder) SystemInstruction(text string) *RequestBuilder {
	b.systemInstruction = text
	return b
}

// DisableThinking forces the thinking budget to 0 when on.
func (b *RequestBuilder) DisableThinking(on bool) *RequestBuilder {
	b.disableThinking = on
	return b
}

// Build validates the inputs and returns the request.
func (b *RequestBuilder) Build() (Request, error) {
	model, err := b.resolveModel()
	if err != nil {
		return Request{}, err
	}

	if strings.TrimSpace(b.prompt) == "" {
		return Request{}, ErrEmptyPrompt
	}

	parts := make([]*genai.Part, 0, 2)
	if len(b.image) > 0 {
		imagePart, err := newImagePart(b.image)
		if err != nil {
			return Request{}, err
		}
		parts = append(parts, imagePart)
	}
	parts = append(parts, genai.NewPartFromText(b.prompt))

	config, err := b.buildConfig()
	if err != nil {
		return Request{}, err
	}

	return Request{
		Model:    model,
		Contents: []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		Config:   config,
	}, nil
}

// BuildChat validates the model and generation settings for a chat session.
// Prompt and image are ignored; chat turns carry their own text.
func (b *RequestBuilder) BuildChat() (string, *genai.GenerateContentConfig, error) {
	model, err := b.resolveModel()
	if err != nil {
		return "", nil, err
	}
	config, err := b.buildConfig()
	if err != nil {
		return "", nil, err
	}
	return model, config, nil
}

func (b *RequestBuilder) resolveModel() (string, error) {
	model := b.model
	if model == "" {
		model = DefaultModel
	}
	if !IsSupportedModel(model) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedModel, model)
	}
	return model, nil
}

func (b *RequestBuilder) buildConfig() (*genai.GenerateContentConfig, error) {
	config := &genai.GenerateContentConfig{}

	if b.temperature != nil {
		t := *b.temperature
		if math.IsNaN(t) || t < MinTemperature || t > MaxTemperature {
			return nil, ErrTemperatureOutOfRange
		}
		config.Temperature = genai.Ptr(float32(t))
	}

	if b.systemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(b.systemInstruction, genai.RoleUser)
	}

	if b.disableThinking {
		config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)}
	}

	return config, nil
}

// DetectImageType sniffs data and returns its MIME type when it is a supported image.
func DetectImageType(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	for _, allowed := range SupportedImageTypes {
		if mtype.Is(allowed) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("%w: got %s", ErrUnsupportedImage, mtype.String())
}

func newImagePart(data []byte) (*genai.Part, error) {
	mimeType, err := DetectImageType(data)
	if err != nil {
		return nil, err
	}
	return genai.NewPartFromBytes(data, mimeType), nil
}

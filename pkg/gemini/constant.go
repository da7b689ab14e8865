package gemini

const (
	ModelGemini25Flash    = "gemini-2.5-flash"
	ModelGemini20FlashExp = "gemini-2.0-flash-exp"
	ModelGemini15Flash    = "gemini-1.5-flash"

	// DefaultModel is used when a request does not name a model.
	DefaultModel = ModelGemini25Flash

	// DefaultTemperature matches the playground slider's starting value.
	DefaultTemperature = 1.0

	MinTemperature = 0.0
	MaxTemperature = 1.0
)

// Turn roles as reported by History.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Operation names carried by RemoteError.
const (
	OpGenerate = "generate"
	OpStream   = "stream"
	OpChat     = "chat"
)

// SupportedModels is the model allow-list, default first.
var SupportedModels = []string{
	ModelGemini25Flash,
	ModelGemini20FlashExp,
	ModelGemini15Flash,
}

// SupportedImageTypes lists the MIME types accepted as an image part.
var SupportedImageTypes = []string{
	"image/png",
	"image/jpeg",
	"image/webp",
}

// IsSupportedModel reports whether model is on the allow-list.
func IsSupportedModel(model string) bool {
	for _, m := range SupportedModels {
		if m == model {
			return true
		}
	}
	return false
}

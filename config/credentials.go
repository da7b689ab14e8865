package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// APIKeyEnv is the environment variable holding the Gemini API key.
const APIKeyEnv = "GEMINI_API_KEY"

// MissingAPIKeyMessage is printed by every entry point when no key is configured.
const MissingAPIKeyMessage = "Missing GEMINI_API_KEY. Set it in your environment or .env file before running."

var ErrMissingAPIKey = errors.New("missing " + APIKeyEnv)

// ReportStartupError writes a startup failure to w. A missing key is reported
// with MissingAPIKeyMessage and nothing else.
func ReportStartupError(w io.Writer, err error) {
	if errors.Is(err, ErrMissingAPIKey) {
		fmt.Fprintln(w, MissingAPIKeyMessage)
		return
	}
	fmt.Fprintln(w, err)
}

// Credentials carries the secret used to authenticate with the Gemini API.
type Credentials struct {
	APIKey string
}

// String never prints the key itself.
func (c Credentials) String() string {
	if c.APIKey == "" {
		return "Credentials{APIKey: <unset>}"
	}
	return "Credentials{APIKey: <redacted>}"
}

// LoadCredentials loads the given env files (default ".env"), skipping any
// that do not exist, then reads GEMINI_API_KEY from the process environment.
// Variables already set in the environment win over file values.
func LoadCredentials(envFiles ...string) (Credentials, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return Credentials{}, err
	}

	v := viper.New()
	if err := v.BindEnv("api_key", APIKeyEnv); err != nil {
		return Credentials{}, fmt.Errorf("bind %s: %w", APIKeyEnv, err)
	}

	key := strings.TrimSpace(v.GetString("api_key"))
	if key == "" {
		return Credentials{}, ErrMissingAPIKey
	}
	return Credentials{APIKey: key}, nil
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return nil
}

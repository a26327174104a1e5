package config

import (
	"os"
	"time"

	"github.com/tsmithofficiating/rules-backend/internal/version"
)

type Config struct {
	ProjectID string
	Region    string
	LogLevel  string

	// Rule lookup (OpenAI Responses API)
	OpenAIBaseURL         string
	OpenAIModel           string
	OpenAIKeySecretID     string
	RulePromptID          string
	RulePromptVersion     string
	RuleVectorStoreID     string
	CasebookVectorStoreID string
	AnswerTTL             time.Duration

	// General Q&A (Vertex AI)
	VertexModel string
	QATTL       time.Duration

	KMSKeyName string
}

func New() *Config {
	return &Config{
		ProjectID: os.Getenv("PROJECTID"),
		Region:    os.Getenv("REGION"),
		LogLevel:  os.Getenv("LOGLEVEL"),

		OpenAIBaseURL:         getOr("OPENAIBASEURL", "https://api.openai.com/v1"),
		OpenAIModel:           getOr("OPENAIMODEL", "gpt-4.1-mini"),
		OpenAIKeySecretID:     getOr("OPENAIKEYSECRETID", "openai-api-key"),
		RulePromptID:          os.Getenv("RULEPROMPTID"),
		RulePromptVersion:     getOr("RULEPROMPTVERSION", version.RuleVersion),
		RuleVectorStoreID:     os.Getenv("RULEVECTORSTOREID"),
		CasebookVectorStoreID: os.Getenv("CASEBOOKVECTORSTOREID"),
		AnswerTTL:             getDuration("ANSWERTTL", 0),

		VertexModel: os.Getenv("VERTEXMODEL"),
		QATTL:       getDuration("QATTL", 24*time.Hour),

		KMSKeyName: os.Getenv("KMSKEYNAME"),
	}
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration parses a Go duration string ("30m", "24h"). An unset or
// unparsable value falls back to the default; zero means no expiry.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

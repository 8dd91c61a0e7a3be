package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Generator GeneratorConfig
	Form      FormConfig
	Ai        AIConfig
	Events    EventsConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

// GeneratorConfig locates the external document generation service.
type GeneratorConfig struct {
	BaseURL      string
	GeneratePath string
	EnhancePath  string
}

type FormConfig struct {
	// StrictDomainRequired rejects "Other" without override text instead of
	// submitting the literal "Other".
	StrictDomainRequired bool
}

type AIConfig struct {
	LLMProvider        string // "ollama" or "huggingface"
	LLMModel           string
	OllamaBaseURL      string
	HuggingFaceAPIKey  string
	HuggingFaceBaseURL string
}

type EventsConfig struct {
	SubmissionTopic string
	NatsEnabled     bool
	NatsURL         string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/srs-intake.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Generator: GeneratorConfig{
			BaseURL:      strings.TrimRight(getEnv("SRS_GENERATOR_URL", "http://localhost:8000"), "/"),
			GeneratePath: getEnv("SRS_GENERATE_PATH", "/generate_srs"),
			EnhancePath:  getEnv("SRS_ENHANCE_PATH", "/enhance_section"),
		},
		Form: FormConfig{
			StrictDomainRequired: getEnvAsBool("STRICT_DOMAIN_REQUIRED", true),
		},
		Ai: AIConfig{
			LLMProvider:        getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:           getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			HuggingFaceAPIKey:  getEnv("HUGGINGFACE_API_KEY", ""),
			HuggingFaceBaseURL: getEnv("HUGGINGFACE_BASE_URL", ""),
		},
		Events: EventsConfig{
			SubmissionTopic: getEnv("SUBMISSION_EVENTS_TOPIC", "SRS_SUBMISSIONS"),
			NatsEnabled:     getEnvAsBool("NATS_ENABLED", false),
			NatsURL:         getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

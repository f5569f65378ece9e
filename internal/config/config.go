package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Transcribe TranscribeConfig `yaml:"transcribe"`
	Notes      NotesConfig      `yaml:"notes"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	MaxUploadMB int64  `yaml:"max_upload_mb"`
}

type TranscribeConfig struct {
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
	// Files above this size are downsampled with ffmpeg before upload.
	MaxDirectUploadMB int64  `yaml:"max_direct_upload_mb"`
	FFmpegPath        string `yaml:"ffmpeg_path"`
}

type NotesConfig struct {
	Provider       string  `yaml:"provider"` // "openai" or "gemini"
	APIKey         string  `yaml:"api_key"`
	BaseURL        string  `yaml:"base_url"`
	Model          string  `yaml:"model"`
	MaxTokens      int     `yaml:"max_tokens"`
	ChunkCharLimit int     `yaml:"chunk_char_limit"`
	MaxChunks      int     `yaml:"max_chunks"`
	Temperature    float32 `yaml:"temperature"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a yaml config file, merges API keys from the environment,
// applies defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.mergeEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// mergeEnv overlays API keys from the environment. Environment always wins
// over the config file so keys never have to live on disk.
func (c *Config) mergeEnv() {
	if key := os.Getenv("TRANSCRIBE_API_KEY"); key != "" {
		c.Transcribe.APIKey = key
	} else if key := os.Getenv("GROQ_API_KEY"); key != "" {
		c.Transcribe.APIKey = key
	}

	switch c.Notes.Provider {
	case "gemini":
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			c.Notes.APIKey = key
		}
	default:
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			c.Notes.APIKey = key
		}
	}
}

func (c *Config) Validate() error {
	if c.Transcribe.APIKey == "" {
		return fmt.Errorf("transcribe.api_key is required (or set TRANSCRIBE_API_KEY / GROQ_API_KEY)")
	}
	if c.Notes.APIKey == "" {
		return fmt.Errorf("notes.api_key is required (or set OPENAI_API_KEY / GEMINI_API_KEY)")
	}
	if c.Notes.Provider != "" && c.Notes.Provider != "openai" && c.Notes.Provider != "gemini" {
		return fmt.Errorf("notes.provider must be 'openai' or 'gemini', got %q", c.Notes.Provider)
	}

	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 200
	}
	if c.Transcribe.Model == "" {
		c.Transcribe.Model = "whisper-large-v3"
	}
	if c.Transcribe.BaseURL == "" {
		c.Transcribe.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Transcribe.MaxDirectUploadMB == 0 {
		c.Transcribe.MaxDirectUploadMB = 25
	}
	if c.Transcribe.FFmpegPath == "" {
		c.Transcribe.FFmpegPath = "ffmpeg"
	}
	if c.Notes.Provider == "" {
		c.Notes.Provider = "openai"
	}
	if c.Notes.Model == "" {
		if c.Notes.Provider == "gemini" {
			c.Notes.Model = "gemini-2.5-flash"
		} else {
			c.Notes.Model = "gpt-3.5-turbo"
		}
	}
	if c.Notes.MaxTokens == 0 {
		c.Notes.MaxTokens = 1800
	}
	if c.Notes.ChunkCharLimit == 0 {
		c.Notes.ChunkCharLimit = 4000
	}
	if c.Notes.MaxChunks == 0 {
		c.Notes.MaxChunks = 5
	}
	if c.Notes.Temperature == 0 {
		c.Notes.Temperature = 0.6
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	return nil
}

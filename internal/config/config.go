package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Speech      SpeechConfig      `yaml:"speech"`
	Extract     ExtractConfig     `yaml:"extract"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Port       string        `yaml:"port"`
	SessionTTL time.Duration `yaml:"session_ttl"`
	MaxUpload  int64         `yaml:"max_upload_bytes"`
}

type SummarizerConfig struct {
	MaxWords int          `yaml:"max_words"`
	// Overlap is a pointer so an explicit 0 is kept; nil gets the default.
	Overlap  *int         `yaml:"overlap"`
	Remote   RemoteConfig `yaml:"remote"`
	Local    LocalConfig  `yaml:"local"`
}

// ChunkOverlap returns the configured overlap, 0 when unset.
func (c SummarizerConfig) ChunkOverlap() int {
	if c.Overlap == nil {
		return 0
	}
	return *c.Overlap
}

type RemoteConfig struct {
	Provider    string        `yaml:"provider"` // openai | gemini
	Model       string        `yaml:"model"`
	BaseURL     string        `yaml:"base_url"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

type LocalConfig struct {
	Endpoint  string        `yaml:"endpoint"`
	MaxLength int           `yaml:"max_length"`
	MinLength int           `yaml:"min_length"`
	Timeout   time.Duration `yaml:"timeout"`
}

type SpeechConfig struct {
	Provider      string        `yaml:"provider"` // gtranslate | deepgram
	Language      string        `yaml:"language"`
	BaseURL       string        `yaml:"base_url"`
	DeepgramModel string        `yaml:"deepgram_model"`
	FFprobePath   string        `yaml:"ffprobe_path"`
	Timeout       time.Duration `yaml:"timeout"`
}

type ExtractConfig struct {
	PdfinfoPath   string        `yaml:"pdfinfo_path"`
	PdftotextPath string        `yaml:"pdftotext_path"`
	TesseractPath string        `yaml:"tesseract_path"`
	TesseractLang string        `yaml:"tesseract_lang"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	UserAgent     string        `yaml:"user_agent"`
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

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	// Validate on an empty config only fills defaults.
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Summarizer.MaxWords < 0 {
		return fmt.Errorf("summarizer.max_words must be >= 0")
	}
	if c.Summarizer.Overlap != nil && *c.Summarizer.Overlap < 0 {
		return fmt.Errorf("summarizer.overlap must be >= 0")
	}
	switch c.Summarizer.Remote.Provider {
	case "", "openai", "gemini":
	default:
		return fmt.Errorf("summarizer.remote.provider %q is not supported", c.Summarizer.Remote.Provider)
	}
	switch c.Speech.Provider {
	case "", "gtranslate", "deepgram":
	default:
		return fmt.Errorf("speech.provider %q is not supported", c.Speech.Provider)
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be >= 0")
	}

	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.SessionTTL == 0 {
		c.Server.SessionTTL = 30 * time.Minute
	}
	if c.Server.MaxUpload == 0 {
		c.Server.MaxUpload = 32 << 20
	}

	if c.Summarizer.MaxWords == 0 {
		c.Summarizer.MaxWords = 300
	}
	if c.Summarizer.Overlap == nil {
		overlap := 50
		if overlap >= c.Summarizer.MaxWords {
			overlap = 0
		}
		c.Summarizer.Overlap = &overlap
	}
	if *c.Summarizer.Overlap >= c.Summarizer.MaxWords {
		return fmt.Errorf("summarizer.overlap must be smaller than summarizer.max_words")
	}
	if c.Summarizer.Remote.Provider == "" {
		c.Summarizer.Remote.Provider = "openai"
	}
	if c.Summarizer.Remote.Model == "" {
		if c.Summarizer.Remote.Provider == "gemini" {
			c.Summarizer.Remote.Model = "gemini-2.5-flash"
		} else {
			c.Summarizer.Remote.Model = "gpt-3.5-turbo"
		}
	}
	if c.Summarizer.Remote.Temperature == 0 {
		c.Summarizer.Remote.Temperature = 0.7
	}
	if c.Summarizer.Remote.Timeout == 0 {
		c.Summarizer.Remote.Timeout = 60 * time.Second
	}
	if c.Summarizer.Local.Endpoint == "" {
		c.Summarizer.Local.Endpoint = "http://localhost:8081/models/facebook/bart-large-cnn"
	}
	if c.Summarizer.Local.MaxLength == 0 {
		c.Summarizer.Local.MaxLength = 150
	}
	if c.Summarizer.Local.MinLength == 0 {
		c.Summarizer.Local.MinLength = 40
	}
	if c.Summarizer.Local.Timeout == 0 {
		c.Summarizer.Local.Timeout = 2 * time.Minute
	}

	if c.Speech.Provider == "" {
		c.Speech.Provider = "gtranslate"
	}
	if c.Speech.Language == "" {
		c.Speech.Language = "en"
	}
	if c.Speech.DeepgramModel == "" {
		c.Speech.DeepgramModel = "aura-stella-en"
	}
	if c.Speech.FFprobePath == "" {
		c.Speech.FFprobePath = "ffprobe"
	}
	if c.Speech.Timeout == 0 {
		c.Speech.Timeout = 30 * time.Second
	}

	if c.Extract.PdfinfoPath == "" {
		c.Extract.PdfinfoPath = "pdfinfo"
	}
	if c.Extract.PdftotextPath == "" {
		c.Extract.PdftotextPath = "pdftotext"
	}
	if c.Extract.TesseractPath == "" {
		c.Extract.TesseractPath = "tesseract"
	}
	if c.Extract.TesseractLang == "" {
		c.Extract.TesseractLang = "eng"
	}
	if c.Extract.HTTPTimeout == 0 {
		c.Extract.HTTPTimeout = 20 * time.Second
	}
	if c.Extract.UserAgent == "" {
		c.Extract.UserAgent = "textai/1.0"
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

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

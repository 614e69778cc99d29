// Package config loads the index-synthesis configuration.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Output   OutputConfig   `yaml:"output"`
	Site     SiteConfig     `yaml:"site"`
	Topics   map[string]string `yaml:"topics,omitempty"`   // topic key -> extra sub-index description
	Reserved map[int]string    `yaml:"reserved,omitempty"` // reserved YEP number -> claimants
	Cache    CacheConfig    `yaml:"cache"`
}

// SourceConfig locates the YEP source documents.
type SourceConfig struct {
	Directory string `yaml:"directory"` // directory of yep-NNNN.rst files
}

// OutputConfig locates the synthesized artifacts.
type OutputConfig struct {
	Directory string `yaml:"directory"` // yeps.json, api/yeps.json, yeps.rss
}

// SiteConfig describes the published site for links and feed metadata.
type SiteConfig struct {
	BaseURL     string `yaml:"base_url"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"` // RSS channel description
	Builder     string `yaml:"builder,omitempty"`     // "html" or "dirhtml"
}

// CacheConfig configures the persistent excerpt cache.
type CacheConfig struct {
	Path string `yaml:"path,omitempty"` // SQLite file, or ":memory:"
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists; missing is fine.
	_ = godotenv.Load()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	if config.Site.Builder != "html" && config.Site.Builder != "dirhtml" {
		return nil, fmt.Errorf("unknown builder mode: %s", config.Site.Builder)
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Source.Directory == "" {
		c.Source.Directory = "."
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./out"
	}
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = "https://JPEWdev.github.io/yeps/"
	}
	if c.Site.Title == "" {
		c.Site.Title = "Yocto Enhancement Proposals"
	}
	if c.Site.Description == "" {
		c.Site.Description = "Newest Yocto Enhancement Proposals (YEPs): " +
			"Information on new language features " +
			"and some meta-information like release procedure and schedules."
	}
	if c.Site.Builder == "" {
		c.Site.Builder = "html"
	}
	if c.Cache.Path == "" {
		c.Cache.Path = ".yep-excerpts.db"
	}
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := `# YEP index synthesis configuration
source:
  directory: .

output:
  directory: ./out

site:
  base_url: https://JPEWdev.github.io/yeps/
  title: Yocto Enhancement Proposals
  builder: html

# Topic sub-indices, with an optional extra description per topic.
topics:
  kernel: ""
  release: ""

# Reserved YEP numbers, outside the normal allocation flow.
# reserved:
#   666: The YEP Editors

cache:
  path: .yep-excerpts.db
`

	return os.WriteFile(configPath, []byte(example), 0o644)
}

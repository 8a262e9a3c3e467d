package config

// Config holds the user-facing settings for the prompt. All fields are
// optional; zero values resolve through Default.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace" toml:"workspace"`
	Theme     string          `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Prompt    PromptConfig    `yaml:"prompt" toml:"prompt"`
}

// WorkspaceConfig configures workspace-root resolution for path display.
type WorkspaceConfig struct {
	// Root is the absolute workspace root path. Supports ~ and
	// environment-variable expansion.
	Root string `yaml:"root,omitempty" toml:"root,omitempty"`
}

// PromptConfig configures the rendered glyphs.
type PromptConfig struct {
	// Glyph is the input-marker character written on the final prompt line.
	Glyph string `yaml:"glyph,omitempty" toml:"glyph,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Theme: "default",
		Prompt: PromptConfig{
			Glyph: "❯",
		},
	}
}

// applyDefaults fills unset fields from the default configuration.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.Prompt.Glyph == "" {
		c.Prompt.Glyph = def.Prompt.Glyph
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sitewinder-dev/sitewinder/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "sitewinder.yaml"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"
)

// Config represents the complete sitewinder.yaml configuration.
type Config struct {
	// Name is the project name.
	Name string `yaml:"name,omitempty"`

	// Version is the project version.
	Version string `yaml:"version,omitempty"`

	// Site contains page-level settings.
	Site SiteConfig `yaml:"site,omitempty"`

	// Static contains static file serving configuration.
	Static StaticConfig `yaml:"static,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `yaml:"dev,omitempty"`

	// Build contains production build configuration.
	Build BuildConfig `yaml:"build,omitempty"`

	// Deploy contains deploy target configuration.
	Deploy DeployConfig `yaml:"deploy,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SiteConfig contains page-level settings.
type SiteConfig struct {
	// Title is the document title of the generated index page.
	Title string `yaml:"title,omitempty"`

	// Outlet is the selector the root component mounts into.
	Outlet string `yaml:"outlet,omitempty"`
}

// StaticConfig contains static file serving configuration.
type StaticConfig struct {
	// Dir is the directory containing static files.
	Dir string `yaml:"dir,omitempty"`

	// Prefix is the URL prefix for static files.
	Prefix string `yaml:"prefix,omitempty"`
}

// DevConfig contains development server configuration.
type DevConfig struct {
	// Host is the interface to listen on.
	Host string `yaml:"host,omitempty"`

	// Port is the dev server port.
	Port int `yaml:"port,omitempty"`

	// HotReload enables the reload websocket.
	HotReload bool `yaml:"hot_reload"`

	// Watch lists directories whose changes trigger a reload.
	Watch []string `yaml:"watch,omitempty"`

	// Metrics exposes /metrics on the dev server.
	Metrics bool `yaml:"metrics"`

	// StateFile retains app state snapshots across reloads.
	StateFile string `yaml:"state_file,omitempty"`
}

// BuildConfig contains production build configuration.
type BuildConfig struct {
	// Output is the build output directory.
	Output string `yaml:"output,omitempty"`

	// BaseURL is prefixed to asset references in the built site.
	BaseURL string `yaml:"base_url,omitempty"`
}

// DeployConfig contains deploy target configuration.
type DeployConfig struct {
	// Bucket is the S3 bucket name.
	Bucket string `yaml:"bucket,omitempty"`

	// Region is the bucket region.
	Region string `yaml:"region,omitempty"`

	// Prefix is the key prefix inside the bucket.
	Prefix string `yaml:"prefix,omitempty"`

	// Endpoint overrides the S3 endpoint (for S3-compatible stores).
	Endpoint string `yaml:"endpoint,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Site: SiteConfig{
			Title:  "SiteWinder App",
			Outlet: "#app",
		},
		Static: StaticConfig{
			Dir:    "public",
			Prefix: "/",
		},
		Dev: DevConfig{
			Host:      DefaultHost,
			Port:      DefaultPort,
			HotReload: true,
			Watch:     []string{"app", "public"},
			Metrics:   true,
		},
		Build: BuildConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads configuration from dir/sitewinder.yaml.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'sitewinder create' to scaffold a new project")
		}
		return nil, errors.New("E102").Wrap(err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		serr := errors.New("E102").
			Wrap(err).
			WithSuggestion("Check that " + ConfigFileName + " is valid YAML")
		if line := yamlErrorLine(err); line > 0 {
			serr = serr.WithLocation(path, line, 0)
		}
		return nil, serr
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// yamlErrorLine extracts the line number from a yaml parse error.
// yaml.v3 reports them as "yaml: line N: ..." or, for unmarshal
// errors, as indented "line N: ..." entries. Returns 0 if the error
// carries no line information.
func yamlErrorLine(err error) int {
	msg := err.Error()
	idx := strings.Index(msg, "line ")
	if idx < 0 {
		return 0
	}
	line := 0
	for _, r := range msg[idx+len("line "):] {
		if r < '0' || r > '9' {
			break
		}
		line = line*10 + int(r-'0')
	}
	return line
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("E102").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E102").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Site.Outlet == "" {
		c.Site.Outlet = "#app"
	}
	if c.Static.Dir == "" {
		c.Static.Dir = "public"
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = "/"
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("E103").
			WithDetail("dev.port must be between 0 and 65535")
	}
	if c.Deploy.Prefix != "" && c.Deploy.Bucket == "" {
		return errors.New("E103").
			WithDetail("deploy.prefix is set but deploy.bucket is empty")
	}
	return nil
}

// DevAddress returns the address string for the dev server.
func (c *Config) DevAddress() string {
	return fmt.Sprintf("%s:%d", c.Dev.Host, c.Dev.Port)
}

// DevURL returns the full URL for the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// OutputPath returns the absolute path to the build output directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Build.Output) {
		return c.Build.Output
	}
	return filepath.Join(c.Dir(), c.Build.Output)
}

// StaticPath returns the absolute path to the static files directory.
func (c *Config) StaticPath() string {
	if filepath.IsAbs(c.Static.Dir) {
		return c.Static.Dir
	}
	return filepath.Join(c.Dir(), c.Static.Dir)
}

// Exists reports whether dir contains a sitewinder.yaml.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from startDir looking for sitewinder.yaml.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E101").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'sitewinder create' to scaffold a new project")
		}
		dir = parent
	}
}

// LoadFromWorkingDir finds and loads the config for the current
// working directory's project.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	return Load(root)
}

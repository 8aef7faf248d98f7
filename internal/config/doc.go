// Package config loads and validates sitewinder.yaml, the per-project
// configuration for the dev server, build, and deploy commands.
package config

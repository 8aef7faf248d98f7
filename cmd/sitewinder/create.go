package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitewinder-dev/sitewinder/internal/errors"
	"github.com/sitewinder-dev/sitewinder/internal/templates"
)

func createCmd() *cobra.Command {
	var (
		template    string
		modulePath  string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new sitewinder project",
		Long: `Create a new sitewinder project with the specified name.

Templates:
  minimal   A single static page
  counter   A page with a reactive counter component (default)
  router    A multi-page site driven by the hash router

Examples:
  sitewinder create my-site
  sitewinder create my-site --template=router
  sitewinder create my-site --module=example.com/me/my-site`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args[0], template, modulePath, description)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "counter", "Project template ("+strings.Join(templates.List(), ", ")+")")
	cmd.Flags().StringVarP(&modulePath, "module", "m", "", "Go module path (defaults to the project name)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")

	return cmd
}

var projectNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

func runCreate(name, templateName, modulePath, description string) error {
	if !projectNameRe.MatchString(name) {
		return errors.New("E502").
			WithDetail("Project name '" + name + "' is not a valid directory name.").
			WithSuggestion("Use lowercase letters, numbers, and hyphens.")
	}

	projectDir, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(projectDir); !os.IsNotExist(err) {
		return errors.New("E501").
			WithDetail("Directory '" + name + "' already exists.").
			WithSuggestion("Choose a different name or remove the existing directory.")
	}

	if modulePath == "" {
		modulePath = name
	}
	if description == "" {
		description = "A sitewinder site"
	}

	tmpl, err := templates.Get(templateName)
	if err != nil {
		return err
	}

	info("Creating project from '%s' template...", templateName)
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return errors.New("E502").Wrap(err)
	}
	cfg := templates.Config{
		ProjectName: name,
		ModulePath:  modulePath,
		Description: description,
	}
	if err := tmpl.Create(projectDir, cfg); err != nil {
		os.RemoveAll(projectDir)
		return err
	}

	success("Created %s", name)
	fmt.Println()
	info("Next steps:")
	info("  cd %s", name)
	info("  go run .          # prerender the page")
	info("  sitewinder dev    # serve with hot reload")
	return nil
}

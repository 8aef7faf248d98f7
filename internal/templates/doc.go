// Package templates holds the project templates used by the create
// command. Each template is a set of files whose contents are
// text/template bodies substituted with the new project's name,
// module path and description.
package templates

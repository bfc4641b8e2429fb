package project

import "path"

// DefaultName is used when the user submits an empty project name.
const DefaultName = "my-vite-app"

// Vite template selectors passed to the scaffold command.
const (
	TemplateTypeScript = "react-ts"
	TemplatePlain      = "react"
)

// Source file extensions.
const (
	ExtTypeScript = "tsx"
	ExtPlain      = "jsx"
)

// RunConfig is the user's answers for one run. It is not modified after
// collection.
type RunConfig struct {
	ProjectName   string
	UseTypeScript bool
}

// Defaults returns the RunConfig used when every prompt is left empty.
func Defaults() RunConfig {
	return RunConfig{ProjectName: DefaultName, UseTypeScript: true}
}

// Template returns the Vite template selector for the language choice.
func (c RunConfig) Template() string {
	if c.UseTypeScript {
		return TemplateTypeScript
	}
	return TemplatePlain
}

// Ext returns the source extension for generated files.
func (c RunConfig) Ext() string {
	if c.UseTypeScript {
		return ExtTypeScript
	}
	return ExtPlain
}

// SourceFile is one generated file: a template role and where it lands.
type SourceFile struct {
	Role string // "App", "router", or "Home"
	Path string // slash-separated, relative to the project root
}

// Layout returns the three files the template writer emits, in write order.
func (c RunConfig) Layout() []SourceFile {
	roles := []string{"App", "router", "Home"}
	files := make([]SourceFile, len(roles))
	for i, r := range roles {
		files[i] = SourceFile{Role: r, Path: path.Join("src", r+"."+c.Ext())}
	}
	return files
}

// EntryFile returns the relative path of the application entry component.
func (c RunConfig) EntryFile() string {
	return c.Layout()[0].Path
}

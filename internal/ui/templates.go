package ui

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/me/workdeck/internal/browser"
)

// timeLayouts are the formats gallery feeds have been seen publishing.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	// humanTime renders a feed timestamp as "3 days ago". Unparseable
	// values pass through verbatim, the feed's time field is free-form.
	"humanTime": func(s string) string {
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return humanize.Time(t)
			}
		}
		return s
	},
	// safeURL lets the data-URI thumbnails through the template URL
	// filter. Thumbnails come from our own generator or the trusted
	// gallery feed, never from user input.
	"safeURL": func(s string) template.URL {
		return template.URL(s)
	},
	"confirmLoad":   func() string { return browser.ConfirmLoadMessage },
	"confirmDelete": func() string { return browser.ConfirmDeleteMessage },
}

// renderTemplate renders a named page template inside the layout.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if _, err = tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	// Add shared components.
	for compName, compContent := range templates {
		if strings.HasPrefix(compName, "components/") {
			if _, err = tmpl.New(filepath.Base(compName)).Parse(compContent); err != nil {
				return fmt.Errorf("parse component %s: %w", compName, err)
			}
		}
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content, keyed by page name.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex h-16 items-center">
                <a href="/browser" class="px-2 py-2 text-xl font-bold text-indigo-600">Workdeck</a>
            </div>
        </div>
    </nav>

    <main class="max-w-7xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "content" .}}
    </main>
</body>
</html>`,

	"browser": `{{define "content"}}
{{range .Alerts}}
<div class="mb-4 rounded-md bg-red-50 border border-red-200 px-4 py-3 text-sm text-red-700" role="alert">{{.}}</div>
{{end}}

<div class="border-b border-gray-200 mb-6">
    <nav class="-mb-px flex space-x-8">
        <a href="/browser?tab=gallery" class="whitespace-nowrap border-b-2 px-1 py-3 text-sm font-medium {{if eq .ActiveTab "gallery"}}border-indigo-500 text-indigo-600{{else}}border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700{{end}}">
            Gallery
        </a>
        <a href="/browser?tab=saved" class="whitespace-nowrap border-b-2 px-1 py-3 text-sm font-medium {{if eq .ActiveTab "saved"}}border-indigo-500 text-indigo-600{{else}}border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700{{end}}">
            Saved Workflows
        </a>
    </nav>
</div>

{{if .Gallery.Visible}}
<div id="gallery-panel" class="grid grid-cols-1 gap-6 sm:grid-cols-2 lg:grid-cols-4">
    {{range .Gallery.Cards}}{{template "card" .}}{{end}}
    {{if not .Gallery.Cards}}
    <p class="col-span-full text-sm text-gray-500">No gallery workflows available.</p>
    {{end}}
</div>
{{end}}

{{if .Saved.Visible}}
<div id="saved-panel" class="grid grid-cols-1 gap-6 sm:grid-cols-2 lg:grid-cols-4">
    {{range .Saved.Cards}}{{template "card" .}}{{end}}
    {{if not .Saved.Cards}}
    <p class="col-span-full text-sm text-gray-500">No saved workflows yet.</p>
    {{end}}
</div>
{{end}}
{{end}}`,

	"components/card": `{{define "card"}}
<div class="rounded-lg bg-white shadow overflow-hidden">
    {{if .Thumbnail}}
    <img src="{{safeURL .Thumbnail}}" alt="" class="h-[150px] w-full object-cover bg-gray-200">
    {{else}}
    <div class="h-[150px] w-full bg-gray-200"></div>
    {{end}}
    <div class="p-4">
        <h3 class="text-sm font-semibold text-gray-900 truncate">{{.Title}}</h3>
        {{if .HasAuthor}}<p class="mt-1 text-xs text-gray-500">Author: {{.Author}}</p>{{end}}
        {{if .HasTime}}<p class="mt-1 text-xs text-gray-500">Date: {{humanTime .Time}}</p>{{end}}
        <div class="mt-3 flex items-center space-x-3">
            <a href="/workstation?filename={{urlquery .Name}}" onclick="return confirm('{{confirmLoad}}')" class="text-sm font-medium text-indigo-600 hover:text-indigo-500">Load</a>
            {{if .ShowDelete}}
            <form method="post" action="/browser/delete" onsubmit="return confirm('{{confirmDelete}}')">
                <input type="hidden" name="filename" value="{{.Name}}">
                <button type="submit" class="text-sm font-medium text-red-600 hover:text-red-500">Delete</button>
            </form>
            {{end}}
        </div>
    </div>
</div>
{{end}}`,

	"workstation": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">Workstation</h1>
{{if .Filename}}
<p class="mt-2 text-sm text-gray-500">Editing <span id="workflow-filename" class="font-mono text-gray-900">{{.Filename}}</span></p>
<div id="editor" data-filename="{{.Filename}}" class="mt-6 rounded-lg border-2 border-dashed border-gray-300 bg-white p-12 text-center text-sm text-gray-400">
    Workflow editor
</div>
{{else}}
<p class="mt-2 text-sm text-gray-500">No workflow selected. <a href="/browser" class="text-indigo-600 hover:text-indigo-500">Back to the browser.</a></p>
{{end}}
{{end}}`,
}

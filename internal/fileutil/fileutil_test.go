package fileutil

import "testing"

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "hyphenated base name", path: "docs/machine-api-docs.restdown", expected: "Machine Api Docs"},
		{name: "single segment", path: "sshkeys.md", expected: "Sshkeys"},
		{name: "uppercase flattened", path: "CLOUD-API.md", expected: "Cloud Api"},
		{name: "no extension", path: "readme", expected: "Readme"},
		{name: "empty path", path: "", expected: "Untitled"},
		{name: "hidden file", path: ".restdown", expected: "Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleFromPath(tt.path); got != tt.expected {
				t.Errorf("TitleFromPath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "plain name", input: "joyent", expected: false},
		{name: "hyphenated name", input: "my-brand", expected: false},
		{name: "relative path", input: "./brands/api", expected: true},
		{name: "absolute path", input: "/srv/brands", expected: true},
		{name: "windows path", input: `C:\brands`, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFilePath(tt.input); got != tt.expected {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

package restdown

import (
	"strings"
	"testing"
)

func TestMarkEndpointHeadings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "method heading wrapped",
			input:    `<h2 id="GET-/widgets">GET /widgets</h2>`,
			expected: `<h2 id="GET-/widgets"><span class="verb">GET /widgets</span></h2>`,
		},
		{
			name:     "attributes preserved",
			input:    `<h2 id="POST-/jobs" class="x">POST /jobs</h2>`,
			expected: `<h2 id="POST-/jobs" class="x"><span class="verb">POST /jobs</span></h2>`,
		},
		{
			name:     "non-method heading untouched",
			input:    `<h2 id="overview">Overview text</h2>`,
			expected: `<h2 id="overview">Overview text</h2>`,
		},
		{
			name:     "lowercase run is not a method",
			input:    `<h2 id="x">get /widgets</h2>`,
			expected: `<h2 id="x">get /widgets</h2>`,
		},
		{
			name:     "mixed-case token is not a method",
			input:    `<h2 id="x">GETx /widgets</h2>`,
			expected: `<h2 id="x">GETx /widgets</h2>`,
		},
		{
			name:     "h3 untouched",
			input:    `<h3 id="x">GET /widgets</h3>`,
			expected: `<h3 id="x">GET /widgets</h3>`,
		},
		{
			name:     "every matching line rewritten",
			input:    "<h2 id=\"GET-/a\">GET /a</h2>\n<p>x</p>\n<h2 id=\"PUT-/b\">PUT /b</h2>",
			expected: "<h2 id=\"GET-/a\"><span class=\"verb\">GET /a</span></h2>\n<p>x</p>\n<h2 id=\"PUT-/b\"><span class=\"verb\">PUT /b</span></h2>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkEndpointHeadings(tt.input); got != tt.expected {
				t.Errorf("MarkEndpointHeadings(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMarkShellBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "prompt stripped and class added",
			input:    "<pre><code>$ ls -la\n</code></pre>",
			expected: "<pre class=\"shell\"><code>ls -la\n</code></pre>",
		},
		{
			name:     "code attributes carried over",
			input:    "<pre><code class=\"language-sh\">$ uname\n</code></pre>",
			expected: "<pre class=\"shell\"><code class=\"language-sh\">uname\n</code></pre>",
		},
		{
			name:     "non-shell block untouched",
			input:    "<pre><code>var x = 1;\n</code></pre>",
			expected: "<pre><code>var x = 1;\n</code></pre>",
		},
		{
			name:     "dollar without space untouched",
			input:    "<pre><code>$HOME\n</code></pre>",
			expected: "<pre><code>$HOME\n</code></pre>",
		},
		{
			name:     "every occurrence rewritten",
			input:    "<pre><code>$ a\n</code></pre><pre><code>$ b\n</code></pre>",
			expected: "<pre class=\"shell\"><code>a\n</code></pre><pre class=\"shell\"><code>b\n</code></pre>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkShellBlocks(tt.input); got != tt.expected {
				t.Errorf("MarkShellBlocks(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWrapIntro(t *testing.T) {
	t.Run("wraps content after first h1", func(t *testing.T) {
		input := "<h1>One</h1>\n<p>intro</p>\n<h1>Two</h1>\n<p>body</p>\n"
		got := WrapIntro(input)

		want := "<h1>One</h1>\n<div class=\"intro\">\n<p>intro</p>\n</div>\n<h1>Two</h1>\n<p>body</p>\n"
		if got != want {
			t.Errorf("WrapIntro() = %q, want %q", got, want)
		}
	})

	t.Run("wraps to end of document without second h1", func(t *testing.T) {
		input := "<h1>Only</h1>\n<p>everything</p>\n"
		got := WrapIntro(input)

		want := "<h1>Only</h1>\n<div class=\"intro\">\n<p>everything</p>\n</div>\n"
		if got != want {
			t.Errorf("WrapIntro() = %q, want %q", got, want)
		}
	})

	t.Run("applied at most once with three h1s", func(t *testing.T) {
		input := "<h1>A</h1>\n<p>1</p>\n<h1>B</h1>\n<p>2</p>\n<h1>C</h1>\n<p>3</p>\n"
		got := WrapIntro(input)

		if n := strings.Count(got, `<div class="intro">`); n != 1 {
			t.Errorf("intro wrapped %d times, want 1: %q", n, got)
		}
		if !strings.Contains(got, "<div class=\"intro\">\n<p>1</p>\n</div>\n<h1>B</h1>") {
			t.Errorf("wrong span wrapped: %q", got)
		}
	})

	t.Run("no h1 leaves document unchanged", func(t *testing.T) {
		input := "<h2>Not a title</h2>\n<p>x</p>\n"
		if got := WrapIntro(input); got != input {
			t.Errorf("WrapIntro() = %q, want unchanged", got)
		}
	})
}

func TestPostProcessOrder(t *testing.T) {
	input := "<h1>API</h1>\n" +
		"<p>Welcome.</p>\n" +
		"<h2 id=\"GET-/x\">GET /x</h2>\n" +
		"<pre><code>$ curl /x\n</code></pre>\n"

	got := PostProcess(input)

	if !strings.Contains(got, `<span class="verb">GET /x</span>`) {
		t.Errorf("endpoint pass missing: %q", got)
	}
	if !strings.Contains(got, "<pre class=\"shell\"><code>curl /x\n</code></pre>") {
		t.Errorf("shell pass missing: %q", got)
	}
	// The intro wrap runs last, so it encloses already-rewritten markup.
	if !strings.Contains(got, "<div class=\"intro\">\n<p>Welcome.</p>") {
		t.Errorf("intro pass missing: %q", got)
	}
	if n := strings.Count(got, `<div class="intro">`); n != 1 {
		t.Errorf("intro wrapped %d times, want 1", n)
	}
}

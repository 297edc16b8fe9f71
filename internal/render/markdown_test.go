package render

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	r := New()

	html := string(r.ToHTML("# Heading\n\nSome *emphasis* and a [link](https://example.com)."))

	if !strings.Contains(html, "<h1") {
		t.Errorf("expected heading in output, got %q", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Errorf("expected emphasis in output, got %q", html)
	}
	if !strings.Contains(html, `href="https://example.com"`) {
		t.Errorf("expected link in output, got %q", html)
	}
}

func TestToHTML_StripsScripts(t *testing.T) {
	r := New()

	html := string(r.ToHTML("hello <script>alert('xss')</script> world"))

	if strings.Contains(html, "<script") {
		t.Errorf("script tag survived sanitization: %q", html)
	}
	if !strings.Contains(html, "hello") || !strings.Contains(html, "world") {
		t.Errorf("surrounding text lost: %q", html)
	}
}

func TestToHTML_StripsEventHandlers(t *testing.T) {
	r := New()

	html := string(r.ToHTML(`<img src="x" onerror="alert(1)">`))

	if strings.Contains(html, "onerror") {
		t.Errorf("event handler survived sanitization: %q", html)
	}
}

func TestToHTML_Empty(t *testing.T) {
	r := New()

	if html := string(r.ToHTML("")); strings.TrimSpace(html) != "" {
		t.Errorf("expected empty output for empty input, got %q", html)
	}
}

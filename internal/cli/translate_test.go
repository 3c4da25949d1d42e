package cli

import (
	"testing"

	"github.com/leonletto/agent-browser/internal/protocol"
)

func mustTranslate(t *testing.T, tokens ...string) *protocol.Request {
	t.Helper()
	req := Translate(tokens)
	if req == nil {
		t.Fatalf("Translate(%v) = nil, want request", tokens)
	}
	if req.ID == "" {
		t.Fatalf("Translate(%v) produced request without ID", tokens)
	}
	return req
}

func TestTranslateActions(t *testing.T) {
	tests := []struct {
		tokens []string
		action string
	}{
		{[]string{"open", "example.com"}, "navigate"},
		{[]string{"goto", "example.com"}, "navigate"},
		{[]string{"navigate", "example.com"}, "navigate"},
		{[]string{"click", "#btn"}, "click"},
		{[]string{"fill", "#name", "Ada"}, "fill"},
		{[]string{"type", "#name", "Ada"}, "type"},
		{[]string{"hover", ".menu"}, "hover"},
		{[]string{"snapshot"}, "snapshot"},
		{[]string{"screenshot"}, "screenshot"},
		{[]string{"close"}, "close"},
		{[]string{"quit"}, "close"},
		{[]string{"exit"}, "close"},
		{[]string{"get", "text", "#p"}, "gettext"},
		{[]string{"get", "url"}, "url"},
		{[]string{"get", "title"}, "title"},
		{[]string{"press", "Enter"}, "press"},
		{[]string{"wait", "500"}, "wait"},
		{[]string{"wait", "#foo"}, "wait"},
		{[]string{"back"}, "back"},
		{[]string{"forward"}, "forward"},
		{[]string{"reload"}, "reload"},
		{[]string{"eval", "1+1"}, "evaluate"},
	}

	for _, tt := range tests {
		req := mustTranslate(t, tt.tokens...)
		if req.Action != tt.action {
			t.Errorf("Translate(%v).Action = %q, want %q", tt.tokens, req.Action, tt.action)
		}
	}
}

func TestTranslateUnknown(t *testing.T) {
	tests := [][]string{
		{},
		{"frobnicate"},
		{"open"},            // missing url
		{"click"},           // missing selector
		{"fill"},            // missing selector
		{"hover"},           // missing selector
		{"get"},             // missing sub-verb
		{"get", "cookies"},  // unknown sub-verb
		{"get", "text"},     // missing selector
		{"press"},           // missing key
		{"wait"},            // missing argument
	}

	for _, tokens := range tests {
		if req := Translate(tokens); req != nil {
			t.Errorf("Translate(%v) = %+v, want nil", tokens, req)
		}
	}
}

func TestTranslateNavigateScheme(t *testing.T) {
	if got := mustTranslate(t, "open", "example.com").URL; got != "https://example.com" {
		t.Errorf("bare host: URL = %q, want https:// prefix", got)
	}
	if got := mustTranslate(t, "open", "https://x.com").URL; got != "https://x.com" {
		t.Errorf("https url rewritten: %q", got)
	}
	if got := mustTranslate(t, "open", "http://x.com").URL; got != "http://x.com" {
		t.Errorf("http url rewritten: %q", got)
	}
}

func TestTranslateFillJoinsValue(t *testing.T) {
	req := mustTranslate(t, "fill", "#name", "Ada", "Lovelace")
	if req.Selector != "#name" {
		t.Errorf("Selector = %q", req.Selector)
	}
	if req.Value != "Ada Lovelace" {
		t.Errorf("Value = %q, want joined text", req.Value)
	}

	// type uses the text field, not value
	req = mustTranslate(t, "type", "#name", "Ada", "Lovelace")
	if req.Text != "Ada Lovelace" || req.Value != "" {
		t.Errorf("type: Text = %q, Value = %q", req.Text, req.Value)
	}
}

func TestTranslateSnapshotFlags(t *testing.T) {
	req := mustTranslate(t, "snapshot", "-i", "-d", "3")
	if !req.Interactive {
		t.Error("interactive not set")
	}
	if req.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", req.MaxDepth)
	}

	// Order must not matter
	req = mustTranslate(t, "snapshot", "-d", "3", "-i")
	if !req.Interactive || req.MaxDepth != 3 {
		t.Errorf("permuted flags: %+v", req)
	}

	req = mustTranslate(t, "snapshot", "--compact", "--selector", "#main", "--interactive")
	if !req.Compact || !req.Interactive || req.Selector != "#main" {
		t.Errorf("long flags: %+v", req)
	}

	// Unrecognized flags are silently ignored
	req = mustTranslate(t, "snapshot", "--frob", "-i")
	if !req.Interactive {
		t.Error("unknown flag broke scanning")
	}

	// Malformed depth values are ignored
	req = mustTranslate(t, "snapshot", "-d", "deep")
	if req.MaxDepth != 0 {
		t.Errorf("MaxDepth = %d, want 0 for unparsable value", req.MaxDepth)
	}
}

func TestTranslateWait(t *testing.T) {
	req := mustTranslate(t, "wait", "500")
	if req.Timeout == nil || *req.Timeout != 500 {
		t.Fatalf("numeric wait: Timeout = %v, want 500", req.Timeout)
	}
	if req.Selector != "" {
		t.Errorf("numeric wait set selector %q", req.Selector)
	}

	req = mustTranslate(t, "wait", "#foo")
	if req.Timeout != nil {
		t.Errorf("selector wait set timeout %v", *req.Timeout)
	}
	if req.Selector != "#foo" {
		t.Errorf("Selector = %q, want #foo", req.Selector)
	}
}

func TestTranslateScreenshotPath(t *testing.T) {
	if req := mustTranslate(t, "screenshot"); req.Path != "" {
		t.Errorf("Path = %q, want empty", req.Path)
	}
	if req := mustTranslate(t, "screenshot", "/tmp/shot.png"); req.Path != "/tmp/shot.png" {
		t.Errorf("Path = %q", req.Path)
	}
}

func TestTranslateEvalJoinsScript(t *testing.T) {
	req := mustTranslate(t, "eval", "document.title", "+", "'!'")
	if req.Script != "document.title + '!'" {
		t.Errorf("Script = %q", req.Script)
	}
}

func TestTranslateFreshIDs(t *testing.T) {
	a := mustTranslate(t, "back")
	b := mustTranslate(t, "back")
	if a.ID == b.ID {
		t.Errorf("consecutive requests share ID %q", a.ID)
	}
}

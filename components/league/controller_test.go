package league

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"strings"
	"testing"
)

type stubPageRenderer struct {
	calls    int
	lastName string
	lastData any
}

func (s *stubPageRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	s.calls++
	s.lastName = name
	s.lastData = data
	if len(out) > 0 && out[0] != nil {
		out[0].Write([]byte("<html>ok</html>"))
	}
	return "<html>ok</html>", nil
}

func TestControllerRenderPage(t *testing.T) {
	service := newTestService(t, Options{})
	renderer := &stubPageRenderer{}
	controller := NewController(ControllerOptions{Service: service, Renderer: renderer})

	var buf bytes.Buffer
	if err := controller.RenderPage(context.Background(), "s1", &buf); err != nil {
		t.Fatalf("RenderPage returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected page output")
	}
	if renderer.lastName != "dashboard" {
		t.Fatalf("expected dashboard template, got %q", renderer.lastName)
	}
	data, ok := renderer.lastData.(map[string]any)
	if !ok {
		t.Fatalf("unexpected template data %T", renderer.lastData)
	}
	if data["session_id"] != "s1" {
		t.Fatalf("expected session id in template data")
	}
	if _, ok := data["view"].(*DashboardView); !ok {
		t.Fatalf("expected view in template data")
	}
}

func TestControllerRequiresCollaborators(t *testing.T) {
	controller := NewController(ControllerOptions{})
	if err := controller.RenderPage(context.Background(), "s1", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error without service")
	}
	if _, err := controller.Payload(context.Background(), "s1"); err == nil {
		t.Fatalf("expected error without service")
	}
}

func TestControllerPayload(t *testing.T) {
	service := newTestService(t, Options{})
	controller := NewController(ControllerOptions{Service: service, Renderer: &stubPageRenderer{}})
	view, err := controller.Payload(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Payload returned error: %v", err)
	}
	if view.Heading == "" {
		t.Fatalf("expected a derived view")
	}
}

func TestEmbeddedTemplateRenderer(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		t.Fatalf("NewTemplateRenderer returned error: %v", err)
	}
	service := newTestService(t, Options{})
	controller := NewController(ControllerOptions{Service: service, Renderer: renderer})

	var buf bytes.Buffer
	if err := controller.RenderPage(context.Background(), "s1", &buf); err != nil {
		t.Fatalf("RenderPage returned error: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"Profit Over Time", "Alice", "data-session"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected page to contain %q", want)
		}
	}
}

func TestStaticAssets(t *testing.T) {
	assets := StaticAssets()
	for _, name := range []string{"dashboard.css", "dashboard.js"} {
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("expected %s to have content", name)
		}
	}
}

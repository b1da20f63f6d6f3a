package docs

import (
	"strings"
	"testing"
)

func TestTopicsAndGet(t *testing.T) {
	topics := Topics()
	want := []string{"cart", "categories", "reorder"}
	if strings.Join(topics, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected topics: %v", topics)
	}
	body, ok := Get(" Reorder ")
	if !ok || !strings.Contains(body, "# Reordering categories") {
		t.Fatalf("expected reorder doc; ok=%v", ok)
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("expected unknown topic to be missing")
	}
}

func TestRender_NoTTYStyle(t *testing.T) {
	body, _ := Get("cart")
	out := Render(body, 60, "notty")
	if !strings.Contains(out, "Cart") {
		t.Fatalf("expected rendered heading; got %q", out)
	}
	if Render("   ", 60, "notty") != "" {
		t.Fatalf("expected empty input to render empty")
	}
}

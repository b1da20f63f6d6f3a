package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"hypercart/internal/store"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func mustRunJSON(t *testing.T, args ...string) any {
	t.Helper()
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: hypercart %v\nerr: %v\nstderr:\n%s", args, err, stderr)
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s", err, stdout)
	}
	data, ok := env["data"]
	if !ok {
		t.Fatalf("expected data key; got %v", env)
	}
	return data
}

func idOf(t *testing.T, data any) string {
	t.Helper()
	id, _ := data.(map[string]any)["id"].(string)
	if id == "" {
		t.Fatalf("expected id in %#v", data)
	}
	return id
}

func names(data any) string {
	var out []string
	for _, x := range data.([]any) {
		out = append(out, x.(map[string]any)["name"].(string))
	}
	return strings.Join(out, ",")
}

func TestCLI_CategoriesLifecycle(t *testing.T) {
	t.Setenv("HYPERCART_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()

	produce := idOf(t, mustRunJSON(t, "--dir", dir, "categories", "add", "Produce"))
	mustRunJSON(t, "--dir", dir, "categories", "add", "Dairy")
	bakery := idOf(t, mustRunJSON(t, "--dir", dir, "categories", "add", "Bakery"))

	if got := names(mustRunJSON(t, "--dir", dir, "categories", "list")); got != "Produce,Dairy,Bakery" {
		t.Fatalf("unexpected order: %s", got)
	}
	if got := names(mustRunJSON(t, "--dir", dir, "categories", "move", bakery, "0")); got != "Bakery,Produce,Dairy" {
		t.Fatalf("unexpected order after move: %s", got)
	}

	mustRunJSON(t, "--dir", dir, "categories", "rename", produce, "Fresh", "produce")
	mustRunJSON(t, "--dir", dir, "categories", "rm", bakery)
	if got := names(mustRunJSON(t, "--dir", dir, "categories", "list")); got != "Fresh produce,Dairy" {
		t.Fatalf("unexpected order after rename/rm: %s", got)
	}

	_, stderr, err := runCLI(t, []string{"--dir", dir, "categories", "rm", bakery})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not found; got %v", err)
	}
	if !strings.Contains(string(stderr), "category not found: "+bakery) {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
}

func TestCLI_CartTotals(t *testing.T) {
	t.Setenv("HYPERCART_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()

	cat := idOf(t, mustRunJSON(t, "--dir", dir, "categories", "add", "Dairy"))
	milk := idOf(t, mustRunJSON(t, "--dir", dir, "products", "add", "Milk", "--category", cat, "--price", "1.29"))

	cart := mustRunJSON(t, "--dir", dir, "cart", "add", milk, "--qty", "3").(map[string]any)
	if cart["totalCents"].(float64) != 387 || cart["itemCount"].(float64) != 3 {
		t.Fatalf("unexpected cart: %v", cart)
	}
	cart = mustRunJSON(t, "--dir", dir, "cart", "rm", milk).(map[string]any)
	if cart["itemCount"].(float64) != 0 {
		t.Fatalf("expected empty cart: %v", cart)
	}

	if _, _, err := runCLI(t, []string{"--dir", dir, "products", "add", "Ghost", "--category", "cat-nope"}); err == nil {
		t.Fatalf("expected unknown category to fail")
	}
	if _, _, err := runCLI(t, []string{"--dir", dir, "products", "add", "Cheap", "--category", cat, "--price", "abc"}); err == nil {
		t.Fatalf("expected bad price to fail")
	}
}

func TestCLI_TableFormat(t *testing.T) {
	t.Setenv("HYPERCART_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()
	mustRunJSON(t, "--dir", dir, "categories", "add", "Snacks")

	stdout, stderr, err := runCLI(t, []string{"--dir", dir, "--format", "table", "categories", "list"})
	if err != nil {
		t.Fatalf("table list: %v\n%s", err, stderr)
	}
	out := string(stdout)
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "Snacks") {
		t.Fatalf("unexpected table output:\n%s", out)
	}

	// Single-object results have no table form.
	if _, _, err := runCLI(t, []string{"--dir", dir, "--format", "table", "categories", "add", "Tea"}); err == nil {
		t.Fatalf("expected table format to be rejected for a single category")
	}
	if _, _, err := runCLI(t, []string{"--dir", dir, "--format", "yaml", "categories", "list"}); err == nil {
		t.Fatalf("expected unknown format to be rejected")
	}
}

func TestCLI_EnvFormatIsFlagDefault(t *testing.T) {
	t.Setenv("HYPERCART_CONFIG_DIR", t.TempDir())
	t.Setenv("HYPERCART_FORMAT", "table")
	dir := t.TempDir()

	stdout, _, err := runCLI(t, []string{"--dir", dir, "docs"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(string(stdout), "TOPIC") {
		t.Fatalf("expected env format to apply; got %s", stdout)
	}
	stdout, _, err = runCLI(t, []string{"--dir", dir, "--format", "json", "docs"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(string(stdout), `"topics"`) {
		t.Fatalf("expected flag to override env; got %s", stdout)
	}
}

func TestCLI_DocsRaw(t *testing.T) {
	t.Setenv("HYPERCART_CONFIG_DIR", t.TempDir())
	stdout, _, err := runCLI(t, []string{"docs", "reorder", "--raw"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Reordering categories") {
		t.Fatalf("unexpected raw docs: %q", stdout)
	}
	if _, _, err := runCLI(t, []string{"docs", "nope"}); err == nil {
		t.Fatalf("expected unknown topic to fail")
	}
}

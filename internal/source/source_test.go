package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeStory(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestFileSource(t *testing.T) {
	path := writeStory(t, t.TempDir(), "max.txt", "  Max ran to the park. He was happy.\n")

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if src.Name() != "max" {
		t.Errorf("Expected name max, got %s", src.Name())
	}
	text, err := src.Text()
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if text != "Max ran to the park. He was happy." {
		t.Errorf("Expected trimmed story text, got %q", text)
	}
}

func TestOpenUnsupportedFormat(t *testing.T) {
	if _, err := Open("story.docx"); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}

func TestFindLatestStory(t *testing.T) {
	dir := t.TempDir()
	old := writeStory(t, dir, "old.txt", "old")
	newer := writeStory(t, dir, "newer.md", "newer")
	writeStory(t, dir, "ignored.docx", "not a story")

	// Directory entries can share a mtime on coarse filesystems; force
	// an ordering.
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	got, err := FindLatestStory(dir)
	if err != nil {
		t.Fatalf("FindLatestStory failed: %v", err)
	}
	if got != newer {
		t.Errorf("Expected %s, got %s", newer, got)
	}
}

func TestFindLatestStoryEmptyDir(t *testing.T) {
	if _, err := FindLatestStory(t.TempDir()); err == nil {
		t.Error("Expected error for directory without stories")
	}
}

func TestListStories(t *testing.T) {
	dir := t.TempDir()
	writeStory(t, dir, "b.txt", "b")
	writeStory(t, dir, "a.md", "a")
	writeStory(t, dir, "skip.json", "{}")

	paths, err := ListStories(dir)
	if err != nil {
		t.Fatalf("ListStories failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected 2 stories, got %d", len(paths))
	}
	if filepath.Base(paths[0]) != "a.md" || filepath.Base(paths[1]) != "b.txt" {
		t.Errorf("Expected sorted [a.md b.txt], got %v", paths)
	}
}

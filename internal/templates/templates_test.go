package templates

import (
	"path/filepath"
	"testing"
)

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	if len(c.Characters) != 4 {
		t.Fatalf("Expected 4 character templates, got %d", len(c.Characters))
	}
	if len(c.Scenes) != 6 {
		t.Fatalf("Expected 6 scene templates, got %d", len(c.Scenes))
	}

	for _, ch := range c.Characters {
		if ch.ID == "" || ch.Name == "" || ch.BaseColor == "" || ch.SVG == "" {
			t.Errorf("Character %q is missing fields: %+v", ch.ID, ch)
		}
		for _, name := range ExpressionNames {
			if ch.Expressions[name] == "" {
				t.Errorf("Character %q is missing expression %q", ch.ID, name)
			}
		}
	}
	for _, sc := range c.Scenes {
		if sc.ID == "" || sc.SVG == "" || sc.Primary == "" || sc.Secondary == "" {
			t.Errorf("Scene %q is missing fields: %+v", sc.ID, sc)
		}
	}
}

func TestBuiltinReturnsFreshCopies(t *testing.T) {
	a := Builtin()
	a.Characters[0].Expressions["neutral"] = "tampered"
	a.Scenes[0].Primary = "#000000"

	b := Builtin()
	if b.Characters[0].Expressions["neutral"] == "tampered" {
		t.Error("Builtin catalogs share expression maps")
	}
	if b.Scenes[0].Primary == "#000000" {
		t.Error("Builtin catalogs share scene templates")
	}
}

func TestCatalogLookup(t *testing.T) {
	c := Builtin()
	if ch, ok := c.CharacterByID("dog"); !ok || ch.Name != "Max the Dog" {
		t.Errorf("Expected Max the Dog, got %+v (found %v)", ch, ok)
	}
	if _, ok := c.CharacterByID("dragon"); ok {
		t.Error("Expected lookup miss for unknown template")
	}
	if sc, ok := c.SceneByID("park"); !ok || sc.Category != SceneOutdoor {
		t.Errorf("Expected outdoor park, got %+v (found %v)", sc, ok)
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	c := Builtin()

	if err := WriteCatalog(&c, path); err != nil {
		t.Fatalf("WriteCatalog failed: %v", err)
	}
	back, err := ReadCatalog(path)
	if err != nil {
		t.Fatalf("ReadCatalog failed: %v", err)
	}

	if len(back.Characters) != len(c.Characters) || len(back.Scenes) != len(c.Scenes) {
		t.Fatalf("Catalog size changed: %d/%d -> %d/%d",
			len(c.Characters), len(c.Scenes), len(back.Characters), len(back.Scenes))
	}
	if back.Characters[0].ID != c.Characters[0].ID {
		t.Error("Template order changed across round trip")
	}
}

func TestReadCatalogFillsExpressions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := Catalog{
		Characters: []CharacterTemplate{
			{
				ID: "blob", Name: "Blob", Category: CategoryObject,
				BaseColor: "#808080", SVG: "<svg/>",
				Expressions: map[string]string{"neutral": "<g/>"},
			},
		},
	}
	if err := WriteCatalog(&partial, path); err != nil {
		t.Fatalf("WriteCatalog failed: %v", err)
	}

	back, err := ReadCatalog(path)
	if err != nil {
		t.Fatalf("ReadCatalog failed: %v", err)
	}
	for _, name := range ExpressionNames {
		if back.Characters[0].Expressions[name] != "<g/>" {
			t.Errorf("Expression %q not filled from neutral, got %q", name, back.Characters[0].Expressions[name])
		}
	}
}

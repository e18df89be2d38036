// Package templates holds the static character and scene template
// catalogs. Catalogs are loaded once, passed into the compiler as plain
// values and never mutated; the compiler copies what it needs so later
// catalog edits cannot reach into existing projects.
package templates

// CharacterCategory classifies a character template.
type CharacterCategory string

const (
	CategoryAnimal CharacterCategory = "animal"
	CategoryPerson CharacterCategory = "person"
	CategoryObject CharacterCategory = "object"
)

// SceneCategory classifies a scene background template.
type SceneCategory string

const (
	SceneIndoor   SceneCategory = "indoor"
	SceneOutdoor  SceneCategory = "outdoor"
	SceneAbstract SceneCategory = "abstract"
)

// ExpressionNames are the expression slots every character template
// carries, in no particular order.
var ExpressionNames = []string{"neutral", "happy", "sad", "surprised", "talking"}

// CharacterTemplate is an immutable character prototype: an SVG body
// plus per-expression overlay fragments.
type CharacterTemplate struct {
	ID          string            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	Category    CharacterCategory `yaml:"category" json:"category"`
	BaseColor   string            `yaml:"baseColor" json:"baseColor"`
	SVG         string            `yaml:"svg" json:"svg"`
	Expressions map[string]string `yaml:"expressions" json:"expressions"`
}

// SceneTemplate is an immutable background prototype.
type SceneTemplate struct {
	ID        string        `yaml:"id" json:"id"`
	Name      string        `yaml:"name" json:"name"`
	Category  SceneCategory `yaml:"category" json:"category"`
	SVG       string        `yaml:"svg" json:"svg"`
	Primary   string        `yaml:"primary" json:"primary"`
	Secondary string        `yaml:"secondary" json:"secondary"`
}

// Catalog bundles both template lists. Order matters: the compiler
// cycles each list by index, so a reordered catalog is a different
// catalog.
type Catalog struct {
	Characters []CharacterTemplate `yaml:"characters" json:"characters"`
	Scenes     []SceneTemplate     `yaml:"scenes" json:"scenes"`
}

// CharacterByID finds a character template, or false.
func (c *Catalog) CharacterByID(id string) (CharacterTemplate, bool) {
	for _, t := range c.Characters {
		if t.ID == id {
			return t, true
		}
	}
	return CharacterTemplate{}, false
}

// SceneByID finds a scene template, or false.
func (c *Catalog) SceneByID(id string) (SceneTemplate, bool) {
	for _, t := range c.Scenes {
		if t.ID == id {
			return t, true
		}
	}
	return SceneTemplate{}, false
}

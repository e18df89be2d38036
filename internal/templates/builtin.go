package templates

// Builtin returns the default catalog: four animal characters and six
// backgrounds, simple flat SVG in a storybook style. The returned value
// is a fresh copy each call so callers can safely modify their own.
func Builtin() Catalog {
	return Catalog{
		Characters: builtinCharacters(),
		Scenes:     builtinScenes(),
	}
}

func builtinCharacters() []CharacterTemplate {
	return []CharacterTemplate{
		{
			ID:        "dog",
			Name:      "Max the Dog",
			Category:  CategoryAnimal,
			BaseColor: "#F4A460",
			SVG: `<svg viewBox="0 0 100 120" xmlns="http://www.w3.org/2000/svg">
  <ellipse cx="50" cy="70" rx="25" ry="30" fill="currentColor"/>
  <circle cx="50" cy="35" r="20" fill="currentColor"/>
  <ellipse cx="35" cy="25" rx="8" ry="15" fill="currentColor"/>
  <ellipse cx="65" cy="25" rx="8" ry="15" fill="currentColor"/>
  <ellipse cx="50" cy="42" rx="10" ry="8" fill="#FFE4C4"/>
  <circle cx="50" cy="42" r="3" fill="#000"/>
  <circle cx="43" cy="32" r="3" fill="#000"/>
  <circle cx="57" cy="32" r="3" fill="#000"/>
  <rect x="35" y="95" width="8" height="20" rx="4" fill="currentColor"/>
  <rect x="57" y="95" width="8" height="20" rx="4" fill="currentColor"/>
  <path d="M 75 75 Q 85 70, 85 60" stroke="currentColor" stroke-width="5" fill="none" stroke-linecap="round"/>
</svg>`,
			Expressions: map[string]string{
				"neutral":   "M43,32 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M57,32 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6",
				"happy":     "M43,30 m0,4 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M57,30 m0,4 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M40,48 Q50,52 60,48",
				"sad":       "M43,32 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M57,32 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M40,52 Q50,48 60,52",
				"surprised": "M43,32 m0,4 a4,4 0 1,0 0,-8 a4,4 0 1,0 0,8 M57,32 m0,4 a4,4 0 1,0 0,-8 a4,4 0 1,0 0,8 M45,48 h10",
				"talking":   "M43,32 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M57,32 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M45,48 a5,3 0 1,0 10,0",
			},
		},
		{
			ID:        "cat",
			Name:      "Luna the Cat",
			Category:  CategoryAnimal,
			BaseColor: "#FFA07A",
			SVG: `<svg viewBox="0 0 100 120" xmlns="http://www.w3.org/2000/svg">
  <ellipse cx="50" cy="75" rx="22" ry="28" fill="currentColor"/>
  <circle cx="50" cy="40" r="18" fill="currentColor"/>
  <path d="M 35,30 L 30,15 L 40,25 Z" fill="currentColor"/>
  <path d="M 65,30 L 70,15 L 60,25 Z" fill="currentColor"/>
  <ellipse cx="50" cy="45" rx="8" ry="6" fill="#FFE4C4"/>
  <path d="M 50,43 L 47,46 L 53,46 Z" fill="#FF69B4"/>
  <ellipse cx="43" cy="37" rx="3" ry="4" fill="#000"/>
  <ellipse cx="57" cy="37" rx="3" ry="4" fill="#000"/>
  <line x1="30" y1="42" x2="42" y2="42" stroke="#000" stroke-width="1"/>
  <line x1="70" y1="42" x2="58" y2="42" stroke="#000" stroke-width="1"/>
  <rect x="38" y="98" width="7" height="18" rx="3" fill="currentColor"/>
  <rect x="55" y="98" width="7" height="18" rx="3" fill="currentColor"/>
  <path d="M 72 80 Q 85 75, 90 65" stroke="currentColor" stroke-width="4" fill="none" stroke-linecap="round"/>
</svg>`,
			Expressions: map[string]string{
				"neutral":   "M43,37 m0,4 a3,4 0 1,0 0,-8 a3,4 0 1,0 0,8 M57,37 m0,4 a3,4 0 1,0 0,-8 a3,4 0 1,0 0,8",
				"happy":     "M43,35 m0,5 a3,4 0 1,0 0,-8 a3,4 0 1,0 0,8 M57,35 m0,5 a3,4 0 1,0 0,-8 a3,4 0 1,0 0,8 M42,52 Q50,55 58,52",
				"sad":       "M43,37 m0,4 a3,4 0 1,0 0,-8 a3,4 0 1,0 0,8 M57,37 m0,4 a3,4 0 1,0 0,-8 a3,4 0 1,0 0,8 M42,54 Q50,51 58,54",
				"surprised": "M43,37 m0,5 a4,5 0 1,0 0,-10 a4,5 0 1,0 0,10 M57,37 m0,5 a4,5 0 1,0 0,-10 a4,5 0 1,0 0,10 M46,52 h8",
				"talking":   "M43,37 m0,4 a3,4 0 1,0 0,-8 a3,4 0 1,0 0,8 M57,37 m0,4 a3,4 0 1,0 0,-8 a3,4 0 1,0 0,8 M46,52 a4,3 0 1,0 8,0",
			},
		},
		{
			ID:        "bear",
			Name:      "Bruno the Bear",
			Category:  CategoryAnimal,
			BaseColor: "#8B4513",
			SVG: `<svg viewBox="0 0 100 120" xmlns="http://www.w3.org/2000/svg">
  <ellipse cx="50" cy="75" rx="28" ry="32" fill="currentColor"/>
  <circle cx="50" cy="38" r="22" fill="currentColor"/>
  <circle cx="32" cy="22" r="10" fill="currentColor"/>
  <circle cx="68" cy="22" r="10" fill="currentColor"/>
  <ellipse cx="50" cy="48" rx="12" ry="10" fill="#D2691E"/>
  <ellipse cx="50" cy="48" rx="5" ry="4" fill="#000"/>
  <circle cx="42" cy="35" r="3" fill="#000"/>
  <circle cx="58" cy="35" r="3" fill="#000"/>
  <rect x="32" y="100" width="10" height="18" rx="5" fill="currentColor"/>
  <rect x="58" y="100" width="10" height="18" rx="5" fill="currentColor"/>
</svg>`,
			Expressions: map[string]string{
				"neutral":   "M42,35 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M58,35 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6",
				"happy":     "M42,33 m0,4 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M58,33 m0,4 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M40,56 Q50,60 60,56",
				"sad":       "M42,35 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M58,35 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M40,58 Q50,54 60,58",
				"surprised": "M42,35 m0,4 a4,4 0 1,0 0,-8 a4,4 0 1,0 0,8 M58,35 m0,4 a4,4 0 1,0 0,-8 a4,4 0 1,0 0,8 M45,56 h10",
				"talking":   "M42,35 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M58,35 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M44,56 a6,4 0 1,0 12,0",
			},
		},
		{
			ID:        "rabbit",
			Name:      "Rosie the Rabbit",
			Category:  CategoryAnimal,
			BaseColor: "#FFB6C1",
			SVG: `<svg viewBox="0 0 100 120" xmlns="http://www.w3.org/2000/svg">
  <ellipse cx="50" cy="75" rx="23" ry="28" fill="currentColor"/>
  <circle cx="50" cy="40" r="18" fill="currentColor"/>
  <ellipse cx="38" cy="18" rx="6" ry="20" fill="currentColor"/>
  <ellipse cx="62" cy="18" rx="6" ry="20" fill="currentColor"/>
  <ellipse cx="50" cy="46" rx="9" ry="7" fill="#FFF"/>
  <ellipse cx="50" cy="44" rx="3" ry="2" fill="#FF69B4"/>
  <circle cx="43" cy="36" r="3" fill="#000"/>
  <circle cx="57" cy="36" r="3" fill="#000"/>
  <path d="M 50,44 L 50,48 M 45,48 Q 50,50 55,48" stroke="#000" stroke-width="1" fill="none"/>
  <rect x="38" y="98" width="8" height="18" rx="4" fill="currentColor"/>
  <rect x="54" y="98" width="8" height="18" rx="4" fill="currentColor"/>
  <circle cx="73" cy="78" r="6" fill="currentColor"/>
</svg>`,
			Expressions: map[string]string{
				"neutral":   "M43,36 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M57,36 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6",
				"happy":     "M43,34 m0,4 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M57,34 m0,4 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M42,52 Q50,55 58,52",
				"sad":       "M43,36 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M57,36 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M42,54 Q50,51 58,54",
				"surprised": "M43,36 m0,4 a4,4 0 1,0 0,-8 a4,4 0 1,0 0,8 M57,36 m0,4 a4,4 0 1,0 0,-8 a4,4 0 1,0 0,8 M45,52 h10",
				"talking":   "M43,36 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M57,36 m0,3 a3,3 0 1,0 0,-6 a3,3 0 1,0 0,6 M45,52 a5,3 0 1,0 10,0",
			},
		},
	}
}

func builtinScenes() []SceneTemplate {
	return []SceneTemplate{
		{
			ID:       "park",
			Name:     "Sunny Park",
			Category: SceneOutdoor,
			SVG: `<svg viewBox="0 0 800 600" xmlns="http://www.w3.org/2000/svg">
  <rect width="800" height="400" fill="#87CEEB"/>
  <circle cx="700" cy="80" r="50" fill="#FFD700"/>
  <ellipse cx="150" cy="100" rx="60" ry="30" fill="#FFF" opacity="0.8"/>
  <ellipse cx="600" cy="130" rx="70" ry="35" fill="#FFF" opacity="0.8"/>
  <rect y="400" width="800" height="200" fill="#90EE90"/>
  <rect x="100" y="300" width="40" height="100" fill="#8B4513"/>
  <circle cx="120" cy="270" r="60" fill="#228B22"/>
  <rect x="650" y="320" width="35" height="80" fill="#8B4513"/>
  <circle cx="667" cy="295" r="50" fill="#228B22"/>
  <ellipse cx="400" cy="500" rx="150" ry="30" fill="#D2B48C" opacity="0.5"/>
</svg>`,
			Primary:   "#87CEEB",
			Secondary: "#90EE90",
		},
		{
			ID:       "house",
			Name:     "Cozy House",
			Category: SceneIndoor,
			SVG: `<svg viewBox="0 0 800 600" xmlns="http://www.w3.org/2000/svg">
  <rect width="800" height="600" fill="#FFE4B5"/>
  <rect y="450" width="800" height="150" fill="#8B7355"/>
  <rect x="100" y="150" width="150" height="180" fill="#87CEEB" stroke="#654321" stroke-width="8"/>
  <rect x="550" y="150" width="150" height="180" fill="#87CEEB" stroke="#654321" stroke-width="8"/>
  <rect x="350" y="180" width="100" height="120" fill="#FFA07A" stroke="#8B4513" stroke-width="6"/>
</svg>`,
			Primary:   "#FFE4B5",
			Secondary: "#8B7355",
		},
		{
			ID:       "playground",
			Name:     "Fun Playground",
			Category: SceneOutdoor,
			SVG: `<svg viewBox="0 0 800 600" xmlns="http://www.w3.org/2000/svg">
  <rect width="800" height="380" fill="#87CEEB"/>
  <rect y="380" width="800" height="220" fill="#F4A460"/>
  <path d="M 150,250 L 150,200 L 250,200 L 350,380" fill="#FF6347" stroke="#8B0000" stroke-width="4"/>
  <rect x="500" y="200" width="15" height="180" fill="#8B4513"/>
  <rect x="650" y="200" width="15" height="180" fill="#8B4513"/>
  <rect x="500" y="200" width="165" height="15" fill="#8B4513"/>
  <rect x="525" y="300" width="40" height="8" fill="#4169E1" rx="2"/>
  <rect x="590" y="340" width="40" height="8" fill="#4169E1" rx="2"/>
</svg>`,
			Primary:   "#87CEEB",
			Secondary: "#F4A460",
		},
		{
			ID:       "school",
			Name:     "School Classroom",
			Category: SceneIndoor,
			SVG: `<svg viewBox="0 0 800 600" xmlns="http://www.w3.org/2000/svg">
  <rect width="800" height="600" fill="#FFF8DC"/>
  <rect y="450" width="800" height="150" fill="#DEB887"/>
  <rect x="250" y="100" width="300" height="200" fill="#2F4F2F" stroke="#8B4513" stroke-width="10"/>
  <rect x="150" y="380" width="120" height="70" fill="#8B4513"/>
  <rect x="530" y="380" width="120" height="70" fill="#8B4513"/>
  <circle cx="100" cy="150" r="40" fill="#FFF" stroke="#000" stroke-width="3"/>
</svg>`,
			Primary:   "#FFF8DC",
			Secondary: "#DEB887",
		},
		{
			ID:       "beach",
			Name:     "Sunny Beach",
			Category: SceneOutdoor,
			SVG: `<svg viewBox="0 0 800 600" xmlns="http://www.w3.org/2000/svg">
  <rect width="800" height="300" fill="#87CEEB"/>
  <rect y="300" width="800" height="150" fill="#4682B4"/>
  <rect y="450" width="800" height="150" fill="#F4A460"/>
  <circle cx="100" cy="80" r="60" fill="#FFD700"/>
  <rect x="650" y="380" width="20" height="120" fill="#8B4513"/>
  <path d="M 660,360 Q 620,340 580,360" fill="#228B22"/>
  <path d="M 660,360 Q 700,340 740,360" fill="#228B22"/>
  <line x1="200" y1="450" x2="200" y2="380" stroke="#8B4513" stroke-width="4"/>
  <path d="M 140,380 Q 200,350 260,380" fill="#FF6347" stroke="#8B0000" stroke-width="2"/>
</svg>`,
			Primary:   "#87CEEB",
			Secondary: "#F4A460",
		},
		{
			ID:       "garden",
			Name:     "Flower Garden",
			Category: SceneOutdoor,
			SVG: `<svg viewBox="0 0 800 600" xmlns="http://www.w3.org/2000/svg">
  <rect width="800" height="350" fill="#B0E0E6"/>
  <rect y="350" width="800" height="250" fill="#7CFC00"/>
  <circle cx="150" cy="420" r="15" fill="#FF69B4"/>
  <rect x="148" y="435" width="4" height="40" fill="#228B22"/>
  <circle cx="300" cy="400" r="15" fill="#FFD700"/>
  <rect x="298" y="415" width="4" height="45" fill="#228B22"/>
  <circle cx="450" cy="430" r="15" fill="#9370DB"/>
  <rect x="448" y="445" width="4" height="35" fill="#228B22"/>
  <rect x="50" y="320" width="130" height="8" fill="#8B4513"/>
  <rect x="50" y="350" width="130" height="8" fill="#8B4513"/>
  <ellipse cx="600" cy="250" rx="15" ry="20" fill="#FF1493" opacity="0.7"/>
</svg>`,
			Primary:   "#B0E0E6",
			Secondary: "#7CFC00",
		},
	}
}

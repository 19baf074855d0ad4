package analytics

import "hash/fnv"

// languageColors maps language names to their display colors.
var languageColors = map[string]string{
	"JavaScript":  "#f1e05a",
	"TypeScript":  "#3178c6",
	"Python":      "#3572A5",
	"Java":        "#b07219",
	"C":           "#555555",
	"C++":         "#f34b7d",
	"C#":          "#178600",
	"Ruby":        "#701516",
	"PHP":         "#4F5D95",
	"Go":          "#00ADD8",
	"Rust":        "#dea584",
	"Swift":       "#F05138",
	"Kotlin":      "#A97BFF",
	"HTML":        "#e34c26",
	"CSS":         "#563d7c",
	"Shell":       "#89e051",
	"Vue":         "#41b883",
	"React":       "#61dafb",
	"Dart":        "#00B4AB",
	"Scala":       "#c22d40",
	"R":           "#198CE7",
	"Lua":         "#000080",
	"Perl":        "#0298c3",
	"Haskell":     "#5e5086",
	"Elixir":      "#6e4a7e",
	"Clojure":     "#db5855",
	"Objective-C": "#438eff",
}

// fallbackPalette colors languages missing from the table.
var fallbackPalette = [...]string{"#0366d6", "#28a745", "#ffd33d", "#f66a0a", "#6f42c1", "#d73a49"}

// LanguageColor returns the display color for a language. Unknown
// languages get a palette color chosen by hashing the name, so the same
// language is always drawn the same way.
func LanguageColor(name string) string {
	if c, ok := languageColors[name]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	return fallbackPalette[h.Sum32()%uint32(len(fallbackPalette))]
}

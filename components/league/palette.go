package league

// ownerPalette colors owner lines and badges with muted Tableau-style hues.
var ownerPalette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// moviePalette colors per-movie lines, vivid and clearly distinct from the
// owner palette so the two chart modes never look alike.
var moviePalette = []string{
	"#ff595e", "#ff924c", "#ffca3a", "#8ac926", "#1982c4",
	"#6a4c93", "#ff70a6", "#70d6ff", "#06d6a0", "#ffd166",
	"#ef476f", "#118ab2", "#ffd60a", "#9d4edd", "#f72585",
	"#b5179e", "#7209b7", "#3a0ca3", "#4361ee", "#4cc9f0",
}

// BuildColorMap assigns each owner a stable palette color by position.
// Callers sort the owner list first so the assignment is reproducible
// across renders.
func BuildColorMap(owners []string) map[string]string {
	colors := make(map[string]string, len(owners))
	for i, owner := range owners {
		colors[owner] = ownerPalette[i%len(ownerPalette)]
	}
	return colors
}

// MoviePalette returns n colors drawn cyclically from the movie palette,
// independent of any owner assignment.
func MoviePalette(n int) []string {
	if n <= 0 {
		return nil
	}
	colors := make([]string, n)
	for i := range colors {
		colors[i] = moviePalette[i%len(moviePalette)]
	}
	return colors
}

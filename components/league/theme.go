package league

import "github.com/go-echarts/go-echarts/v2/types"

// Theme is the viewer's light/dark preference. The page script mirrors it
// into browser-local storage; the server keeps it per viewer so chart
// rendering matches the page.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is dark, matching the league site's default.
const DefaultTheme = ThemeDark

// Normalize maps unknown values back to the default.
func (t Theme) Normalize() Theme {
	switch t {
	case ThemeLight, ThemeDark:
		return t
	default:
		return DefaultTheme
	}
}

// ChartTheme resolves the ECharts theme name for a viewer theme.
func (t Theme) ChartTheme() string {
	if t.Normalize() == ThemeLight {
		return types.ThemeWesteros
	}
	return types.ThemeChalk
}

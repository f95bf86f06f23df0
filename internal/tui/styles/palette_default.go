package styles

// DefaultTheme is the baseline palette. Warning and Error drive the
// orange and red countdown stages.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background: "#000000",
		Panel:      "#121821",
		Text:       "#E6EDF3",
		TextMuted:  "#8B9AAE",
		Border:     "#223043",
		Accent:     "#5B8DEF",
		Focus:      "#7AA2F7",
		Success:    "#3FB950",
		Warning:    "#F59E0B",
		Error:      "#EF4444",
		Info:       "#58A6FF",
	},
}

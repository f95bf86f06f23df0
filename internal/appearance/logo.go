package appearance

// Logo is the logo variant shown next to the timer.
type Logo int

const (
	LogoDefault Logo = iota
	LogoDark
)

// LogoFor picks the logo that contrasts with the swatch background.
func LogoFor(s Swatch) Logo {
	if s.Dark() {
		return LogoDark
	}
	return LogoDefault
}

// Asset returns the logo asset name.
func (l Logo) Asset() string {
	if l == LogoDark {
		return "logo-dark.png"
	}
	return "logo.png"
}

// Art returns the terminal rendering of the logo.
func (l Logo) Art() string {
	if l == LogoDark {
		return logoDarkArt
	}
	return logoArt
}

const logoArt = `█▀ ▀█▀ ▄▀█ █▀▀ █▀▀
▄█  █  █▀█ █▄█ ██▄`

// Outline variant for dark backgrounds.
const logoDarkArt = `╔═╗╔╦╗╔═╗╔═╗╔═╗
╚═╗ ║ ╠═╣║ ╦║╣
╚═╝ ╩ ╩ ╩╚═╝╚═╝`

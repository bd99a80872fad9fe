package preferences

type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLight, ModeDark, ModeSystem:
		return Mode(s), true
	default:
		return "", false
	}
}

// Appearance is what the device itself reports, never "system".
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

func ParseAppearance(s string) (Appearance, bool) {
	switch Appearance(s) {
	case AppearanceLight, AppearanceDark:
		return Appearance(s), true
	default:
		return "", false
	}
}

type Theme struct {
	Mode        Mode       `json:"mode"`
	SystemTheme Appearance `json:"systemTheme"`
	IsDark      bool       `json:"isDark"`
}

func defaultTheme() Theme {
	return newTheme(ModeSystem, AppearanceLight)
}

func newTheme(mode Mode, systemTheme Appearance) Theme {
	return Theme{
		Mode:        mode,
		SystemTheme: systemTheme,
		IsDark:      mode == ModeDark || (mode == ModeSystem && systemTheme == AppearanceDark),
	}
}

package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/cdiazbas/norwegian-quiz/internal/ui/theme"
)

const bannerArt = `
 ███╗   ██╗ ██████╗ ██████╗ ███████╗██╗  ██╗    ██████╗ ██████╗
 ████╗  ██║██╔═══██╗██╔══██╗██╔════╝██║ ██╔╝    ██╔══██╗╚════██╗
 ██╔██╗ ██║██║   ██║██████╔╝███████╗█████╔╝     ██████╔╝ █████╔╝
 ██║╚██╗██║██║   ██║██╔══██╗╚════██║██╔═██╗     ██╔══██╗██╔═══╝
 ██║ ╚████║╚██████╔╝██║  ██║███████║██║  ██╗    ██████╔╝███████╗
 ╚═╝  ╚═══╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝    ╚═════╝ ╚══════╝`

const bannerCompact = "N O R S K   B 2"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 66

// RenderBanner returns the NORSK B2 banner, falling back to a compact
// line on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/kavitha/econ101/internal/ui/theme"
)

const bannerArt = `
███████╗ ██████╗ ██████╗ ███╗   ██╗ ██╗ ██████╗ ██╗
██╔════╝██╔════╝██╔═══██╗████╗  ██║███║██╔═══██╗███║
█████╗  ██║     ██║   ██║██╔██╗ ██║╚██║██║   ██║╚██║
██╔══╝  ██║     ██║   ██║██║╚██╗██║ ██║██║   ██║ ██║
███████╗╚██████╗╚██████╔╝██║ ╚████║ ██║╚██████╔╝ ██║
╚══════╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝ ╚═╝ ╚═════╝  ╚═╝`

const bannerCompact = "E C O N 1 0 1"

// RenderBanner returns the ECON101 banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 54 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 54 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

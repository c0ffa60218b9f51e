package compositions

import "github.com/ivlev/promoclip/internal/renderer"

var (
	colorBg        = renderer.Hex("#FFFFFF")
	colorPrimary   = renderer.Hex("#003366")
	colorAccent    = renderer.Hex("#D4AF37")
	colorText      = renderer.Hex("#333333")
	colorLightGray = renderer.Hex("#F5F5F5")
	colorSubtleBg  = renderer.Hex("#F8F9FA")
	colorDeepBlue  = renderer.Hex("#001A33")
	colorMuted     = renderer.Hex("#E0E0E0")
	colorWhite     = renderer.Hex("#FFFFFF")
)

const (
	fontSans  = "Montserrat"
	fontSerif = "Playfair Display"
)

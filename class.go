package latex

// Class is a document class name, any value other than predefined constants is used as a custom class.
type Class string

const (
	Article Class = "article"
	Book    Class = "book"
	Letter  Class = "letter"
	Report  Class = "report"
	Slides  Class = "slides"
)

// Standard document class options.
const (
	A4Paper        = "a4paper"
	A5Paper        = "a5paper"
	B5Paper        = "b5paper"
	ExecutivePaper = "executivepaper"
	LegalPaper     = "legalpaper"
	LetterPaper    = "letterpaper"
	Draft          = "draft"
	Final          = "final"
	Fleqn          = "fleqn"
	Landscape      = "landscape"
	Leqno          = "leqno"
	OpenBib        = "openbib"
	WithTitlePage  = "titlepage"
	NoTitlePage    = "notitlepage"
	OneColumn      = "onecolumn"
	TwoColumn      = "twocolumn"
	OneSide        = "oneside"
	TwoSide        = "twoside"
	OpenRight      = "openright"
	OpenAny        = "openany"
)

// ColorModel is an optional color model of \textcolor, empty value omits it.
type ColorModel string

const (
	CMYK    ColorModel = "cmyk"
	Gray    ColorModel = "gray"
	RGB     ColorModel = "rgb"
	RGBFull ColorModel = "RGB"
	Named   ColorModel = "named"
)

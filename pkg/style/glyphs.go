package style

// Box-drawing glyphs from the U+25xx block, grouped the way they combine.
const (
	// light lines
	lightH     = "─"
	lightV     = "│"
	lightDR    = "┌"
	lightDL    = "┐"
	lightUR    = "└"
	lightUL    = "┘"
	lightVR    = "├"
	lightVL    = "┤"
	lightDH    = "┬"
	lightUH    = "┴"
	lightCross = "┼"

	// double lines throughout
	doubleH  = "═"
	doubleV  = "║"
	doubleDR = "╔"
	doubleDL = "╗"
	doubleUR = "╚"
	doubleUL = "╝"
	doubleVR = "╠"
	doubleVL = "╣"

	// double horizontal meeting light vertical
	dhDR    = "╒"
	dhDL    = "╕"
	dhUR    = "╘"
	dhUL    = "╛"
	dhVR    = "╞"
	dhVL    = "╡"
	dhDH    = "╤"
	dhUH    = "╧"
	dhCross = "╪"

	// double vertical meeting light horizontal
	dvVR = "╟"
	dvVL = "╢"

	// heavy lines throughout
	heavyH  = "━"
	heavyV  = "┃"
	heavyDR = "┏"
	heavyDL = "┓"
	heavyUR = "┗"
	heavyUL = "┛"
	heavyVR = "┣"
	heavyVL = "┫"

	// heavy border meeting light interior lines
	hbVR    = "┠"
	hbVL    = "┨"
	hbDH    = "┯"
	hbUH    = "┷"
	hbCross = "┿"

	blank = " "
)

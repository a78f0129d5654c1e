package goquery

// Aliases so the external test package can exercise unexported helpers
// directly.
var (
	Compile      = compile
	Find         = find
	Required     = required
	Text         = text
	FirstText    = firstText
	LastText     = lastText
	ModClass     = modClass
	ParseInt     = parseInt
	OptPercent   = optPercent
	ParseDate    = parseDate
	CombineClock = combineClock
	IDFromHref   = idFromHref
	AbsURL       = absURL
)

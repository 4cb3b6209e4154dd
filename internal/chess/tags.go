package chess

// TagName represents the index of a predefined PGN tag.
type TagName int

const (
	EventTag TagName = iota
	SiteTag
	DateTag
	RoundTag
	WhiteTag
	BlackTag
	ResultTag
	FENTag
	SetupTag
	TerminationTag
)

// TagNameStrings maps tag indices to their string representations.
var TagNameStrings = map[TagName]string{
	EventTag:       "Event",
	SiteTag:        "Site",
	DateTag:        "Date",
	RoundTag:       "Round",
	WhiteTag:       "White",
	BlackTag:       "Black",
	ResultTag:      "Result",
	FENTag:         "FEN",
	SetupTag:       "SetUp",
	TerminationTag: "Termination",
}

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// Result tokens that terminate PGN movetext.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	InProgress = "*"
)

// IsResultToken reports whether s is one of the four PGN result tokens.
func IsResultToken(s string) bool {
	switch s {
	case WhiteWins, BlackWins, Draw, InProgress:
		return true
	}
	return false
}

package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenList            // Open square bracket: "["
	TokenCloseList           // Close square bracket: "]"
	TokenSeparator           // Comma: ","
	TokenInteger             // Run of decimal digits
	TokenEOF                 // End of stream
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'['},
	TokenCloseList: []rune{']'},
	TokenSeparator: []rune{','},
	TokenInteger:   []rune("0123456789"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenSeparator: "separator",
	TokenInteger:   "integer",
	TokenEOF:       "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

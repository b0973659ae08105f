package squares

import (
	"errors"
	"fmt"
	"strings"
)

// HelpMessage describes the remote command syntax.
const HelpMessage = `Press the desired squares with "A1 A2 A3 B3".`

// ErrMalformedCommand is returned when a remote command cannot be parsed.
var ErrMalformedCommand = errors.New("squares: malformed command")

// ParseCommand turns a command such as "a1 b2, c3;d4" into cell indices, in
// the order given. Tokens are a column letter A-D followed by a row digit
// 1-4, case-insensitive, separated by spaces, commas or semicolons. A single
// bad token rejects the whole command; a command with no tokens presses
// nothing.
func ParseCommand(text string) ([]int, error) {
	pieces := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == ' ' || r == ',' || r == ';'
	})

	indices := make([]int, 0, len(pieces))
	for _, piece := range pieces {
		if len(piece) != 2 || piece[0] < 'a' || piece[0] > 'd' || piece[1] < '1' || piece[1] > '4' {
			return nil, fmt.Errorf("%w: bad square %q", ErrMalformedCommand, piece)
		}
		indices = append(indices, Index(int(piece[0]-'a'), int(piece[1]-'1')))
	}
	return indices, nil
}

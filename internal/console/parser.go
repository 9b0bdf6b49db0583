package console

import "fmt"

// InvalidMoveError echoes the token that could not be parsed.
type InvalidMoveError struct {
	Token string
}

func (that *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move: %q", that.Token)
}

// ParseMove converts a move token like "1A" or "3c" into zero-indexed
// (row, col). The grammar is one digit 1-3 followed by one letter A-C,
// case-insensitive, nothing else.
func ParseMove(token string) (int, int, error) {
	if len(token) != 2 {
		return 0, 0, &InvalidMoveError{Token: token}
	}

	var row int
	switch token[0] {
	case '1':
		row = 0
	case '2':
		row = 1
	case '3':
		row = 2
	default:
		return 0, 0, &InvalidMoveError{Token: token}
	}

	var col int
	switch token[1] {
	case 'A', 'a':
		col = 0
	case 'B', 'b':
		col = 1
	case 'C', 'c':
		col = 2
	default:
		return 0, 0, &InvalidMoveError{Token: token}
	}

	return row, col, nil
}

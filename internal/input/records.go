package input

import (
	"errors"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"sonarsweep/internal/dive"
)

// Whitespace is significant: a move is exactly one word, one space, one number.
var recordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Space", Pattern: ` `},
})

type depthRecord struct {
	Value string `parser:"@Int"`
}

type moveRecord struct {
	Direction string `parser:"@Word Space"`
	Distance  string `parser:"@Int"`
}

var (
	depthParser = participle.MustBuild[depthRecord](participle.Lexer(recordLexer))
	moveParser  = participle.MustBuild[moveRecord](participle.Lexer(recordLexer))
)

// lineError is a failure within a single line; the loader adds path and
// line number.
type lineError struct {
	column int
	reason string
}

func (e *lineError) Error() string {
	return e.reason
}

func fromParseError(err error) *lineError {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &lineError{column: perr.Position().Column, reason: perr.Message()}
	}
	return &lineError{column: 1, reason: err.Error()}
}

// atoi is strictly base-10; participle's own integer capture accepts 0x and
// leading-zero octal forms.
func atoi(s string, column int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) {
			err = nerr.Err
		}
		return 0, &lineError{column: column, reason: "invalid integer " + strconv.Quote(s) + ": " + err.Error()}
	}
	return n, nil
}

func parseDepth(line string) (int, error) {
	rec, err := depthParser.ParseString("", line)
	if err != nil {
		return 0, fromParseError(err)
	}
	return atoi(rec.Value, 1)
}

func parseMove(line string) (dive.Move, error) {
	rec, err := moveParser.ParseString("", line)
	if err != nil {
		return dive.Move{}, fromParseError(err)
	}
	dir, err := dive.ParseDirection(rec.Direction)
	if err != nil {
		return dive.Move{}, &lineError{column: 1, reason: err.Error()}
	}
	dist, err := atoi(rec.Distance, len(rec.Direction)+2)
	if err != nil {
		return dive.Move{}, err
	}
	return dive.Move{Direction: dir, Distance: dist}, nil
}

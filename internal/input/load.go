package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"sonarsweep/internal/dive"
)

// LoadDepths reads a sonar sweep: one non-negative integer per line.
func LoadDepths(path string, logger *zap.Logger) ([]int, error) {
	return load(path, logger, ReadDepths)
}

// LoadCourse reads a planned course: one "<direction> <distance>" per line.
func LoadCourse(path string, logger *zap.Logger) ([]dive.Move, error) {
	return load(path, logger, ReadCourse)
}

// ReadDepths parses depth records from r. name is used in error messages.
func ReadDepths(r io.Reader, name string) ([]int, error) {
	return readRecords(r, name, parseDepth)
}

// ReadCourse parses move records from r. name is used in error messages.
func ReadCourse(r io.Reader, name string) ([]dive.Move, error) {
	return readRecords(r, name, parseMove)
}

func load[T any](path string, logger *zap.Logger, read func(io.Reader, string) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnavailable, err)
	}
	defer f.Close()

	records, err := read(f, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded input", zap.String("path", path), zap.Int("records", len(records)))
	return records, nil
}

func readRecords[T any](r io.Reader, name string, parse func(string) (T, error)) ([]T, error) {
	var records []T
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			return nil, &RecordError{Path: name, Line: lineNo, Column: 1, Text: line, Reason: "empty line"}
		}
		rec, err := parse(line)
		if err != nil {
			column, reason := 1, err.Error()
			var lerr *lineError
			if errors.As(err, &lerr) {
				column, reason = lerr.column, lerr.reason
			}
			return nil, &RecordError{Path: name, Line: lineNo, Column: column, Text: line, Reason: reason}
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrFileUnavailable, name, err)
	}
	return records, nil
}

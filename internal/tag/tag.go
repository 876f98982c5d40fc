// Package tag encodes ordered tag lists to the text form stored on entries.
//
// The encoding is a JSON array of strings: self-delimiting, so it round-trips
// empty lists, empty-string tags, and tags containing commas or quotes
// exactly as supplied.
package tag

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrFormat indicates a stored tag blob is not well-formed codec output.
// It surfaces only when the store has been corrupted outside this program.
var ErrFormat = errors.New("malformed tag data")

// Encode serializes an ordered tag list. A nil list encodes as the empty list.
func Encode(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return string(b), nil
}

// Decode parses a blob produced by Encode back into the original tag list.
// Anything other than a JSON array of strings fails with ErrFormat.
func Decode(blob string) ([]string, error) {
	var tags []string
	if err := json.Unmarshal([]byte(blob), &tags); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if tags == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrFormat)
	}
	return tags, nil
}

package taskfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// decodeJSON decodes a JSON array of tasks or a stream of task objects.
func decodeJSON(data []byte) ([]rawTask, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var raws []rawTask
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("parse tasks json: %w", err)
		}
		return raws, nil
	}

	var raws []rawTask
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	for {
		var raw rawTask
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse tasks json: %w", err)
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// UnmarshalJSON accepts an array of references or a comma-separated string.
func (d *dependsList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*d = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("depends: expected string or array: %w", err)
	}
	*d = splitDepends(s)
	return nil
}

// UnmarshalJSON parses a TaskWarrior timestamp.
func (t *twTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := parseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

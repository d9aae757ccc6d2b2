package taskfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlDocument is the top-level shape of a YAML task file.
// A bare list of tasks is accepted as well.
type yamlDocument struct {
	Tasks []rawTask `yaml:"tasks"`
}

// decodeYAML decodes a YAML task list.
func decodeYAML(data []byte) ([]rawTask, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse tasks yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var raws []rawTask
		if err := doc.Decode(&raws); err != nil {
			return nil, fmt.Errorf("parse tasks yaml: %w", err)
		}
		return raws, nil
	}

	var file yamlDocument
	if err := doc.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse tasks yaml: %w", err)
	}
	return file.Tasks, nil
}

// UnmarshalYAML accepts a sequence of references or a comma-separated string.
func (d *dependsList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*d = list
		return nil
	case yaml.ScalarNode:
		*d = splitDepends(value.Value)
		return nil
	default:
		return fmt.Errorf("depends: expected string or list at line %d", value.Line)
	}
}

// UnmarshalYAML parses a timestamp from its scalar text.
func (t *twTime) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := parseTime(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

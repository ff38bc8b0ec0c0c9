package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	clierrors "github.com/royalbit/asimov/internal/errors"
)

// parseYAML decodes content, which must hold exactly one document. The
// returned error is a ValidationError located at the failure, if yaml.v3
// reports one.
func parseYAML(content []byte) (*yaml.Node, *ValidationError) {
	var node yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, emptyDocumentError()
		}
		return nil, syntaxError(err)
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return &node, nil
	case err != nil:
		return nil, syntaxError(err)
	default:
		return nil, &ValidationError{
			Line:    extra.Line,
			Column:  extra.Column,
			Message: "invalid YAML: multiple documents in one file",
			Hint:    "Remove the '---' separator and everything after it",
			Cause:   clierrors.ErrParseFailure,
		}
	}
}

func syntaxError(err error) *ValidationError {
	line, column := extractLineColumn(err.Error())
	return &ValidationError{
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf("invalid YAML: %s", cleanYAMLError(err.Error())),
		Hint:    "Fix the syntax error; protocol files must be valid YAML",
		Cause:   clierrors.ErrParseFailure,
	}
}

// duplicateKey returns the first mapping key under node that repeats an
// earlier key of the same mapping. Aliases are not followed.
func duplicateKey(node *yaml.Node, path string) *ValidationError {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := duplicateKey(child, path); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, item := range node.Content {
			if err := duplicateKey(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		first := make(map[string]int, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			childPath := joinPath(path, key.Value)
			if key.Kind == yaml.ScalarNode && key.ShortTag() != "!!merge" {
				if line, dup := first[key.Value]; dup {
					return &ValidationError{
						Line:    key.Line,
						Column:  key.Column,
						Path:    childPath,
						Message: fmt.Sprintf("invalid YAML: mapping key %q already defined at line %d", key.Value, line),
						Hint:    "Remove or merge the repeated key",
						Cause:   clierrors.ErrParseFailure,
					}
				}
				first[key.Value] = key.Line
			}
			if err := duplicateKey(value, childPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// extractLineColumn pulls the location out of a yaml.v3 error message.
func extractLineColumn(errMsg string) (line, column int) {
	// yaml.v3 errors look like: "yaml: line 5: could not find expected ':'"
	msg := strings.TrimPrefix(errMsg, "yaml: ")
	var l, c int
	if n, _ := fmt.Sscanf(msg, "line %d: column %d:", &l, &c); n == 2 {
		return l, c
	}
	if n, _ := fmt.Sscanf(msg, "line %d:", &l); n == 1 {
		return l, 1
	}
	return 0, 0
}

// cleanYAMLError strips the "yaml: line X:" prefix.
func cleanYAMLError(errMsg string) string {
	if !strings.HasPrefix(errMsg, "yaml:") {
		return errMsg
	}
	msg := strings.TrimSpace(strings.TrimPrefix(errMsg, "yaml:"))
	for strings.HasPrefix(msg, "line ") || strings.HasPrefix(msg, "column ") {
		idx := strings.Index(msg, ": ")
		if idx < 0 {
			break
		}
		msg = msg[idx+2:]
	}
	return msg
}

// rootMapping returns the top-level node of a document.
func rootMapping(doc *yaml.Node) *yaml.Node {
	if doc == nil {
		return nil
	}
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		return resolve(doc.Content[0])
	}
	return resolve(doc)
}

// resolve follows alias nodes to their anchors.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

// nodeType maps a YAML node onto a schema type name. Scalars use their
// resolved tag so that "1.0" is a string and 1.0 is a number.
func nodeType(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "array"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!str", "!!binary", "!!timestamp":
			return "string"
		case "!!int":
			return "integer"
		case "!!float":
			return "number"
		case "!!bool":
			return "boolean"
		case "!!null":
			return "null"
		default:
			return "string"
		}
	default:
		return "unknown"
	}
}

package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/schema"
)

// criticalMessages replace the generic "missing required field" message for
// sections that gate autonomous behavior.
var criticalMessages = map[schema.Kind]map[string]string{
	schema.KindAsimov: {
		"first_law":             "asimov.yaml missing 'first_law' section (do_no_harm).",
		"second_law":            "CRITICAL: asimov.yaml missing 'second_law' section. Human override capability is required.",
		"second_law.human_veto": "CRITICAL: asimov.yaml missing 'second_law.human_veto' section. Human override capability is required.",
	},
}

// Validate checks content against doc and returns every violation found.
// A parse failure yields exactly one error; otherwise checking continues past
// each mismatch so one call surfaces all problems.
func Validate(content []byte, doc *schema.Document) *Result {
	result := newResult("", schema.KindUnknown)
	if doc == nil {
		return result
	}
	result.Kind = doc.Kind

	parsed, perr := parseYAML(content)
	if perr != nil {
		result.AddError(perr)
		return result
	}

	if dup := duplicateKey(parsed, ""); dup != nil {
		result.AddError(dup)
		return result
	}

	root := rootMapping(parsed)
	if root == nil {
		result.AddError(emptyDocumentError())
		return result
	}
	if root.Kind != yaml.MappingNode {
		result.AddError(&ValidationError{
			Line:     root.Line,
			Column:   root.Column,
			Message:  "document root must be a mapping",
			Expected: "object",
			Actual:   nodeType(root),
			Hint:     fmt.Sprintf("%s files are YAML mappings of top-level keys", doc.Kind),
			Cause:    clierrors.ErrSchemaViolation,
		})
		return result
	}

	w := &walker{kind: doc.Kind, result: result}
	w.checkObject(root, doc.Root(), "")
	return result
}

type walker struct {
	kind   schema.Kind
	result *Result
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// checkField validates node against f. Only one error is reported per node
// for type mismatches so that N violations produce N errors.
func (w *walker) checkField(node *yaml.Node, f *schema.Field, path string) {
	node = resolve(node)
	if node == nil {
		return
	}

	actual := nodeType(node)
	if !accepts(f, actual) {
		expected := strings.Join(f.TypeNames(), " or ")
		w.result.AddError(&ValidationError{
			Path:     path,
			Line:     node.Line,
			Column:   node.Column,
			Message:  fmt.Sprintf("wrong type for field '%s'", path),
			Expected: expected,
			Actual:   actual,
			Hint:     fmt.Sprintf("Change '%s' to be a %s", path, expected),
			Cause:    clierrors.ErrSchemaViolation,
		})
		return
	}

	switch actual {
	case "string":
		w.checkString(node, f, path)
	case "integer":
		w.checkInteger(node, f, path)
	case "array":
		w.checkArray(node, f, path)
	case "object":
		w.checkObject(node, f, path)
	}
}

// accepts treats integers as numbers, as JSON Schema does.
func accepts(f *schema.Field, actual string) bool {
	if f.Accepts(schema.FieldType(actual)) {
		return true
	}
	return actual == "integer" && f.Accepts(schema.FieldTypeNumber)
}

func (w *walker) checkString(node *yaml.Node, f *schema.Field, path string) {
	if len(f.Enum) > 0 {
		w.checkEnum(node, f.Enum, path)
		return
	}
	if f.MinLength > 0 && utf8.RuneCountInString(node.Value) < f.MinLength {
		err := schemaError(path, node.Line, node.Column, fmt.Sprintf("field '%s' is too short", path))
		err.Expected = fmt.Sprintf("at least %d character(s)", f.MinLength)
		err.Actual = fmt.Sprintf("%d", utf8.RuneCountInString(node.Value))
		err.Hint = fmt.Sprintf("Give '%s' a value", path)
		w.result.AddError(err)
	}
}

// checkEnum checks if a string value is one of the allowed enum values.
func (w *walker) checkEnum(node *yaml.Node, allowed []string, path string) {
	for _, v := range allowed {
		if node.Value == v {
			return
		}
	}
	err := schemaError(path, node.Line, node.Column, fmt.Sprintf("invalid value for field '%s'", path))
	err.Expected = fmt.Sprintf("one of: %s", strings.Join(allowed, ", "))
	err.Actual = fmt.Sprintf("'%s'", node.Value)
	err.Hint = fmt.Sprintf("Use one of the valid values: %s", strings.Join(allowed, ", "))
	w.result.AddError(err)
}

func (w *walker) checkInteger(node *yaml.Node, f *schema.Field, path string) {
	if f.Minimum == nil && f.Maximum == nil {
		return
	}
	var n int64
	if err := node.Decode(&n); err != nil {
		// Out-of-range literals still resolve as !!int.
		n, _ = strconv.ParseInt(node.Value, 0, 64)
	}
	outOfRange := (f.Minimum != nil && n < int64(*f.Minimum)) || (f.Maximum != nil && n > int64(*f.Maximum))
	if !outOfRange {
		return
	}
	err := schemaError(path, node.Line, node.Column, fmt.Sprintf("field '%s' is out of range", path))
	err.Expected = rangeText(f)
	err.Actual = node.Value
	err.Hint = fmt.Sprintf("Set '%s' to a value %s", path, rangeText(f))
	w.result.AddError(err)
}

func rangeText(f *schema.Field) string {
	switch {
	case f.Minimum != nil && f.Maximum != nil:
		return fmt.Sprintf("between %d and %d", *f.Minimum, *f.Maximum)
	case f.Minimum != nil:
		return fmt.Sprintf(">= %d", *f.Minimum)
	default:
		return fmt.Sprintf("<= %d", *f.Maximum)
	}
}

func (w *walker) checkArray(node *yaml.Node, f *schema.Field, path string) {
	count := len(node.Content)
	if f.MaxItems > 0 && count > f.MaxItems {
		err := schemaError(path, node.Line, node.Column, fmt.Sprintf("field '%s' has too many items", path))
		err.Expected = fmt.Sprintf("at most %d items", f.MaxItems)
		err.Actual = fmt.Sprintf("%d items", count)
		err.Hint = fmt.Sprintf("Move extra entries out of '%s'", path)
		w.result.AddError(err)
	}
	if f.MinItems > 0 && count < f.MinItems {
		err := schemaError(path, node.Line, node.Column, fmt.Sprintf("field '%s' has too few items", path))
		err.Expected = fmt.Sprintf("at least %d items", f.MinItems)
		err.Actual = fmt.Sprintf("%d items", count)
		err.Hint = fmt.Sprintf("Add entries to '%s'", path)
		w.result.AddError(err)
	}
	if f.Items == nil {
		return
	}
	for i, item := range node.Content {
		w.checkField(item, f.Items, fmt.Sprintf("%s[%d]", path, i))
	}
}

func (w *walker) checkObject(node *yaml.Node, f *schema.Field, path string) {
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		seen[key.Value] = true
		childPath := joinPath(path, key.Value)

		if child := f.Child(key.Value); child != nil {
			w.checkField(value, child, childPath)
			continue
		}
		switch {
		case f.Closed:
			err := schemaError(childPath, key.Line, key.Column, fmt.Sprintf("unknown field '%s'", childPath))
			err.Hint = fmt.Sprintf("Remove '%s'; this section does not allow extra keys", key.Value)
			w.result.AddError(err)
		case f.Values != nil:
			w.checkField(value, f.Values, childPath)
		}
	}

	for i := range f.Children {
		child := &f.Children[i]
		if !child.Required || seen[child.Name] {
			continue
		}
		childPath := joinPath(path, child.Name)
		message := fmt.Sprintf("missing required field: %s", childPath)
		if critical, ok := criticalMessages[w.kind][childPath]; ok {
			message = critical
		}
		err := schemaError(childPath, node.Line, node.Column, message)
		err.Hint = fmt.Sprintf("Add the '%s' field to your YAML file", childPath)
		w.result.AddError(err)
	}
}

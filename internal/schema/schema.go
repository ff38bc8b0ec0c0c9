package schema

// FieldType represents the expected type of a schema field.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeInt    FieldType = "integer"
	FieldTypeNumber FieldType = "number"
	FieldTypeBool   FieldType = "boolean"
	FieldTypeArray  FieldType = "array"
	FieldTypeObject FieldType = "object"
	FieldTypeAny    FieldType = ""
)

// Field defines a field in a protocol file schema.
type Field struct {
	Name        string      // Key in YAML
	Type        FieldType   // Expected type (FieldTypeAny accepts anything)
	AltTypes    []FieldType // Additional accepted types, e.g. integer or string
	Required    bool        // Whether the key must be present
	Enum        []string    // Valid values for enum fields (optional)
	MinLength   int         // Minimum string length (0 = unchecked)
	Minimum     *int        // Inclusive lower bound for integers
	Maximum     *int        // Inclusive upper bound for integers
	MinItems    int         // Minimum array length (0 = unchecked)
	MaxItems    int         // Maximum array length (0 = unbounded)
	Items       *Field      // Shape of array elements
	Children    []Field     // Known keys of an object
	Closed      bool        // Reject keys not listed in Children
	Values      *Field      // Shape of values under keys not listed in Children
	Description string      // Human-readable description
}

// Accepts reports whether t is one of the field's accepted types.
func (f *Field) Accepts(t FieldType) bool {
	if f.Type == FieldTypeAny || f.Type == t {
		return true
	}
	for _, alt := range f.AltTypes {
		if alt == t {
			return true
		}
	}
	return false
}

// TypeNames returns the accepted type names for messages.
func (f *Field) TypeNames() []string {
	names := []string{string(f.Type)}
	for _, alt := range f.AltTypes {
		names = append(names, string(alt))
	}
	return names
}

// Child returns the child field with the given name, or nil.
func (f *Field) Child(name string) *Field {
	for i := range f.Children {
		if f.Children[i].Name == name {
			return &f.Children[i]
		}
	}
	return nil
}

// Document is the structural contract for one kind of protocol file.
// The document root is always an object.
type Document struct {
	Kind        Kind
	Title       string
	Description string
	Fields      []Field
	Closed      bool
}

// Root returns the document as an object field so validators can walk it uniformly.
func (d *Document) Root() *Field {
	return &Field{
		Name:        "",
		Type:        FieldTypeObject,
		Children:    d.Fields,
		Closed:      d.Closed,
		Description: d.Description,
	}
}

// RequiredFields returns the names of required top-level keys.
func (d *Document) RequiredFields() []string {
	var names []string
	for _, f := range d.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

func bound(n int) *int {
	return &n
}

// Shorthand constructors keep the schema tables readable.

func str(name, desc string) Field {
	return Field{Name: name, Type: FieldTypeString, Description: desc}
}

func reqStr(name, desc string) Field {
	return Field{Name: name, Type: FieldTypeString, Required: true, MinLength: 1, Description: desc}
}

func boolean(name, desc string) Field {
	return Field{Name: name, Type: FieldTypeBool, Description: desc}
}

func strList(name, desc string) Field {
	return Field{Name: name, Type: FieldTypeArray, Items: &Field{Type: FieldTypeString}, Description: desc}
}

func object(name, desc string, children ...Field) Field {
	return Field{Name: name, Type: FieldTypeObject, Children: children, Description: desc}
}

func openObject(name, desc string) Field {
	return Field{Name: name, Type: FieldTypeObject, Description: desc}
}

func enum(name, desc string, values ...string) Field {
	return Field{Name: name, Type: FieldTypeString, Enum: values, Description: desc}
}

func toggle(name, desc string) Field {
	return object(name, desc,
		boolean("enabled", "Whether the rule is active"),
		str("description", "What the rule enforces"),
	)
}

func modificationRules() Field {
	return object("modification_rules", "Rules for changing this protocol",
		str("immutable_without", "Who must approve a change"),
		strList("on_modification", "Steps required when modifying"),
		str("warning", "Warning shown to forks"),
	)
}

// Package templates holds the canonical content of every protocol file at
// this version of the tool, and renders the parameterized ones.
package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/go-playground/validator/v10"

	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/schema"
)

//go:embed protocols/*.yaml protocols/*.yaml.tmpl
var protocolFS embed.FS

// ErrInvalidParameter is returned when a template parameter is present but unusable.
var ErrInvalidParameter = errors.New("invalid template parameter")

// Params are the inputs of the parameterized templates (project.yaml, roadmap.yaml).
type Params struct {
	ProjectName string      `validate:"required,projectname"`
	ProjectType ProjectType `validate:"omitempty,projecttype"`
	Tagline     string      `validate:"omitempty,projectname"`
}

// Store renders canonical protocol content. It is immutable after construction
// and safe for concurrent use.
type Store struct {
	fixed     map[schema.Kind]string
	templates map[schema.Kind]*template.Template
	validate  *validator.Validate
}

var defaultStore = mustNewStore()

// Default returns the process-wide store built from the embedded templates.
func Default() *Store {
	return defaultStore
}

func mustNewStore() *Store {
	s, err := NewStore()
	if err != nil {
		panic(fmt.Sprintf("loading embedded protocol templates: %v", err))
	}
	return s
}

// NewStore loads the embedded templates.
func NewStore() (*Store, error) {
	s := &Store{
		fixed:     make(map[schema.Kind]string),
		templates: make(map[schema.Kind]*template.Template),
		validate:  newParamsValidator(),
	}

	for _, kind := range schema.Kinds() {
		fixedName := "protocols/" + kind.Filename()
		if data, err := protocolFS.ReadFile(fixedName); err == nil {
			s.fixed[kind] = string(data)
			continue
		}

		tmplName := fixedName + ".tmpl"
		data, err := protocolFS.ReadFile(tmplName)
		if err != nil {
			return nil, fmt.Errorf("no template for %s: %w", kind, err)
		}
		tmpl, err := template.New(kind.Filename()).Option("missingkey=error").Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", tmplName, err)
		}
		s.templates[kind] = tmpl
	}
	return s, nil
}

// Parameterized reports whether rendering kind depends on Params.
func (s *Store) Parameterized(kind schema.Kind) bool {
	_, ok := s.templates[kind]
	return ok
}

// Render returns the canonical content for kind. Fixed kinds ignore p.
// Parameterized kinds fail with ErrTemplateParameterMissing when a required
// parameter is absent; they never fall back to a default.
func (s *Store) Render(kind schema.Kind, p Params) (string, error) {
	if text, ok := s.fixed[kind]; ok {
		return text, nil
	}
	tmpl, ok := s.templates[kind]
	if !ok {
		return "", fmt.Errorf("no canonical template for kind %q", kind)
	}

	if err := s.checkParams(kind, p); err != nil {
		return "", fmt.Errorf("rendering %s: %w", kind.Filename(), err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData(kind, p)); err != nil {
		return "", fmt.Errorf("rendering %s: %w: %w", kind.Filename(), clierrors.ErrTemplateParameterMissing, err)
	}

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

func (s *Store) checkParams(kind schema.Kind, p Params) error {
	if err := s.validate.Struct(p); err != nil {
		return paramsError(err)
	}
	if kind == schema.KindProject {
		if err := s.validate.Var(p.ProjectType, "required,projecttype"); err != nil {
			return paramsError(fieldError{err: err, field: "ProjectType"})
		}
	}
	return nil
}

// fieldError names the field for validator.Var failures, which carry no field name.
type fieldError struct {
	err   error
	field string
}

func (e fieldError) Error() string { return e.err.Error() }
func (e fieldError) Unwrap() error { return e.err }

func paramsError(err error) error {
	field := ""
	var fe fieldError
	if errors.As(err, &fe) {
		field = fe.field
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	first := verrs[0]
	if field == "" {
		field = first.Field()
	}
	if first.Tag() == "required" {
		return fmt.Errorf("%w: %s", clierrors.ErrTemplateParameterMissing, field)
	}
	return fmt.Errorf("%w: %s: %q fails %s", ErrInvalidParameter, field, first.Value(), first.Tag())
}

func templateData(kind schema.Kind, p Params) map[string]any {
	data := map[string]any{"ProjectName": p.ProjectName}
	if kind != schema.KindProject {
		return data
	}

	data["ProjectType"] = p.ProjectType.String()
	tagline := p.Tagline
	if tagline == "" {
		tagline = fmt.Sprintf("A %s project", p.ProjectType)
	}
	data["Tagline"] = tagline
	data["Quality"] = qualityCommands[p.ProjectType]
	data["SourceFiles"] = sourceFiles[p.ProjectType]
	return data
}

func newParamsValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if strings.TrimSpace(value) == "" {
			return false
		}
		for _, r := range value {
			if unicode.IsControl(r) {
				return false
			}
		}
		return true
	})
	_ = v.RegisterValidation("projecttype", func(fl validator.FieldLevel) bool {
		return ProjectType(fl.Field().String()).Valid()
	})
	return v
}

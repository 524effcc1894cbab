package measurement

import (
	"strings"

	"github.com/atelier/backend/internal/domain/shared"
)

// Template represents a reusable named set of measurement fields, e.g.
// "Men's Suit" with chest/waist/sleeve
type Template struct {
	shared.BaseEntity
	Name             string   `json:"name"`
	Fields           []string `json:"fields"`
	DiagramImagePath string   `json:"diagram_image_path,omitempty"`
}

// NewTemplate creates a new measurement template
func NewTemplate(name string, fields []string, diagramImagePath string) (*Template, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	return &Template{
		BaseEntity:       shared.NewBaseEntity(),
		Name:             name,
		Fields:           fields,
		DiagramImagePath: diagramImagePath,
	}, nil
}

// SetName updates the template name
func (t *Template) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	t.Name = name
	t.Touch()
	return nil
}

// SetFields replaces the field list
func (t *Template) SetFields(fields []string) error {
	if err := validateFields(fields); err != nil {
		return err
	}
	t.Fields = fields
	t.Touch()
	return nil
}

// SetDiagramImagePath updates the diagram path
func (t *Template) SetDiagramImagePath(path string) {
	t.DiagramImagePath = path
	t.Touch()
}

func validateFields(fields []string) error {
	if len(fields) == 0 {
		return shared.NewDomainError("INVALID_FIELDS", "Fields must be a non-empty list")
	}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return shared.NewDomainError("INVALID_FIELDS", "Field names cannot be empty")
		}
	}
	return nil
}

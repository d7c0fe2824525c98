package domain

// Component is anything that can appear in a screen layout: catalog
// elements and the synthetic Form container.
type Component interface {
	ComponentType() string
}

// Element is one typed component instance within a screen.
// The interface is sealed: only types embedding Base satisfy it, and the
// concrete kinds are the value structs declared in elements.go.
type Element interface {
	Component
	ElementID() string
	ElementKind() Kind
	isElement()
}

// Named is implemented by elements that carry a data-binding key.
type Named interface {
	Element
	FieldName() string
}

// Base holds the identity shared by every element.
type Base struct {
	ID   string `json:"id" yaml:"id" mapstructure:"id"`
	Kind Kind   `json:"type" yaml:"type" mapstructure:"type"`
}

func (b Base) ElementID() string     { return b.ID }
func (b Base) ElementKind() Kind     { return b.Kind }
func (b Base) ComponentType() string { return string(b.Kind) }
func (b Base) isElement()            {}

// Option is a selectable entry of a choice component's data source.
type Option struct {
	ID          string `json:"id" yaml:"id" mapstructure:"id"`
	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description,omitempty"`
	Enabled     *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty" mapstructure:"enabled,omitempty"`
}

// FooterAction selects what the footer button does.
type FooterAction string

const (
	ActionNavigate FooterAction = "navigate"
	ActionComplete FooterAction = "complete"
)

// UnsetScreen is the placeholder target of a navigate footer created
// before the author picked a destination.
const UnsetScreen = "SCREEN_NAME"

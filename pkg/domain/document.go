package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FlowDocument is the compiled, platform-facing form document.
type FlowDocument struct {
	Version        string        `json:"version" yaml:"version"`
	DataAPIVersion string        `json:"data_api_version" yaml:"data_api_version"`
	RoutingModel   *RoutingModel `json:"routing_model,omitempty" yaml:"routing_model,omitempty"`
	Screens        []FlowScreen  `json:"screens" yaml:"screens"`
	Data           *DataModel    `json:"data,omitempty" yaml:"data,omitempty"`
}

// RoutingModel maps a screen id to the screens reachable from it, in screen order.
type RoutingModel = orderedmap.OrderedMap[string, []string]

// DataModel maps a field name to its inferred schema, in discovery order.
type DataModel = orderedmap.OrderedMap[string, DataSchemaEntry]

// NewRoutingModel returns an empty routing model.
func NewRoutingModel() *RoutingModel {
	return orderedmap.New[string, []string]()
}

// NewDataModel returns an empty data model.
func NewDataModel() *DataModel {
	return orderedmap.New[string, DataSchemaEntry]()
}

// FlowScreen is a compiled screen.
type FlowScreen struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Terminal bool   `json:"terminal,omitempty" yaml:"terminal,omitempty"`
	Success  bool   `json:"success,omitempty" yaml:"success,omitempty"`
	Layout   Layout `json:"layout" yaml:"layout"`
}

// Layout is the single-column root container of a compiled screen.
type Layout struct {
	Type     string      `json:"type" yaml:"type"`
	Children []Component `json:"children" yaml:"children"`
}

// Form groups a screen's form fields. There is at most one per screen.
type Form struct {
	Type     string    `json:"type" yaml:"type"`
	Name     string    `json:"name" yaml:"name"`
	Children []Element `json:"children" yaml:"children"`
}

func (f Form) ComponentType() string { return f.Type }

// SchemaType is the inferred type of a data model entry.
type SchemaType string

const (
	SchemaString  SchemaType = "string"
	SchemaArray   SchemaType = "array"
	SchemaBoolean SchemaType = "boolean"
)

// DataSchemaEntry describes one field of the data model.
type DataSchemaEntry struct {
	Type        SchemaType `json:"type" yaml:"type"`
	Example     any        `json:"example" yaml:"example"`
	Description string     `json:"description" yaml:"description"`
}

package dto

// FlowSource is the authored form of a flow as read from JSON, JSONC or YAML.
// Elements stay raw until the parser dispatches them on their "type".
type FlowSource struct {
	Screens []ScreenSource `json:"screens" yaml:"screens" mapstructure:"screens"`
}

// ScreenSource is one authored screen.
type ScreenSource struct {
	ID       string           `json:"id" yaml:"id" mapstructure:"id"`
	Title    string           `json:"title" yaml:"title" mapstructure:"title"`
	Terminal bool             `json:"terminal" yaml:"terminal" mapstructure:"terminal"`
	Success  bool             `json:"success" yaml:"success" mapstructure:"success"`
	Elements []map[string]any `json:"elements" yaml:"elements" mapstructure:"elements"`
}

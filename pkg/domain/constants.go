package domain

// Fixed document constants. They never depend on the compiled input.
const (
	FlowVersion    = "7.2"
	DataAPIVersion = "3.0"
)

// Container identifiers used by layout assembly.
const (
	LayoutSingleColumn = "SingleColumnLayout"
	FormType           = "Form"
	// FormName is the fixed name of the synthetic Form wrapping a screen's form fields.
	FormName = "flow_path"
)

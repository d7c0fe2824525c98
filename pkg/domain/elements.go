package domain

// TextHeading is a large title.
type TextHeading struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Text    string `json:"text" yaml:"text" mapstructure:"text"`
	Visible *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// TextSubheading is a section title.
type TextSubheading struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Text    string `json:"text" yaml:"text" mapstructure:"text"`
	Visible *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// TextBody is a paragraph of body copy.
type TextBody struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Text          string `json:"text" yaml:"text" mapstructure:"text"`
	FontWeight    string `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty" mapstructure:"fontWeight,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty" mapstructure:"strikethrough,omitempty"`
	Markdown      bool   `json:"markdown,omitempty" yaml:"markdown,omitempty" mapstructure:"markdown,omitempty"`
	Visible       *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// TextCaption is small supporting copy.
type TextCaption struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Text          string `json:"text" yaml:"text" mapstructure:"text"`
	FontWeight    string `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty" mapstructure:"fontWeight,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty" mapstructure:"strikethrough,omitempty"`
	Markdown      bool   `json:"markdown,omitempty" yaml:"markdown,omitempty" mapstructure:"markdown,omitempty"`
	Visible       *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// RichText is markdown content rendered as a block.
type RichText struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Text    string `json:"text" yaml:"text" mapstructure:"text"`
	Visible *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// TextInput is a single-line free text field.
type TextInput struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Name       string `json:"name" yaml:"name" mapstructure:"name"`
	Label      string `json:"label" yaml:"label" mapstructure:"label"`
	InputType  string `json:"inputType,omitempty" yaml:"inputType,omitempty" mapstructure:"inputType,omitempty"`
	Required   bool   `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required,omitempty"`
	HelperText string `json:"helperText,omitempty" yaml:"helperText,omitempty" mapstructure:"helperText,omitempty"`
	MinChars   int    `json:"minChars,omitempty" yaml:"minChars,omitempty" mapstructure:"minChars,omitempty"`
	MaxChars   int    `json:"maxChars,omitempty" yaml:"maxChars,omitempty" mapstructure:"maxChars,omitempty"`
	InitValue  string `json:"initValue,omitempty" yaml:"initValue,omitempty" mapstructure:"initValue,omitempty"`
	Visible    *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// EmailInput is a single-line field that accepts an e-mail address.
type EmailInput struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Name       string `json:"name" yaml:"name" mapstructure:"name"`
	Label      string `json:"label" yaml:"label" mapstructure:"label"`
	Required   bool   `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required,omitempty"`
	HelperText string `json:"helperText,omitempty" yaml:"helperText,omitempty" mapstructure:"helperText,omitempty"`
	InitValue  string `json:"initValue,omitempty" yaml:"initValue,omitempty" mapstructure:"initValue,omitempty"`
	Visible    *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// PhoneInput is a single-line field that accepts a phone number.
type PhoneInput struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Name       string `json:"name" yaml:"name" mapstructure:"name"`
	Label      string `json:"label" yaml:"label" mapstructure:"label"`
	Required   bool   `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required,omitempty"`
	HelperText string `json:"helperText,omitempty" yaml:"helperText,omitempty" mapstructure:"helperText,omitempty"`
	InitValue  string `json:"initValue,omitempty" yaml:"initValue,omitempty" mapstructure:"initValue,omitempty"`
	Visible    *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// TextArea is a multi-line free text field.
type TextArea struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Name       string `json:"name" yaml:"name" mapstructure:"name"`
	Label      string `json:"label" yaml:"label" mapstructure:"label"`
	Required   bool   `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required,omitempty"`
	HelperText string `json:"helperText,omitempty" yaml:"helperText,omitempty" mapstructure:"helperText,omitempty"`
	MaxLength  int    `json:"maxLength,omitempty" yaml:"maxLength,omitempty" mapstructure:"maxLength,omitempty"`
	InitValue  string `json:"initValue,omitempty" yaml:"initValue,omitempty" mapstructure:"initValue,omitempty"`
	Enabled    *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty" mapstructure:"enabled,omitempty"`
	Visible    *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// CheckboxGroup is a multi-select list of options.
type CheckboxGroup struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Name             string   `json:"name" yaml:"name" mapstructure:"name"`
	Label            string   `json:"label" yaml:"label" mapstructure:"label"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description,omitempty"`
	Required         bool     `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required,omitempty"`
	DataSource       []Option `json:"dataSource" yaml:"dataSource" mapstructure:"dataSource"`
	MinSelectedItems int      `json:"minSelectedItems,omitempty" yaml:"minSelectedItems,omitempty" mapstructure:"minSelectedItems,omitempty"`
	MaxSelectedItems int      `json:"maxSelectedItems,omitempty" yaml:"maxSelectedItems,omitempty" mapstructure:"maxSelectedItems,omitempty"`
	Visible          *bool    `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// RadioButtonsGroup is a single-select list of options.
type RadioButtonsGroup struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Name        string   `json:"name" yaml:"name" mapstructure:"name"`
	Label       string   `json:"label" yaml:"label" mapstructure:"label"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description,omitempty"`
	Required    bool     `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required,omitempty"`
	DataSource  []Option `json:"dataSource" yaml:"dataSource" mapstructure:"dataSource"`
	InitValue   string   `json:"initValue,omitempty" yaml:"initValue,omitempty" mapstructure:"initValue,omitempty"`
	Visible     *bool    `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// Dropdown is a single-select list rendered as a picker.
type Dropdown struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Name       string   `json:"name" yaml:"name" mapstructure:"name"`
	Label      string   `json:"label" yaml:"label" mapstructure:"label"`
	Required   bool     `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required,omitempty"`
	DataSource []Option `json:"dataSource" yaml:"dataSource" mapstructure:"dataSource"`
	InitValue  string   `json:"initValue,omitempty" yaml:"initValue,omitempty" mapstructure:"initValue,omitempty"`
	Visible    *bool    `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// OptIn is a consent checkbox.
type OptIn struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Name     string `json:"name" yaml:"name" mapstructure:"name"`
	Label    string `json:"label" yaml:"label" mapstructure:"label"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required,omitempty"`
	Visible  *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// DatePicker is a calendar date field.
type DatePicker struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Name             string   `json:"name" yaml:"name" mapstructure:"name"`
	Label            string   `json:"label" yaml:"label" mapstructure:"label"`
	HelperText       string   `json:"helperText,omitempty" yaml:"helperText,omitempty" mapstructure:"helperText,omitempty"`
	Required         bool     `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required,omitempty"`
	MinDate          string   `json:"minDate,omitempty" yaml:"minDate,omitempty" mapstructure:"minDate,omitempty"`
	MaxDate          string   `json:"maxDate,omitempty" yaml:"maxDate,omitempty" mapstructure:"maxDate,omitempty"`
	UnavailableDates []string `json:"unavailableDates,omitempty" yaml:"unavailableDates,omitempty" mapstructure:"unavailableDates,omitempty"`
	Visible          *bool    `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// PhotoPicker is a camera or gallery upload field.
type PhotoPicker struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Name              string `json:"name" yaml:"name" mapstructure:"name"`
	Label             string `json:"label" yaml:"label" mapstructure:"label"`
	Description       string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description,omitempty"`
	PhotoSource       string `json:"photoSource,omitempty" yaml:"photoSource,omitempty" mapstructure:"photoSource,omitempty"`
	MinUploadedPhotos int    `json:"minUploadedPhotos,omitempty" yaml:"minUploadedPhotos,omitempty" mapstructure:"minUploadedPhotos,omitempty"`
	MaxUploadedPhotos int    `json:"maxUploadedPhotos,omitempty" yaml:"maxUploadedPhotos,omitempty" mapstructure:"maxUploadedPhotos,omitempty"`
	MaxFileSizeKb     int    `json:"maxFileSizeKb,omitempty" yaml:"maxFileSizeKb,omitempty" mapstructure:"maxFileSizeKb,omitempty"`
	Visible           *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// Image is a static picture.
type Image struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Src         string  `json:"src" yaml:"src" mapstructure:"src"`
	Width       int     `json:"width,omitempty" yaml:"width,omitempty" mapstructure:"width,omitempty"`
	Height      int     `json:"height,omitempty" yaml:"height,omitempty" mapstructure:"height,omitempty"`
	ScaleType   string  `json:"scaleType,omitempty" yaml:"scaleType,omitempty" mapstructure:"scaleType,omitempty"`
	AspectRatio float64 `json:"aspectRatio,omitempty" yaml:"aspectRatio,omitempty" mapstructure:"aspectRatio,omitempty"`
	AltText     string  `json:"altText,omitempty" yaml:"altText,omitempty" mapstructure:"altText,omitempty"`
	Visible     *bool   `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// EmbeddedLink is an inline hyperlink.
type EmbeddedLink struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Text    string `json:"text" yaml:"text" mapstructure:"text"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url,omitempty"`
	Visible *bool  `json:"visible,omitempty" yaml:"visible,omitempty" mapstructure:"visible,omitempty"`
}

// If is a conditional block; Condition may reference ${data.<field>} expressions.
type If struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Condition string `json:"condition" yaml:"condition" mapstructure:"condition"`
}

// Footer is the screen's call to action and the only source of navigation.
type Footer struct {
	Base `yaml:",inline" mapstructure:",squash"`

	Label         string       `json:"label" yaml:"label" mapstructure:"label"`
	Action        FooterAction `json:"action" yaml:"action" mapstructure:"action"`
	NextScreen    string       `json:"nextScreen,omitempty" yaml:"nextScreen,omitempty" mapstructure:"nextScreen,omitempty"`
	PayloadKeys   []string     `json:"payloadKeys,omitempty" yaml:"payloadKeys,omitempty" mapstructure:"payloadKeys,omitempty"`
	LeftCaption   string       `json:"leftCaption,omitempty" yaml:"leftCaption,omitempty" mapstructure:"leftCaption,omitempty"`
	CenterCaption string       `json:"centerCaption,omitempty" yaml:"centerCaption,omitempty" mapstructure:"centerCaption,omitempty"`
	RightCaption  string       `json:"rightCaption,omitempty" yaml:"rightCaption,omitempty" mapstructure:"rightCaption,omitempty"`
	Enabled       *bool        `json:"enabled,omitempty" yaml:"enabled,omitempty" mapstructure:"enabled,omitempty"`
}

// FieldName returns the data-binding key.
func (e TextInput) FieldName() string         { return e.Name }
func (e EmailInput) FieldName() string        { return e.Name }
func (e PhoneInput) FieldName() string        { return e.Name }
func (e TextArea) FieldName() string          { return e.Name }
func (e CheckboxGroup) FieldName() string     { return e.Name }
func (e RadioButtonsGroup) FieldName() string { return e.Name }
func (e Dropdown) FieldName() string          { return e.Name }
func (e OptIn) FieldName() string             { return e.Name }
func (e DatePicker) FieldName() string        { return e.Name }
func (e PhotoPicker) FieldName() string       { return e.Name }

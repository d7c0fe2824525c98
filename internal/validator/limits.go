package validator

import "github.com/lime816/whatsappsuitetest-sub002/pkg/domain"

// Limit is the maximum length, in characters, of one element field.
type Limit struct {
	Field string `json:"field"`
	Max   int    `json:"max"`
}

type fieldLimit struct {
	Limit
	get func(domain.Element) string
}

func field[T domain.Element](name string, max int, get func(T) string) fieldLimit {
	return fieldLimit{
		Limit: Limit{Field: name, Max: max},
		get: func(el domain.Element) string {
			v, ok := el.(T)
			if !ok {
				return ""
			}
			return get(v)
		},
	}
}

// Screen-level count limits. Exceeding them only warns.
const (
	MaxImagesPerScreen        = 3
	MaxEmbeddedLinksPerScreen = 2
)

// contentLimits maps a kind to its length-limited fields.
// Kinds without text content (If) have no entry.
var contentLimits = map[domain.Kind][]fieldLimit{
	domain.KindTextHeading: {
		field("text", 80, func(e domain.TextHeading) string { return e.Text }),
	},
	domain.KindTextSubheading: {
		field("text", 80, func(e domain.TextSubheading) string { return e.Text }),
	},
	domain.KindTextBody: {
		field("text", 4096, func(e domain.TextBody) string { return e.Text }),
	},
	domain.KindTextCaption: {
		field("text", 400, func(e domain.TextCaption) string { return e.Text }),
	},
	domain.KindRichText: {
		field("text", 4096, func(e domain.RichText) string { return e.Text }),
	},
	domain.KindTextInput: {
		field("label", 40, func(e domain.TextInput) string { return e.Label }),
		field("helperText", 80, func(e domain.TextInput) string { return e.HelperText }),
	},
	domain.KindEmailInput: {
		field("label", 40, func(e domain.EmailInput) string { return e.Label }),
		field("helperText", 80, func(e domain.EmailInput) string { return e.HelperText }),
	},
	domain.KindPhoneInput: {
		field("label", 40, func(e domain.PhoneInput) string { return e.Label }),
		field("helperText", 80, func(e domain.PhoneInput) string { return e.HelperText }),
	},
	domain.KindTextArea: {
		field("label", 20, func(e domain.TextArea) string { return e.Label }),
		field("helperText", 80, func(e domain.TextArea) string { return e.HelperText }),
	},
	domain.KindCheckboxGroup: {
		field("label", 30, func(e domain.CheckboxGroup) string { return e.Label }),
		field("description", 300, func(e domain.CheckboxGroup) string { return e.Description }),
	},
	domain.KindRadioButtonsGroup: {
		field("label", 30, func(e domain.RadioButtonsGroup) string { return e.Label }),
		field("description", 300, func(e domain.RadioButtonsGroup) string { return e.Description }),
	},
	domain.KindDropdown: {
		field("label", 20, func(e domain.Dropdown) string { return e.Label }),
	},
	domain.KindOptIn: {
		field("label", 120, func(e domain.OptIn) string { return e.Label }),
	},
	domain.KindDatePicker: {
		field("label", 40, func(e domain.DatePicker) string { return e.Label }),
		field("helperText", 80, func(e domain.DatePicker) string { return e.HelperText }),
	},
	domain.KindPhotoPicker: {
		field("label", 30, func(e domain.PhotoPicker) string { return e.Label }),
		field("description", 300, func(e domain.PhotoPicker) string { return e.Description }),
	},
	domain.KindImage: {
		field("altText", 100, func(e domain.Image) string { return e.AltText }),
	},
	domain.KindEmbeddedLink: {
		field("text", 25, func(e domain.EmbeddedLink) string { return e.Text }),
	},
	domain.KindFooter: {
		field("label", 35, func(e domain.Footer) string { return e.Label }),
		field("leftCaption", 15, func(e domain.Footer) string { return e.LeftCaption }),
		field("centerCaption", 15, func(e domain.Footer) string { return e.CenterCaption }),
		field("rightCaption", 15, func(e domain.Footer) string { return e.RightCaption }),
	},
}

// Limits returns the content limits of a kind in table order.
func Limits(kind domain.Kind) []Limit {
	table := contentLimits[kind]
	out := make([]Limit, len(table))
	for i, fl := range table {
		out[i] = fl.Limit
	}
	return out
}

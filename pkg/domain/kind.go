package domain

// Kind identifies a component variant of the element catalog.
type Kind string

// Catalog kinds. The set is closed: Kinds lists every member and the
// factory, validator and compiler reject anything else.
const (
	KindTextHeading       Kind = "TextHeading"
	KindTextSubheading    Kind = "TextSubheading"
	KindTextBody          Kind = "TextBody"
	KindTextCaption       Kind = "TextCaption"
	KindRichText          Kind = "RichText"
	KindTextInput         Kind = "TextInput"
	KindEmailInput        Kind = "EmailInput"
	KindPhoneInput        Kind = "PhoneInput"
	KindTextArea          Kind = "TextArea"
	KindCheckboxGroup     Kind = "CheckboxGroup"
	KindRadioButtonsGroup Kind = "RadioButtonsGroup"
	KindDropdown          Kind = "Dropdown"
	KindOptIn             Kind = "OptIn"
	KindDatePicker        Kind = "DatePicker"
	KindPhotoPicker       Kind = "PhotoPicker"
	KindImage             Kind = "Image"
	KindEmbeddedLink      Kind = "EmbeddedLink"
	KindIf                Kind = "If"
	KindFooter            Kind = "Footer"
)

var catalog = []Kind{
	KindTextHeading,
	KindTextSubheading,
	KindTextBody,
	KindTextCaption,
	KindRichText,
	KindTextInput,
	KindEmailInput,
	KindPhoneInput,
	KindTextArea,
	KindCheckboxGroup,
	KindRadioButtonsGroup,
	KindDropdown,
	KindOptIn,
	KindDatePicker,
	KindPhotoPicker,
	KindImage,
	KindEmbeddedLink,
	KindIf,
	KindFooter,
}

// formFields is the set of kinds that must render inside the screen's
// single Form container.
var formFields = map[Kind]struct{}{
	KindTextInput:         {},
	KindEmailInput:        {},
	KindPhoneInput:        {},
	KindTextArea:          {},
	KindCheckboxGroup:     {},
	KindRadioButtonsGroup: {},
	KindDropdown:          {},
	KindOptIn:             {},
	KindDatePicker:        {},
	KindPhotoPicker:       {},
	KindFooter:            {},
}

// Kinds returns the catalog in palette order.
func Kinds() []Kind {
	out := make([]Kind, len(catalog))
	copy(out, catalog)
	return out
}

// Valid reports whether k belongs to the catalog.
func (k Kind) Valid() bool {
	for _, c := range catalog {
		if c == k {
			return true
		}
	}
	return false
}

// IsFormField reports whether elements of this kind are grouped into the
// synthetic Form container by the compiler.
func (k Kind) IsFormField() bool {
	_, ok := formFields[k]
	return ok
}

func (k Kind) String() string { return string(k) }

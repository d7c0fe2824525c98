// Package catalog creates catalog elements with their kind-specific defaults.
package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// Factory builds default elements. The id source is injected so tests can
// use a deterministic sequence.
type Factory struct {
	newID IDGenerator
}

// New creates a factory. A nil generator falls back to UUIDs.
func New(gen IDGenerator) *Factory {
	if gen == nil {
		gen = UUIDs()
	}
	return &Factory{newID: gen}
}

// Option tweaks a default element.
type Option func(*settings)

type settings struct {
	nextScreen string
}

// WithNextScreen sets the navigation target of a default Footer.
// Other kinds ignore it.
func WithNextScreen(id string) Option {
	return func(s *settings) {
		s.nextScreen = id
	}
}

// CreateDefault returns a fresh element of the given kind with a new id.
func (f *Factory) CreateDefault(kind domain.Kind, opts ...Option) (domain.Element, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("create %q: %w", kind, domain.ErrUnsupportedKind)
	}
	cfg := settings{nextScreen: domain.UnsetScreen}
	for _, opt := range opts {
		opt(&cfg)
	}
	return defaults(domain.Base{ID: f.newID(), Kind: kind}, cfg), nil
}

// MustCreate is CreateDefault for kinds known at compile time.
func (f *Factory) MustCreate(kind domain.Kind, opts ...Option) domain.Element {
	el, err := f.CreateDefault(kind, opts...)
	if err != nil {
		panic(err)
	}
	return el
}

// DefaultScreen returns a screen holding the heading, body and footer triple
// the editor starts every new screen with.
func (f *Factory) DefaultScreen(id, title, next string) domain.Screen {
	opts := []Option{}
	if next != "" {
		opts = append(opts, WithNextScreen(next))
	}
	return domain.Screen{
		ID:    id,
		Title: title,
		Elements: []domain.Element{
			f.MustCreate(domain.KindTextHeading),
			f.MustCreate(domain.KindTextBody),
			f.MustCreate(domain.KindFooter, opts...),
		},
	}
}

func defaults(base domain.Base, cfg settings) domain.Element {
	name := FieldName(base.Kind)

	switch base.Kind {
	case domain.KindTextHeading:
		return domain.TextHeading{Base: base, Text: "Heading"}
	case domain.KindTextSubheading:
		return domain.TextSubheading{Base: base, Text: "Subheading"}
	case domain.KindTextBody:
		return domain.TextBody{Base: base, Text: "Body text"}
	case domain.KindTextCaption:
		return domain.TextCaption{Base: base, Text: "Caption"}
	case domain.KindRichText:
		return domain.RichText{Base: base, Text: "Rich text"}
	case domain.KindTextInput:
		return domain.TextInput{Base: base, Name: name, Label: "Text input", InputType: "text"}
	case domain.KindEmailInput:
		return domain.EmailInput{Base: base, Name: name, Label: "Email"}
	case domain.KindPhoneInput:
		return domain.PhoneInput{Base: base, Name: name, Label: "Phone"}
	case domain.KindTextArea:
		return domain.TextArea{Base: base, Name: name, Label: "Text area"}
	case domain.KindCheckboxGroup:
		return domain.CheckboxGroup{Base: base, Name: name, Label: "Choose options", DataSource: sampleOptions()}
	case domain.KindRadioButtonsGroup:
		return domain.RadioButtonsGroup{Base: base, Name: name, Label: "Choose one", DataSource: sampleOptions()}
	case domain.KindDropdown:
		return domain.Dropdown{Base: base, Name: name, Label: "Select", DataSource: sampleOptions()}
	case domain.KindOptIn:
		return domain.OptIn{Base: base, Name: name, Label: "I agree to the terms"}
	case domain.KindDatePicker:
		return domain.DatePicker{Base: base, Name: name, Label: "Date"}
	case domain.KindPhotoPicker:
		return domain.PhotoPicker{Base: base, Name: name, Label: "Upload photos", PhotoSource: "camera_gallery", MaxUploadedPhotos: 1}
	case domain.KindImage:
		return domain.Image{Base: base, Src: "", Width: 200, Height: 200, ScaleType: "contain", AltText: "Image"}
	case domain.KindEmbeddedLink:
		return domain.EmbeddedLink{Base: base, Text: "Learn more", URL: "https://example.com"}
	case domain.KindIf:
		return domain.If{Base: base, Condition: "${data.condition}"}
	case domain.KindFooter:
		return domain.Footer{Base: base, Label: "Continue", Action: domain.ActionNavigate, NextScreen: cfg.nextScreen, PayloadKeys: []string{}}
	}
	// Unreachable: CreateDefault rejects kinds outside the catalog.
	panic(fmt.Sprintf("catalog: no defaults for %q", base.Kind))
}

func sampleOptions() []domain.Option {
	return []domain.Option{
		{ID: "option1", Title: "Option 1"},
		{ID: "option2", Title: "Option 2"},
	}
}

// FieldName returns the default data-binding name for a kind,
// e.g. RadioButtonsGroup becomes radio_buttons_group.
func FieldName(kind domain.Kind) string {
	var b strings.Builder
	for i, r := range string(kind) {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

package compiler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/lime816/whatsappsuitetest-sub002/internal/dto"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/wire"
)

// Format is the syntax of a flow source.
type Format string

const (
	FormatAuto  Format = ""
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
)

// ErrEmptySource is returned for sources without any screen.
var ErrEmptySource = errors.New("flow source has no screens")

// Parser converts flow sources into screens. A source is either an object
// with a "screens" list or the list itself. Element attributes may use the
// internal camelCase names or the hyphenated wire names.
type Parser struct {
	format Format
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithFormat forces a source syntax instead of sniffing it.
func WithFormat(f Format) ParserOption {
	return func(p *Parser) {
		p.format = f
	}
}

// NewParser creates a new parser instance.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes data into screens.
func (p *Parser) Parse(data []byte) ([]domain.Screen, error) {
	raw, err := p.decodeRaw(data)
	if err != nil {
		return nil, err
	}
	if list, ok := raw.([]any); ok {
		raw = map[string]any{"screens": list}
	}

	var src dto.FlowSource
	if err := mapstructure.Decode(raw, &src); err != nil {
		return nil, fmt.Errorf("failed to decode flow source: %w", err)
	}
	if len(src.Screens) == 0 {
		return nil, ErrEmptySource
	}

	screens := make([]domain.Screen, 0, len(src.Screens))
	for i, s := range src.Screens {
		if s.ID == "" {
			return nil, fmt.Errorf("screen at index %d missing id", i)
		}
		// An explicit empty list is a blank screen; no list at all is
		// malformed input, such as a compiled document fed back in.
		if s.Elements == nil {
			return nil, &domain.InvariantError{ScreenID: s.ID, Reason: "missing elements list"}
		}
		screen := domain.Screen{
			ID:       s.ID,
			Title:    s.Title,
			Terminal: s.Terminal,
			Success:  s.Success,
			Elements: make([]domain.Element, 0, len(s.Elements)),
		}
		for j, rawEl := range s.Elements {
			el, err := DecodeElement(rawEl)
			if err != nil {
				return nil, fmt.Errorf("screen %q element %d: %w", s.ID, j, err)
			}
			screen.Elements = append(screen.Elements, el)
		}
		screens = append(screens, screen)
	}
	return screens, nil
}

// ParseElement decodes a single element source, the same way elements
// nested in a flow are decoded.
func (p *Parser) ParseElement(data []byte) (domain.Element, error) {
	raw, err := p.decodeRaw(data)
	if err != nil {
		return nil, err
	}
	attrs, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("element source must be an object, got %T", raw)
	}
	return DecodeElement(attrs)
}

func (p *Parser) decodeRaw(data []byte) (any, error) {
	format := p.format
	if format == FormatAuto {
		format = sniff(data)
	}

	var raw any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse json flow: %w", err)
		}
	case FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse jsonc flow: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml flow: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown flow format %q", format)
	}
	return raw, nil
}

// sniff treats anything starting like a JSON value or a comment as JSONC,
// which is a superset of JSON, and everything else as YAML.
func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FormatYAML
	}
	switch trimmed[0] {
	case '{', '[':
		return FormatJSONC
	case '/':
		return FormatJSONC
	}
	return FormatYAML
}

type elementDecoder func(map[string]any) (domain.Element, error)

var decoders = map[domain.Kind]elementDecoder{
	domain.KindTextHeading:       decodeAs[domain.TextHeading],
	domain.KindTextSubheading:    decodeAs[domain.TextSubheading],
	domain.KindTextBody:          decodeAs[domain.TextBody],
	domain.KindTextCaption:       decodeAs[domain.TextCaption],
	domain.KindRichText:          decodeAs[domain.RichText],
	domain.KindTextInput:         decodeAs[domain.TextInput],
	domain.KindEmailInput:        decodeAs[domain.EmailInput],
	domain.KindPhoneInput:        decodeAs[domain.PhoneInput],
	domain.KindTextArea:          decodeAs[domain.TextArea],
	domain.KindCheckboxGroup:     decodeAs[domain.CheckboxGroup],
	domain.KindRadioButtonsGroup: decodeAs[domain.RadioButtonsGroup],
	domain.KindDropdown:          decodeAs[domain.Dropdown],
	domain.KindOptIn:             decodeAs[domain.OptIn],
	domain.KindDatePicker:        decodeAs[domain.DatePicker],
	domain.KindPhotoPicker:       decodeAs[domain.PhotoPicker],
	domain.KindImage:             decodeAs[domain.Image],
	domain.KindEmbeddedLink:      decodeAs[domain.EmbeddedLink],
	domain.KindIf:                decodeAs[domain.If],
	domain.KindFooter:            decodeAs[domain.Footer],
}

// DecodeElement builds a typed element from an attribute map, dispatching on
// its "type". Wire names are accepted and normalized.
func DecodeElement(raw map[string]any) (domain.Element, error) {
	attrs := make(map[string]any, len(raw))
	for k, v := range raw {
		attrs[wire.Internal(k)] = v
	}

	kind, _ := attrs["type"].(string)
	if kind == "" {
		return nil, fmt.Errorf("element missing type")
	}
	decode, ok := decoders[domain.Kind(kind)]
	if !ok {
		return nil, fmt.Errorf("element type %q: %w", kind, domain.ErrUnsupportedKind)
	}
	if id, _ := attrs["id"].(string); id == "" {
		return nil, fmt.Errorf("%s element missing id", kind)
	}
	return decode(attrs)
}

func decodeAs[T domain.Element](attrs map[string]any) (domain.Element, error) {
	var el T
	if err := mapstructure.Decode(attrs, &el); err != nil {
		return nil, fmt.Errorf("failed to decode %T: %w", el, err)
	}
	return el, nil
}

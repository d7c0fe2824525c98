package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

type document struct {
	Version        string               `json:"version"`
	DataAPIVersion string               `json:"data_api_version"`
	RoutingModel   *domain.RoutingModel `json:"routing_model,omitempty"`
	Screens        []screen             `json:"screens"`
	Data           *domain.DataModel    `json:"data,omitempty"`
}

type screen struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Terminal bool   `json:"terminal,omitempty"`
	Success  bool   `json:"success,omitempty"`
	Layout   layout `json:"layout"`
}

type layout struct {
	Type     string           `json:"type"`
	Children []map[string]any `json:"children"`
}

// Marshal encodes a compiled document in the platform wire format.
// Routing and data entries keep their order; element objects have
// hyphenated attribute names.
func Marshal(doc *domain.FlowDocument) ([]byte, error) {
	w, err := toWire(doc)
	if err != nil {
		return nil, err
	}
	return encode(w, "", "")
}

// MarshalIndent is Marshal with indentation, for humans.
func MarshalIndent(doc *domain.FlowDocument, prefix, indent string) ([]byte, error) {
	w, err := toWire(doc)
	if err != nil {
		return nil, err
	}
	return encode(w, prefix, indent)
}

// encode writes v without HTML escaping, so operators in conditions stay
// literal.
func encode(v any, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if prefix != "" || indent != "" {
		enc.SetIndent(prefix, indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func toWire(doc *domain.FlowDocument) (*document, error) {
	if doc == nil {
		return nil, fmt.Errorf("marshal: nil document")
	}
	out := &document{
		Version:        doc.Version,
		DataAPIVersion: doc.DataAPIVersion,
		RoutingModel:   doc.RoutingModel,
		Screens:        make([]screen, 0, len(doc.Screens)),
		Data:           doc.Data,
	}
	for _, s := range doc.Screens {
		children, err := components(s.Layout.Children)
		if err != nil {
			return nil, fmt.Errorf("screen %q: %w", s.ID, err)
		}
		out.Screens = append(out.Screens, screen{
			ID:       s.ID,
			Title:    s.Title,
			Terminal: s.Terminal,
			Success:  s.Success,
			Layout:   layout{Type: s.Layout.Type, Children: children},
		})
	}
	return out, nil
}

func components(in []domain.Component) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(in))
	for _, c := range in {
		switch v := c.(type) {
		case domain.Form:
			fields := make([]map[string]any, 0, len(v.Children))
			for _, el := range v.Children {
				m, err := ElementMap(el)
				if err != nil {
					return nil, err
				}
				fields = append(fields, m)
			}
			out = append(out, map[string]any{"type": v.Type, "name": v.Name, "children": fields})
		case domain.Element:
			m, err := ElementMap(v)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		default:
			return nil, fmt.Errorf("unknown component %T", c)
		}
	}
	return out, nil
}

// ElementMap flattens an element into a wire-named attribute map.
// Unset optional attributes are left out.
func ElementMap(el domain.Element) (map[string]any, error) {
	if el == nil {
		return nil, fmt.Errorf("nil element")
	}
	flat := map[string]any{}
	if err := mapstructure.Decode(el, &flat); err != nil {
		return nil, fmt.Errorf("flatten %s %q: %w", el.ElementKind(), el.ElementID(), err)
	}
	out := make(map[string]any, len(flat))
	for k, v := range flat {
		out[External(k)] = v
	}
	return out, nil
}

package compiler

import "github.com/lime816/whatsappsuitetest-sub002/pkg/domain"

// assemble partitions a screen into its single-column layout. Non-form
// elements stay direct children in their relative order; form fields go, in
// their relative order, into one Form appended last.
func assemble(s domain.Screen) domain.FlowScreen {
	children := make([]domain.Component, 0, len(s.Elements)+1)
	var fields []domain.Element

	for _, el := range s.Elements {
		el = domain.CloneElement(el)
		if el.ElementKind().IsFormField() {
			fields = append(fields, el)
			continue
		}
		children = append(children, el)
	}
	if len(fields) > 0 {
		children = append(children, domain.Form{
			Type:     domain.FormType,
			Name:     domain.FormName,
			Children: fields,
		})
	}

	out := domain.FlowScreen{
		ID:    s.ID,
		Title: s.Title,
		Layout: domain.Layout{
			Type:     domain.LayoutSingleColumn,
			Children: children,
		},
	}
	// Editor hints are ignored: only a complete footer makes a screen terminal.
	if f, ok := s.Footer(); ok && f.Action == domain.ActionComplete {
		out.Terminal = true
		out.Success = true
	}
	return out
}

package domain

// Screen is one page of a flow as authored in the editor.
// Terminal and Success are editor hints only; the compiler derives the
// emitted flags from the screen's Footer.
type Screen struct {
	ID       string    `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Terminal bool      `json:"terminal,omitempty" yaml:"terminal,omitempty"`
	Success  bool      `json:"success,omitempty" yaml:"success,omitempty"`
	Elements []Element `json:"elements" yaml:"elements"`
}

// Footers returns every Footer on the screen in element order.
// A well-formed screen has at most one.
func (s Screen) Footers() []Footer {
	var out []Footer
	for _, el := range s.Elements {
		if f, ok := el.(Footer); ok {
			out = append(out, f)
		}
	}
	return out
}

// Footer returns the screen's first Footer, if any.
func (s Screen) Footer() (Footer, bool) {
	for _, el := range s.Elements {
		if f, ok := el.(Footer); ok {
			return f, true
		}
	}
	return Footer{}, false
}

// Clone returns a deep copy of the screen, see CloneElement.
func (s Screen) Clone() Screen {
	out := s
	if s.Elements != nil {
		out.Elements = make([]Element, len(s.Elements))
		for i, el := range s.Elements {
			out.Elements[i] = CloneElement(el)
		}
	}
	return out
}

// CloneScreens copies a screen list, see Screen.Clone.
func CloneScreens(screens []Screen) []Screen {
	if screens == nil {
		return nil
	}
	out := make([]Screen, len(screens))
	for i, s := range screens {
		out[i] = s.Clone()
	}
	return out
}

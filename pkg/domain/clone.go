package domain

// CloneElement returns a deep copy of el: slices and pointer flags are
// reallocated so the copy shares no memory with the original.
func CloneElement(el Element) Element {
	switch e := el.(type) {
	case TextHeading:
		e.Visible = cloneBool(e.Visible)
		return e
	case TextSubheading:
		e.Visible = cloneBool(e.Visible)
		return e
	case TextBody:
		e.Visible = cloneBool(e.Visible)
		return e
	case TextCaption:
		e.Visible = cloneBool(e.Visible)
		return e
	case RichText:
		e.Visible = cloneBool(e.Visible)
		return e
	case TextInput:
		e.Visible = cloneBool(e.Visible)
		return e
	case EmailInput:
		e.Visible = cloneBool(e.Visible)
		return e
	case PhoneInput:
		e.Visible = cloneBool(e.Visible)
		return e
	case TextArea:
		e.Enabled = cloneBool(e.Enabled)
		e.Visible = cloneBool(e.Visible)
		return e
	case CheckboxGroup:
		e.DataSource = cloneOptions(e.DataSource)
		e.Visible = cloneBool(e.Visible)
		return e
	case RadioButtonsGroup:
		e.DataSource = cloneOptions(e.DataSource)
		e.Visible = cloneBool(e.Visible)
		return e
	case Dropdown:
		e.DataSource = cloneOptions(e.DataSource)
		e.Visible = cloneBool(e.Visible)
		return e
	case OptIn:
		e.Visible = cloneBool(e.Visible)
		return e
	case DatePicker:
		e.UnavailableDates = cloneStrings(e.UnavailableDates)
		e.Visible = cloneBool(e.Visible)
		return e
	case PhotoPicker:
		e.Visible = cloneBool(e.Visible)
		return e
	case Image:
		e.Visible = cloneBool(e.Visible)
		return e
	case EmbeddedLink:
		e.Visible = cloneBool(e.Visible)
		return e
	case If:
		return e
	case Footer:
		e.PayloadKeys = cloneStrings(e.PayloadKeys)
		e.Enabled = cloneBool(e.Enabled)
		return e
	}
	return el
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

func cloneOptions(opts []Option) []Option {
	if opts == nil {
		return nil
	}
	out := make([]Option, len(opts))
	for i, o := range opts {
		o.Enabled = cloneBool(o.Enabled)
		out[i] = o
	}
	return out
}

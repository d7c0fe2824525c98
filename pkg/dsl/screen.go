package dsl

import (
	"fmt"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/catalog"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// ScreenBuilder provides a fluent API for filling a screen. Each call
// appends one element created from the catalog defaults.
type ScreenBuilder struct {
	screen  domain.Screen
	builder *Builder
}

func (s *ScreenBuilder) create(kind domain.Kind, opts ...catalog.Option) domain.Element {
	return s.builder.factory.MustCreate(kind, opts...)
}

// Add appends an arbitrary element.
func (s *ScreenBuilder) Add(el domain.Element) *ScreenBuilder {
	s.screen.Elements = append(s.screen.Elements, el)
	return s
}

// Heading appends a TextHeading.
func (s *ScreenBuilder) Heading(text string) *ScreenBuilder {
	el := s.create(domain.KindTextHeading).(domain.TextHeading)
	el.Text = text
	return s.Add(el)
}

// Body appends a TextBody.
func (s *ScreenBuilder) Body(text string) *ScreenBuilder {
	el := s.create(domain.KindTextBody).(domain.TextBody)
	el.Text = text
	return s.Add(el)
}

// Caption appends a TextCaption.
func (s *ScreenBuilder) Caption(text string) *ScreenBuilder {
	el := s.create(domain.KindTextCaption).(domain.TextCaption)
	el.Text = text
	return s.Add(el)
}

// Input appends a TextInput bound to name.
func (s *ScreenBuilder) Input(name, label string) *ScreenBuilder {
	el := s.create(domain.KindTextInput).(domain.TextInput)
	el.Name = name
	el.Label = label
	return s.Add(el)
}

// Checkboxes appends a CheckboxGroup bound to name with one option per
// title. Option ids are option1, option2 and so on.
func (s *ScreenBuilder) Checkboxes(name, label string, options ...string) *ScreenBuilder {
	el := s.create(domain.KindCheckboxGroup).(domain.CheckboxGroup)
	el.Name = name
	el.Label = label
	if len(options) > 0 {
		el.DataSource = make([]domain.Option, 0, len(options))
		for i, title := range options {
			el.DataSource = append(el.DataSource, domain.Option{ID: fmt.Sprintf("option%d", i+1), Title: title})
		}
	}
	return s.Add(el)
}

// If appends a conditional block.
func (s *ScreenBuilder) If(condition string) *ScreenBuilder {
	el := s.create(domain.KindIf).(domain.If)
	el.Condition = condition
	return s.Add(el)
}

// Image appends an Image.
func (s *ScreenBuilder) Image(src, alt string) *ScreenBuilder {
	el := s.create(domain.KindImage).(domain.Image)
	el.Src = src
	el.AltText = alt
	return s.Add(el)
}

// Link appends an EmbeddedLink.
func (s *ScreenBuilder) Link(text, url string) *ScreenBuilder {
	el := s.create(domain.KindEmbeddedLink).(domain.EmbeddedLink)
	el.Text = text
	el.URL = url
	return s.Add(el)
}

// Next appends a navigate footer pointing at target.
func (s *ScreenBuilder) Next(target string) *ScreenBuilder {
	return s.Add(s.create(domain.KindFooter, catalog.WithNextScreen(target)))
}

// Complete appends a footer that ends the flow.
func (s *ScreenBuilder) Complete(label string) *ScreenBuilder {
	el := s.create(domain.KindFooter).(domain.Footer)
	el.Label = label
	el.Action = domain.ActionComplete
	el.NextScreen = ""
	return s.Add(el)
}

// Terminal sets the screen's terminal hint.
func (s *ScreenBuilder) Terminal() *ScreenBuilder {
	s.screen.Terminal = true
	return s
}

// Screen continues with another screen of the same flow.
func (s *ScreenBuilder) Screen(id, title string) *ScreenBuilder {
	return s.builder.Screen(id, title)
}

// Build returns a copy of the underlying domain.Screen.
func (s *ScreenBuilder) Build() domain.Screen {
	return s.screen.Clone()
}

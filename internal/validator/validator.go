// Package validator checks elements, screens and whole flows against the
// platform's content and structural limits. Results are data: nothing here
// returns a Go error or mutates its input.
package validator

import (
	"fmt"
	"unicode/utf8"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// Issue is one validation finding.
// Content errors carry Limit and Current; count warnings embed both in Message.
type Issue struct {
	Code      domain.Code `json:"code"`
	ScreenID  string      `json:"screenId,omitempty"`
	ElementID string      `json:"elementId,omitempty"`
	Kind      domain.Kind `json:"kind,omitempty"`
	Field     string      `json:"field,omitempty"`
	Message   string      `json:"message"`
	Limit     int         `json:"limit,omitempty"`
	Current   int         `json:"current,omitempty"`
}

// Result is the outcome of a validation call. Warnings never affect IsValid.
type Result struct {
	IsValid  bool    `json:"isValid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

func newResult() Result {
	return Result{Errors: []Issue{}, Warnings: []Issue{}}
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

func (r Result) seal() Result {
	r.IsValid = len(r.Errors) == 0
	return r
}

// ValidateElement checks the element's fields against the content limit table.
// Empty fields never fail; a nil element is trivially valid.
func ValidateElement(el domain.Element) Result {
	res := newResult()
	if el == nil {
		return res.seal()
	}

	for _, fl := range contentLimits[el.ElementKind()] {
		value := fl.get(el)
		if value == "" {
			continue
		}
		n := utf8.RuneCountInString(value)
		if n <= fl.Max {
			continue
		}
		res.Errors = append(res.Errors, Issue{
			Code:      domain.CodeContentLimitExceeded,
			ElementID: el.ElementID(),
			Kind:      el.ElementKind(),
			Field:     fl.Field,
			Message:   fmt.Sprintf("%s %s must be at most %d characters, got %d", el.ElementKind(), fl.Field, fl.Max, n),
			Limit:     fl.Max,
			Current:   n,
		})
	}
	return res.seal()
}

// ValidateScreen emits count warnings for the screen and then folds
// ValidateElement over its elements.
func ValidateScreen(screen domain.Screen) Result {
	res := newResult()

	counts := map[domain.Kind]int{}
	for _, el := range screen.Elements {
		if el != nil {
			counts[el.ElementKind()]++
		}
	}
	res.Warnings = append(res.Warnings, countWarnings(screen.ID, counts)...)

	for _, el := range screen.Elements {
		sub := ValidateElement(el)
		for i := range sub.Errors {
			sub.Errors[i].ScreenID = screen.ID
		}
		res.merge(sub)
	}
	return res.seal()
}

var countLimits = []struct {
	kind  domain.Kind
	max   int
	label string
}{
	{domain.KindImage, MaxImagesPerScreen, "images"},
	{domain.KindEmbeddedLink, MaxEmbeddedLinksPerScreen, "embedded links"},
}

func countWarnings(screenID string, counts map[domain.Kind]int) []Issue {
	var out []Issue
	for _, cl := range countLimits {
		n := counts[cl.kind]
		if n <= cl.max {
			continue
		}
		out = append(out, Issue{
			Code:     domain.CodeCountLimitExceeded,
			ScreenID: screenID,
			Kind:     cl.kind,
			Message:  fmt.Sprintf("too many %s on screen %q: %d/%d", cl.label, screenID, n, cl.max),
		})
	}
	return out
}

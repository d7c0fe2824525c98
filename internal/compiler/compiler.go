// Package compiler turns authored screens into the platform FlowDocument.
//
// Compile is pure and deterministic. It does not enforce content limits;
// callers run the validator first. Errors are reserved for input that breaks
// the screen graph's invariants.
package compiler

import (
	"fmt"

	"github.com/lime816/whatsappsuitetest-sub002/internal/binding"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// Compile builds the FlowDocument for screens. The input is never mutated and
// the output shares no memory with it.
func Compile(screens []domain.Screen) (*domain.FlowDocument, error) {
	if err := checkInvariants(screens); err != nil {
		return nil, err
	}

	doc := &domain.FlowDocument{
		Version:        domain.FlowVersion,
		DataAPIVersion: domain.DataAPIVersion,
		RoutingModel:   Routing(screens),
		Screens:        make([]domain.FlowScreen, 0, len(screens)),
		Data:           binding.Extract(screens),
	}
	for _, s := range screens {
		doc.Screens = append(doc.Screens, assemble(s))
	}
	return doc, nil
}

func checkInvariants(screens []domain.Screen) error {
	seen := make(map[string]bool, len(screens))
	for _, s := range screens {
		if seen[s.ID] {
			return &domain.InvariantError{ScreenID: s.ID, Reason: "duplicate screen id"}
		}
		seen[s.ID] = true

		footers := 0
		for i, el := range s.Elements {
			if el == nil {
				return &domain.InvariantError{ScreenID: s.ID, Reason: fmt.Sprintf("element at index %d is nil", i)}
			}
			if !el.ElementKind().Valid() {
				return &domain.InvariantError{
					ScreenID:  s.ID,
					ElementID: el.ElementID(),
					Reason:    fmt.Sprintf("kind %q: %v", el.ElementKind(), domain.ErrUnsupportedKind),
				}
			}
			if el.ElementKind() == domain.KindFooter {
				footers++
			}
		}
		if footers > 1 {
			return &domain.InvariantError{ScreenID: s.ID, Reason: fmt.Sprintf("%d footers, at most one is allowed", footers)}
		}
	}
	return nil
}

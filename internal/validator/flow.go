package validator

import (
	"fmt"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// ValidateFlow validates every screen and adds the structural checks the
// compiler relies on: unique screen ids, unique element ids per screen, at
// most one Footer per screen and a target on every navigate Footer.
//
// Footer targets are not resolved against the flow; a dangling nextScreen is
// carried into the routing model as is.
func ValidateFlow(screens []domain.Screen) Result {
	res := newResult()
	seenScreens := make(map[string]bool, len(screens))

	for _, screen := range screens {
		if seenScreens[screen.ID] {
			res.Errors = append(res.Errors, structural(screen.ID, "", "duplicate screen id %q", screen.ID))
		}
		seenScreens[screen.ID] = true

		res.Errors = append(res.Errors, checkScreen(screen)...)
		res.merge(ValidateScreen(screen))
	}
	return res.seal()
}

func checkScreen(screen domain.Screen) []Issue {
	var out []Issue
	seen := make(map[string]bool, len(screen.Elements))
	footers := 0

	for i, el := range screen.Elements {
		if el == nil {
			out = append(out, structural(screen.ID, "", "element at index %d is nil", i))
			continue
		}
		id := el.ElementID()
		if !el.ElementKind().Valid() {
			issue := structural(screen.ID, id, "kind %q is not in the catalog", el.ElementKind())
			issue.Code = domain.CodeUnsupportedKind
			out = append(out, issue)
		}
		if seen[id] {
			out = append(out, structural(screen.ID, id, "duplicate element id %q", id))
		}
		seen[id] = true

		footer, ok := el.(domain.Footer)
		if !ok {
			continue
		}
		footers++
		switch footer.Action {
		case domain.ActionNavigate:
			if footer.NextScreen == "" {
				out = append(out, structural(screen.ID, id, "navigate footer has no next screen"))
			}
		case domain.ActionComplete:
		default:
			out = append(out, structural(screen.ID, id, "unknown footer action %q", footer.Action))
		}
	}

	if footers > 1 {
		out = append(out, structural(screen.ID, "", "screen has %d footers, at most one is allowed", footers))
	}
	return out
}

func structural(screenID, elementID, format string, args ...any) Issue {
	return Issue{
		Code:      domain.CodeInvariantViolation,
		ScreenID:  screenID,
		ElementID: elementID,
		Message:   fmt.Sprintf(format, args...),
	}
}

// Package binding infers the flow's data model from conditional expressions
// and named form fields.
package binding

import (
	"fmt"
	"regexp"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

var dataRef = regexp.MustCompile(`\$\{data\.([A-Za-z_][A-Za-z0-9_]*)\}`)

// Condition variables are always typed boolean; their real runtime type is
// not recoverable from the expression.
var conditionEntry = domain.DataSchemaEntry{
	Type:        domain.SchemaBoolean,
	Example:     true,
	Description: "condition variable",
}

// References returns the distinct ${data.<identifier>} names in expr, in
// order of first appearance.
func References(expr string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range dataRef.FindAllStringSubmatch(expr, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

// Extract builds the data model of a flow. The conditional pass runs first,
// then the named-field pass; a later entry with the same key overwrites an
// earlier one. Returns nil when nothing was found.
func Extract(screens []domain.Screen) *domain.DataModel {
	model := domain.NewDataModel()

	for _, screen := range screens {
		for _, el := range screen.Elements {
			cond, ok := el.(domain.If)
			if !ok {
				continue
			}
			for _, name := range References(cond.Condition) {
				model.Set(name, conditionEntry)
			}
		}
	}

	for _, screen := range screens {
		for _, el := range screen.Elements {
			named, ok := el.(domain.Named)
			if !ok || named.FieldName() == "" {
				continue
			}
			model.Set(named.FieldName(), fieldEntry(named))
		}
	}

	if model.Len() == 0 {
		return nil
	}
	return model
}

func fieldEntry(el domain.Named) domain.DataSchemaEntry {
	desc := fmt.Sprintf("value of %s field", el.ElementKind())
	if el.ElementKind() == domain.KindCheckboxGroup {
		return domain.DataSchemaEntry{Type: domain.SchemaArray, Example: []string{"option1"}, Description: desc}
	}
	return domain.DataSchemaEntry{Type: domain.SchemaString, Example: "sample_value", Description: desc}
}

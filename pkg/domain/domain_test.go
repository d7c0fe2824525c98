package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds_ClosedSet(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 19)

	seen := map[Kind]bool{}
	for _, k := range kinds {
		assert.True(t, k.Valid(), "kind %s", k)
		assert.False(t, seen[k], "duplicate kind %s", k)
		seen[k] = true
	}
	assert.False(t, Kind("Carousel").Valid())

	// Mutating the returned slice must not leak into the catalog.
	kinds[0] = "Broken"
	assert.Equal(t, KindTextHeading, Kinds()[0])
}

func TestKind_IsFormField(t *testing.T) {
	formFields := []Kind{
		KindTextInput, KindEmailInput, KindPhoneInput, KindTextArea,
		KindCheckboxGroup, KindRadioButtonsGroup, KindDropdown, KindOptIn,
		KindDatePicker, KindPhotoPicker, KindFooter,
	}
	for _, k := range formFields {
		assert.True(t, k.IsFormField(), "%s", k)
	}
	for _, k := range []Kind{KindTextHeading, KindTextBody, KindImage, KindEmbeddedLink, KindIf, KindRichText} {
		assert.False(t, k.IsFormField(), "%s", k)
	}
}

func TestScreen_Footers(t *testing.T) {
	s := Screen{
		ID: "A",
		Elements: []Element{
			TextHeading{Base: Base{ID: "h", Kind: KindTextHeading}, Text: "Hi"},
			Footer{Base: Base{ID: "f", Kind: KindFooter}, Label: "Go", Action: ActionNavigate, NextScreen: "B"},
		},
	}

	f, ok := s.Footer()
	require.True(t, ok)
	assert.Equal(t, "B", f.NextScreen)
	assert.Len(t, s.Footers(), 1)

	_, ok = Screen{ID: "empty"}.Footer()
	assert.False(t, ok)
}

func TestScreen_CloneIsIndependent(t *testing.T) {
	orig := []Screen{{
		ID:       "A",
		Elements: []Element{TextBody{Base: Base{ID: "b", Kind: KindTextBody}, Text: "one"}},
	}}
	cp := CloneScreens(orig)
	cp[0].Elements[0] = TextBody{Base: Base{ID: "b", Kind: KindTextBody}, Text: "two"}
	cp[0].Title = "changed"

	assert.Equal(t, "one", orig[0].Elements[0].(TextBody).Text)
	assert.Empty(t, orig[0].Title)
	assert.Nil(t, CloneScreens(nil))
}

func TestInvariantError(t *testing.T) {
	var err error = &InvariantError{ScreenID: "A", ElementID: "x", Reason: "nil element"}
	assert.True(t, errors.Is(err, ErrInvariantViolation))
	assert.Contains(t, err.Error(), `screen "A" element "x"`)

	err = &InvariantError{ScreenID: "A", Reason: "more than one footer"}
	assert.Equal(t, `invariant violation: screen "A": more than one footer`, err.Error())
}

func TestFlowDocument_JSONKeepsRoutingOrder(t *testing.T) {
	rm := NewRoutingModel()
	rm.Set("Z", []string{"A"})
	rm.Set("A", []string{})

	doc := FlowDocument{
		Version:        FlowVersion,
		DataAPIVersion: DataAPIVersion,
		RoutingModel:   rm,
		Screens:        []FlowScreen{},
	}
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"7.2","data_api_version":"3.0","routing_model":{"Z":["A"],"A":[]},"screens":[]}`, string(out))
	assert.Contains(t, string(out), `"routing_model":{"Z":["A"],"A":[]}`)
}

func TestHooks_Merge(t *testing.T) {
	var calls []string
	a := Hooks{OnCompile: func(_ context.Context, _ *CompileEvent) { calls = append(calls, "a") }}
	b := Hooks{
		OnCompile:  func(_ context.Context, _ *CompileEvent) { calls = append(calls, "b") },
		OnValidate: func(_ context.Context, _ *ValidateEvent) { calls = append(calls, "v") },
	}
	h := a.Merge(b)
	h.EmitCompile(context.Background(), &CompileEvent{})
	h.EmitValidate(context.Background(), &ValidateEvent{})
	assert.Equal(t, []string{"a", "b", "v"}, calls)

	// Zero hooks are safe.
	Hooks{}.EmitCompile(context.Background(), &CompileEvent{})
}

func TestCloneElement_Deep(t *testing.T) {
	visible := true
	cb := CheckboxGroup{
		Base:       Base{ID: "c", Kind: KindCheckboxGroup},
		DataSource: []Option{{ID: "a", Title: "A"}},
		Visible:    &visible,
	}
	cp := CloneElement(cb).(CheckboxGroup)
	cp.DataSource[0].Title = "changed"
	*cp.Visible = false
	assert.Equal(t, "A", cb.DataSource[0].Title)
	assert.True(t, *cb.Visible)

	f := Footer{Base: Base{ID: "f", Kind: KindFooter}, PayloadKeys: []string{"x"}}
	fc := CloneElement(f).(Footer)
	fc.PayloadKeys[0] = "y"
	assert.Equal(t, "x", f.PayloadKeys[0])

	assert.Nil(t, CloneElement(nil))
}

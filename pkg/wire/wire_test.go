package wire

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/catalog"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

func TestDictionary_Bidirectional(t *testing.T) {
	dict := Dictionary()
	require.NotEmpty(t, dict)
	for internal, external := range dict {
		assert.Equal(t, external, External(internal))
		assert.Equal(t, internal, Internal(external))
		assert.NotContains(t, internal, "-")
		assert.Contains(t, external, "-")
	}
	assert.Equal(t, "helper-text", External("helperText"))
	assert.Equal(t, "min-selected-items", External("minSelectedItems"))
	assert.Equal(t, "label", External("label"))
	assert.Equal(t, "label", Internal("label"))
}

// Every multi-word attribute of every catalog kind must have a wire name.
func TestDictionary_CoversCatalog(t *testing.T) {
	f := catalog.New(catalog.Sequence("e"))
	for _, kind := range domain.Kinds() {
		el := f.MustCreate(kind)
		typ := reflect.TypeOf(el)
		for i := 0; i < typ.NumField(); i++ {
			tag := typ.Field(i).Tag.Get("mapstructure")
			name := strings.Split(tag, ",")[0]
			if name == "" || !hasUpper(name) {
				continue
			}
			_, ok := Dictionary()[name]
			assert.True(t, ok, "%s.%s has no wire name", kind, name)
		}
	}
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func TestElementMap(t *testing.T) {
	visible := false
	in := domain.TextInput{
		Base:       domain.Base{ID: "t1", Kind: domain.KindTextInput},
		Name:       "full_name",
		Label:      "Name",
		HelperText: "As on your ID",
		MaxChars:   40,
		Visible:    &visible,
	}
	m, err := ElementMap(in)
	require.NoError(t, err)

	assert.Equal(t, "t1", m["id"])
	assert.EqualValues(t, "TextInput", m["type"])
	assert.Equal(t, "As on your ID", m["helper-text"])
	assert.Equal(t, 40, m["max-chars"])
	assert.NotContains(t, m, "helperText")
	assert.NotContains(t, m, "min-chars", "unset optional attributes are omitted")
	assert.Contains(t, m, "visible")

	_, err = ElementMap(nil)
	assert.Error(t, err)
}

func sampleDocument() *domain.FlowDocument {
	rm := domain.NewRoutingModel()
	rm.Set("WELCOME", []string{"DONE"})
	rm.Set("DONE", []string{})

	data := domain.NewDataModel()
	data.Set("full_name", domain.DataSchemaEntry{Type: domain.SchemaString, Example: "sample_value", Description: "value of TextInput field"})

	return &domain.FlowDocument{
		Version:        domain.FlowVersion,
		DataAPIVersion: domain.DataAPIVersion,
		RoutingModel:   rm,
		Screens: []domain.FlowScreen{
			{
				ID:    "WELCOME",
				Title: "Welcome",
				Layout: domain.Layout{
					Type: domain.LayoutSingleColumn,
					Children: []domain.Component{
						domain.TextHeading{Base: domain.Base{ID: "h", Kind: domain.KindTextHeading}, Text: "Hi"},
						domain.Form{
							Type: domain.FormType,
							Name: domain.FormName,
							Children: []domain.Element{
								domain.TextInput{Base: domain.Base{ID: "t", Kind: domain.KindTextInput}, Name: "full_name", Label: "Name", HelperText: "Required"},
								domain.Footer{Base: domain.Base{ID: "f", Kind: domain.KindFooter}, Label: "Next", Action: domain.ActionNavigate, NextScreen: "DONE", PayloadKeys: []string{"full_name"}},
							},
						},
					},
				},
			},
			{
				ID:       "DONE",
				Title:    "Done",
				Terminal: true,
				Success:  true,
				Layout: domain.Layout{
					Type:     domain.LayoutSingleColumn,
					Children: []domain.Component{},
				},
			},
		},
		Data: data,
	}
}

func TestMarshal(t *testing.T) {
	out, err := Marshal(sampleDocument())
	require.NoError(t, err)
	s := string(out)

	// Top-level ordering is fixed.
	assert.Less(t, strings.Index(s, `"version"`), strings.Index(s, `"routing_model"`))
	assert.Less(t, strings.Index(s, `"routing_model"`), strings.Index(s, `"screens"`))
	assert.Less(t, strings.Index(s, `"screens"`), strings.Index(s, `"data":`))
	assert.Contains(t, s, `"routing_model":{"WELCOME":["DONE"],"DONE":[]}`)

	// Element attributes are hyphenated, routing and data keys are not.
	assert.Contains(t, s, `"helper-text":"Required"`)
	assert.Contains(t, s, `"next-screen":"DONE"`)
	assert.Contains(t, s, `"payload-keys":["full_name"]`)
	assert.Contains(t, s, `"full_name":{"type":"string"`)
	assert.NotContains(t, s, "helperText")

	var generic map[string]any
	require.NoError(t, json.Unmarshal(out, &generic))
	screens := generic["screens"].([]any)
	first := screens[0].(map[string]any)
	children := first["layout"].(map[string]any)["children"].([]any)
	require.Len(t, children, 2)
	form := children[1].(map[string]any)
	assert.Equal(t, "Form", form["type"])
	assert.Equal(t, "flow_path", form["name"])
	assert.Len(t, form["children"], 2)

	last := screens[1].(map[string]any)
	assert.Equal(t, true, last["terminal"])
	assert.Equal(t, []any{}, last["layout"].(map[string]any)["children"])
}

func TestMarshal_Deterministic(t *testing.T) {
	a, err := Marshal(sampleDocument())
	require.NoError(t, err)
	b, err := Marshal(sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMarshal_OmitsEmptyModels(t *testing.T) {
	doc := &domain.FlowDocument{Version: domain.FlowVersion, DataAPIVersion: domain.DataAPIVersion, Screens: []domain.FlowScreen{}}
	out, err := Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"7.2","data_api_version":"3.0","screens":[]}`, string(out))

	_, err = Marshal(nil)
	assert.Error(t, err)
}

func TestMarshal_KeepsOperatorsLiteral(t *testing.T) {
	doc := sampleDocument()
	cond := domain.If{Base: domain.Base{ID: "c", Kind: domain.KindIf}, Condition: "${form.age} > 17 && ${form.agree}"}
	doc.Screens[1].Layout.Children = []domain.Component{cond}

	for _, marshal := range []func(*domain.FlowDocument) ([]byte, error){
		Marshal,
		func(d *domain.FlowDocument) ([]byte, error) { return MarshalIndent(d, "", "  ") },
	} {
		out, err := marshal(doc)
		require.NoError(t, err)
		assert.Contains(t, string(out), `${form.age} > 17 && ${form.agree}`)
		assert.NotContains(t, string(out), `\u0026`)
		assert.False(t, strings.HasSuffix(string(out), "\n"), "no trailing newline")
	}
}

func TestMarshalIndent(t *testing.T) {
	out, err := MarshalIndent(sampleDocument(), "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n  \"data_api_version\": \"3.0\"")
}

func TestFingerprint(t *testing.T) {
	screens := func(text string) []domain.Screen {
		return []domain.Screen{{
			ID:       "A",
			Elements: []domain.Element{domain.TextHeading{Base: domain.Base{ID: "h", Kind: domain.KindTextHeading}, Text: text}},
		}}
	}

	a, err := Fingerprint(screens("hello"))
	require.NoError(t, err)
	b, err := Fingerprint(screens("hello"))
	require.NoError(t, err)
	c, err := Fingerprint(screens("hello!"))
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

func heading(id, text string) domain.TextHeading {
	return domain.TextHeading{Base: domain.Base{ID: id, Kind: domain.KindTextHeading}, Text: text}
}

func image(id string) domain.Image {
	return domain.Image{Base: domain.Base{ID: id, Kind: domain.KindImage}, Src: "data:", AltText: "pic"}
}

func link(id string) domain.EmbeddedLink {
	return domain.EmbeddedLink{Base: domain.Base{ID: id, Kind: domain.KindEmbeddedLink}, Text: "more", URL: "https://example.com"}
}

func TestValidateElement_HeadingBoundary(t *testing.T) {
	res := ValidateElement(heading("h", strings.Repeat("a", 81)))
	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Empty(t, res.Warnings)

	issue := res.Errors[0]
	assert.Equal(t, domain.CodeContentLimitExceeded, issue.Code)
	assert.Equal(t, 80, issue.Limit)
	assert.Equal(t, 81, issue.Current)
	assert.Equal(t, "text", issue.Field)
	assert.Equal(t, "h", issue.ElementID)
	assert.NotEmpty(t, issue.Message)

	res = ValidateElement(heading("h", strings.Repeat("a", 80)))
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestValidateElement_Table(t *testing.T) {
	base := func(k domain.Kind) domain.Base { return domain.Base{ID: "e", Kind: k} }

	tests := []struct {
		name    string
		el      domain.Element
		fields  []string
		current []int
	}{
		{
			name:    "caption over 400",
			el:      domain.TextCaption{Base: base(domain.KindTextCaption), Text: strings.Repeat("c", 401)},
			fields:  []string{"text"},
			current: []int{401},
		},
		{
			name: "text input label and helper",
			el: domain.TextInput{
				Base:       base(domain.KindTextInput),
				Label:      strings.Repeat("l", 41),
				HelperText: strings.Repeat("h", 81),
			},
			fields:  []string{"label", "helperText"},
			current: []int{41, 81},
		},
		{
			name:   "text input at limits",
			el:     domain.TextInput{Base: base(domain.KindTextInput), Label: strings.Repeat("l", 40), HelperText: strings.Repeat("h", 80)},
			fields: nil,
		},
		{
			name:   "empty fields never fail",
			el:     domain.TextInput{Base: base(domain.KindTextInput)},
			fields: nil,
		},
		{
			name:    "footer caption",
			el:      domain.Footer{Base: base(domain.KindFooter), Label: "Next", Action: domain.ActionComplete, CenterCaption: strings.Repeat("x", 16)},
			fields:  []string{"centerCaption"},
			current: []int{16},
		},
		{
			name:   "if has no limits",
			el:     domain.If{Base: base(domain.KindIf), Condition: strings.Repeat("x", 5000)},
			fields: nil,
		},
		{
			name:    "length counts characters not bytes",
			el:      domain.EmbeddedLink{Base: base(domain.KindEmbeddedLink), Text: strings.Repeat("é", 26)},
			fields:  []string{"text"},
			current: []int{26},
		},
		{
			name:   "multibyte at limit",
			el:     domain.EmbeddedLink{Base: base(domain.KindEmbeddedLink), Text: strings.Repeat("é", 25)},
			fields: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateElement(tt.el)
			require.Len(t, res.Errors, len(tt.fields))
			assert.Equal(t, len(tt.fields) == 0, res.IsValid)
			for i, f := range tt.fields {
				assert.Equal(t, f, res.Errors[i].Field)
				assert.Equal(t, tt.current[i], res.Errors[i].Current)
			}
			assert.Empty(t, res.Warnings)
		})
	}
}

func TestValidateElement_Nil(t *testing.T) {
	res := ValidateElement(nil)
	assert.True(t, res.IsValid)
	assert.NotNil(t, res.Errors)
	assert.NotNil(t, res.Warnings)
}

func TestLimits_CoverTextBearingKinds(t *testing.T) {
	for _, kind := range domain.Kinds() {
		if kind == domain.KindIf {
			assert.Empty(t, Limits(kind))
			continue
		}
		assert.NotEmpty(t, Limits(kind), "kind %s has no content limits", kind)
	}
	assert.Equal(t, []Limit{{Field: "text", Max: 80}}, Limits(domain.KindTextHeading))
}

func TestValidateScreen_ImageWarning(t *testing.T) {
	screen := domain.Screen{ID: "GALLERY"}
	for _, id := range []string{"i1", "i2", "i3"} {
		screen.Elements = append(screen.Elements, image(id))
	}

	res := ValidateScreen(screen)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Warnings)

	screen.Elements = append(screen.Elements, image("i4"))
	res = ValidateScreen(screen)
	assert.True(t, res.IsValid, "warnings never block")
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Message, "4/3")
	assert.Equal(t, domain.CodeCountLimitExceeded, res.Warnings[0].Code)
}

func TestValidateScreen_LinkWarningAndElementErrors(t *testing.T) {
	screen := domain.Screen{
		ID: "LINKS",
		Elements: []domain.Element{
			link("l1"), link("l2"), link("l3"),
			heading("h", strings.Repeat("a", 90)),
		},
	}
	res := ValidateScreen(screen)
	assert.False(t, res.IsValid)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Message, "3/2")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "LINKS", res.Errors[0].ScreenID)
	assert.Equal(t, 90, res.Errors[0].Current)
}

func TestValidateScreen_DoesNotMutate(t *testing.T) {
	screen := domain.Screen{ID: "A", Elements: []domain.Element{heading("h", strings.Repeat("a", 81))}}
	before := screen.Clone()
	_ = ValidateScreen(screen)
	assert.Equal(t, before, screen)
}

func TestValidateFlow_Structural(t *testing.T) {
	nav := func(id, next string) domain.Footer {
		return domain.Footer{Base: domain.Base{ID: id, Kind: domain.KindFooter}, Label: "Next", Action: domain.ActionNavigate, NextScreen: next}
	}

	tests := []struct {
		name    string
		screens []domain.Screen
		want    []string
	}{
		{
			name: "valid two screens",
			screens: []domain.Screen{
				{ID: "A", Elements: []domain.Element{heading("h", "Hi"), nav("f", "B")}},
				{ID: "B", Elements: []domain.Element{heading("h", "Bye")}},
			},
		},
		{
			name: "dangling target is accepted",
			screens: []domain.Screen{
				{ID: "A", Elements: []domain.Element{nav("f", "GHOST")}},
			},
		},
		{
			name: "duplicate screen id",
			screens: []domain.Screen{
				{ID: "A"}, {ID: "A"},
			},
			want: []string{`duplicate screen id "A"`},
		},
		{
			name: "duplicate element id",
			screens: []domain.Screen{
				{ID: "A", Elements: []domain.Element{heading("h", "x"), heading("h", "y")}},
			},
			want: []string{`duplicate element id "h"`},
		},
		{
			name: "two footers",
			screens: []domain.Screen{
				{ID: "A", Elements: []domain.Element{nav("f1", "B"), nav("f2", "B")}},
				{ID: "B"},
			},
			want: []string{"2 footers"},
		},
		{
			name: "navigate without target",
			screens: []domain.Screen{
				{ID: "A", Elements: []domain.Element{nav("f", "")}},
			},
			want: []string{"no next screen"},
		},
		{
			name: "nil element",
			screens: []domain.Screen{
				{ID: "A", Elements: []domain.Element{nil}},
			},
			want: []string{"index 0 is nil"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateFlow(tt.screens)
			require.Len(t, res.Errors, len(tt.want), "%+v", res.Errors)
			assert.Equal(t, len(tt.want) == 0, res.IsValid)
			for i, w := range tt.want {
				assert.Equal(t, domain.CodeInvariantViolation, res.Errors[i].Code)
				assert.Contains(t, res.Errors[i].Message, w)
			}
		})
	}
}

func TestValidateFlow_UnknownKind(t *testing.T) {
	bogus := domain.TextHeading{Base: domain.Base{ID: "x", Kind: "Carousel"}}
	res := ValidateFlow([]domain.Screen{{ID: "A", Elements: []domain.Element{bogus}}})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, domain.CodeUnsupportedKind, res.Errors[0].Code)
}

func TestValidateFlow_IncludesContentErrors(t *testing.T) {
	res := ValidateFlow([]domain.Screen{{ID: "A", Elements: []domain.Element{heading("h", strings.Repeat("a", 81))}}})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, domain.CodeContentLimitExceeded, res.Errors[0].Code)
}

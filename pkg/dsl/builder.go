package dsl

import (
	"github.com/lime816/whatsappsuitetest-sub002/pkg/catalog"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// Builder manages the flow construction.
type Builder struct {
	factory *catalog.Factory
	order   []string
	screens map[string]*ScreenBuilder
}

// New creates a new flow builder. Elements get their ids from factory;
// a nil factory uses random UUIDs.
func New(factory *catalog.Factory) *Builder {
	if factory == nil {
		factory = catalog.New(nil)
	}
	return &Builder{
		factory: factory,
		screens: make(map[string]*ScreenBuilder),
	}
}

// Screen starts a new screen in the flow.
// If the screen already exists, it returns the existing builder.
func (b *Builder) Screen(id, title string) *ScreenBuilder {
	if sb, ok := b.screens[id]; ok {
		return sb
	}
	sb := &ScreenBuilder{
		screen:  domain.Screen{ID: id, Title: title},
		builder: b,
	}
	b.screens[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build returns the screens in the order they were declared.
func (b *Builder) Build() []domain.Screen {
	out := make([]domain.Screen, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.screens[id].Build())
	}
	return out
}

// Package editor owns the mutable screen graph edited by an author.
// Everything handed out is a copy; validators and the compiler only ever see
// snapshots.
package editor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/catalog"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

var (
	ErrLastScreen      = errors.New("cannot remove the last screen")
	ErrScreenNotFound  = errors.New("screen not found")
	ErrScreenExists    = errors.New("screen already exists")
	ErrElementNotFound = errors.New("element not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrKindMismatch    = errors.New("element kind cannot change")
	ErrFooterExists    = errors.New("screen already has a footer")
)

// Initial screen of a new store.
const (
	InitialScreenID    = "WELCOME"
	InitialScreenTitle = "Welcome"
)

// Store is the in-memory screen graph. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	screens  []domain.Screen
	active   string
	factory  *catalog.Factory
	onChange func([]domain.Screen)
}

// Option configures a Store.
type Option func(*Store)

// WithChangeHook registers a callback receiving a snapshot after every
// successful mutation. It runs outside the store lock.
func WithChangeHook(fn func([]domain.Screen)) Option {
	return func(s *Store) {
		s.onChange = fn
	}
}

// WithScreens seeds the store instead of the default welcome screen.
// An empty list is ignored.
func WithScreens(screens []domain.Screen) Option {
	return func(s *Store) {
		if len(screens) > 0 {
			s.screens = domain.CloneScreens(screens)
		}
	}
}

// New creates a store holding a single default screen.
func New(factory *catalog.Factory, opts ...Option) *Store {
	if factory == nil {
		factory = catalog.New(nil)
	}
	s := &Store{factory: factory}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.screens) == 0 {
		s.screens = []domain.Screen{factory.DefaultScreen(InitialScreenID, InitialScreenTitle, "")}
	}
	s.active = s.screens[0].ID
	return s
}

// Snapshot returns a deep copy of all screens in order.
func (s *Store) Snapshot() []domain.Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneScreens(s.screens)
}

// Screen returns a copy of one screen.
func (s *Store) Screen(id string) (domain.Screen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Screen{}, fmt.Errorf("screen %q: %w", id, ErrScreenNotFound)
	}
	return s.screens[i].Clone(), nil
}

// Active returns the screen currently selected for editing.
func (s *Store) Active() domain.Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screens[s.indexOf(s.active)].Clone()
}

// Select makes id the active screen.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(id) < 0 {
		return fmt.Errorf("select %q: %w", id, ErrScreenNotFound)
	}
	s.active = id
	return nil
}

// AddScreen appends a default screen and selects it.
func (s *Store) AddScreen(id, title string) (domain.Screen, error) {
	s.mu.Lock()
	if s.indexOf(id) >= 0 {
		s.mu.Unlock()
		return domain.Screen{}, fmt.Errorf("add %q: %w", id, ErrScreenExists)
	}
	screen := s.factory.DefaultScreen(id, title, "")
	s.screens = append(s.screens, screen)
	s.active = id
	snap := s.changed()
	s.mu.Unlock()

	s.notify(snap)
	return screen.Clone(), nil
}

// RemoveScreen deletes a screen unless it is the last one. Removing the
// active screen selects the first remaining screen.
func (s *Store) RemoveScreen(id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("remove %q: %w", id, ErrScreenNotFound)
	}
	if len(s.screens) == 1 {
		s.mu.Unlock()
		return ErrLastScreen
	}
	s.screens = append(s.screens[:i], s.screens[i+1:]...)
	if s.active == id {
		s.active = s.screens[0].ID
	}
	snap := s.changed()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// SetTitle renames a screen's title.
func (s *Store) SetTitle(id, title string) error {
	return s.mutate(id, func(screen *domain.Screen) error {
		screen.Title = title
		return nil
	})
}

// InsertElement creates a default element of kind and inserts it at index.
// A negative index appends. A screen holds at most one Footer.
func (s *Store) InsertElement(screenID string, kind domain.Kind, index int, opts ...catalog.Option) (domain.Element, error) {
	el, err := s.factory.CreateDefault(kind, opts...)
	if err != nil {
		return nil, err
	}
	err = s.mutate(screenID, func(screen *domain.Screen) error {
		n := len(screen.Elements)
		if index < 0 {
			index = n
		}
		if index > n {
			return fmt.Errorf("insert at %d of %d: %w", index, n, ErrIndexOutOfRange)
		}
		if kind == domain.KindFooter && len(screen.Footers()) > 0 {
			return fmt.Errorf("insert footer into %q: %w", screen.ID, ErrFooterExists)
		}
		screen.Elements = append(screen.Elements, nil)
		copy(screen.Elements[index+1:], screen.Elements[index:])
		screen.Elements[index] = el
		return nil
	})
	if err != nil {
		return nil, err
	}
	return domain.CloneElement(el), nil
}

// UpdateElement replaces the element with the same id. The kind is fixed
// at creation.
func (s *Store) UpdateElement(screenID string, el domain.Element) error {
	if el == nil {
		return fmt.Errorf("update: nil element")
	}
	return s.mutate(screenID, func(screen *domain.Screen) error {
		i := elementIndex(*screen, el.ElementID())
		if i < 0 {
			return fmt.Errorf("update %q: %w", el.ElementID(), ErrElementNotFound)
		}
		if screen.Elements[i].ElementKind() != el.ElementKind() {
			return fmt.Errorf("update %q from %s to %s: %w", el.ElementID(), screen.Elements[i].ElementKind(), el.ElementKind(), ErrKindMismatch)
		}
		screen.Elements[i] = domain.CloneElement(el)
		return nil
	})
}

// MoveElement splices the element at from into position to.
func (s *Store) MoveElement(screenID string, from, to int) error {
	return s.mutate(screenID, func(screen *domain.Screen) error {
		n := len(screen.Elements)
		if from < 0 || from >= n || to < 0 || to >= n {
			return fmt.Errorf("move %d to %d of %d: %w", from, to, n, ErrIndexOutOfRange)
		}
		el := screen.Elements[from]
		rest := append(screen.Elements[:from:from], screen.Elements[from+1:]...)
		out := make([]domain.Element, 0, n)
		out = append(out, rest[:to]...)
		out = append(out, el)
		out = append(out, rest[to:]...)
		screen.Elements = out
		return nil
	})
}

// RemoveElement filters the element out of the screen.
func (s *Store) RemoveElement(screenID, elementID string) error {
	return s.mutate(screenID, func(screen *domain.Screen) error {
		kept := screen.Elements[:0:0]
		for _, el := range screen.Elements {
			if el == nil || el.ElementID() != elementID {
				kept = append(kept, el)
			}
		}
		if len(kept) == len(screen.Elements) {
			return fmt.Errorf("remove %q: %w", elementID, ErrElementNotFound)
		}
		screen.Elements = kept
		return nil
	})
}

func (s *Store) mutate(screenID string, fn func(*domain.Screen) error) error {
	s.mu.Lock()
	i := s.indexOf(screenID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("screen %q: %w", screenID, ErrScreenNotFound)
	}
	screen := s.screens[i].Clone()
	if err := fn(&screen); err != nil {
		s.mu.Unlock()
		return err
	}
	s.screens[i] = screen
	snap := s.changed()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// changed returns the snapshot for the change hook. Callers hold the lock.
func (s *Store) changed() []domain.Screen {
	if s.onChange == nil {
		return nil
	}
	return domain.CloneScreens(s.screens)
}

func (s *Store) notify(snap []domain.Screen) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}

func (s *Store) indexOf(id string) int {
	for i, screen := range s.screens {
		if screen.ID == id {
			return i
		}
	}
	return -1
}

func elementIndex(screen domain.Screen, id string) int {
	for i, el := range screen.Elements {
		if el != nil && el.ElementID() == id {
			return i
		}
	}
	return -1
}

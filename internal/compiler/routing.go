package compiler

import "github.com/lime816/whatsappsuitetest-sub002/pkg/domain"

// Routing derives the routing model from the screens' footers. It holds one
// entry per screen in screen order: the navigate target, or an empty list.
// Single-screen flows have no routing model.
func Routing(screens []domain.Screen) *domain.RoutingModel {
	if len(screens) <= 1 {
		return nil
	}
	rm := domain.NewRoutingModel()
	for _, s := range screens {
		next := []string{}
		if f, ok := s.Footer(); ok && f.Action == domain.ActionNavigate {
			next = append(next, f.NextScreen)
		}
		rm.Set(s.ID, next)
	}
	return rm
}

// Edges returns the routing model as (from, to) pairs in screen order.
func Edges(rm *domain.RoutingModel) [][2]string {
	if rm == nil {
		return nil
	}
	var out [][2]string
	for p := rm.Oldest(); p != nil; p = p.Next() {
		for _, to := range p.Value {
			out = append(out, [2]string{p.Key, to})
		}
	}
	return out
}

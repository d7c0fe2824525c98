package domain

import (
	"context"
	"time"
)

// ValidationScope tells which validator entry point produced a report.
type ValidationScope string

const (
	ScopeElement ValidationScope = "element"
	ScopeScreen  ValidationScope = "screen"
	ScopeFlow    ValidationScope = "flow"
)

// CompileEvent is emitted after every compile call.
type CompileEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Screens   int           `json:"screens"`
	Elements  int           `json:"elements"`
	Duration  time.Duration `json:"duration"`
	Cached    bool          `json:"cached,omitempty"`
	Err       error         `json:"-"`
}

// ValidateEvent is emitted after every validation call.
type ValidateEvent struct {
	Timestamp time.Time       `json:"timestamp"`
	Scope     ValidationScope `json:"scope"`
	Errors    int             `json:"errors"`
	Warnings  int             `json:"warnings"`
	Duration  time.Duration   `json:"duration"`
}

// Hooks defines callbacks for observability. Nil hooks are skipped.
type Hooks struct {
	OnCompile  func(context.Context, *CompileEvent)
	OnValidate func(context.Context, *ValidateEvent)
}

// EmitCompile invokes OnCompile if set.
func (h Hooks) EmitCompile(ctx context.Context, ev *CompileEvent) {
	if h.OnCompile != nil {
		h.OnCompile(ctx, ev)
	}
}

// EmitValidate invokes OnValidate if set.
func (h Hooks) EmitValidate(ctx context.Context, ev *ValidateEvent) {
	if h.OnValidate != nil {
		h.OnValidate(ctx, ev)
	}
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnCompile: func(ctx context.Context, ev *CompileEvent) {
			h.EmitCompile(ctx, ev)
			other.EmitCompile(ctx, ev)
		},
		OnValidate: func(ctx context.Context, ev *ValidateEvent) {
			h.EmitValidate(ctx, ev)
			other.EmitValidate(ctx, ev)
		},
	}
}

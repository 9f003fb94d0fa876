package components

import (
	"fmt"

	. "github.com/vango-dev/starter/el"
)

// Level represents the toast notification level.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// ParseLevel converts a query value into a toast level.
func ParseLevel(s string) (Level, error) {
	switch t := Level(s); t {
	case LevelSuccess, LevelError, LevelWarning, LevelInfo:
		return t, nil
	}
	return "", fmt.Errorf("unknown toast level %q", s)
}

// ToastOption customizes a toast.
type ToastOption func(*toastOptions)

type toastOptions struct {
	title       string
	actionLabel string
	actionID    string
}

// WithTitle adds a heading above the message.
//
//	components.Toast(components.LevelSuccess, "Your changes have been saved.",
//	    components.WithTitle("Settings"))
func WithTitle(title string) ToastOption {
	return func(o *toastOptions) {
		o.title = title
	}
}

// WithAction adds an action button. The client receives actionID in the
// button's data-action attribute.
//
//	components.Toast(components.LevelInfo, "Item archived", components.WithAction("Undo", "undo"))
func WithAction(label, actionID string) ToastOption {
	return func(o *toastOptions) {
		o.actionLabel = label
		o.actionID = actionID
	}
}

// Toast renders a notification fragment.
//
// Errors and warnings use role="alert" so screen readers announce them
// immediately; other levels use role="status".
func Toast(level Level, message string, opts ...ToastOption) *Element {
	var o toastOptions
	for _, opt := range opts {
		opt(&o)
	}

	role := "status"
	if level == LevelError || level == LevelWarning {
		role = "alert"
	}

	return Div(
		Class("toast", "toast-"+string(level)),
		Role(role),
		Data("toast-level", string(level)),
		If(o.title != "", Strong(Class("toast-title"), Text(o.title))),
		P(Class("toast-message"), Text(message)),
		If(o.actionID != "", Button(
			Type("button"),
			Class("toast-action"),
			Data("action", o.actionID),
			Text(o.actionLabel),
		)),
		Button(Type("button"), Class("toast-close"), AriaLabel("Dismiss"), Raw("&times;")),
	)
}

// Success renders a success toast.
func Success(message string, opts ...ToastOption) *Element {
	return Toast(LevelSuccess, message, opts...)
}

// Error renders an error toast.
func Error(message string, opts ...ToastOption) *Element {
	return Toast(LevelError, message, opts...)
}

// Warning renders a warning toast.
func Warning(message string, opts ...ToastOption) *Element {
	return Toast(LevelWarning, message, opts...)
}

// Info renders an info toast.
func Info(message string, opts ...ToastOption) *Element {
	return Toast(LevelInfo, message, opts...)
}

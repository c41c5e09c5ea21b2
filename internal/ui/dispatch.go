package ui

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnknownTarget means no element in the tree has the requested id.
	ErrUnknownTarget = errors.New("unknown event target")
	// ErrNoHandler means the target element has no click handler bound.
	ErrNoHandler = errors.New("no click handler bound")
)

// Dispatch runs the click handler of the element with the given id.
func Dispatch(ctx context.Context, root *Element, id string) error {
	el := root.FindByID(id)
	if el == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, id)
	}
	if !el.Clickable() {
		return fmt.Errorf("%w: %q", ErrNoHandler, id)
	}
	if err := el.onClick(ctx); err != nil {
		return fmt.Errorf("click on %q: %w", id, err)
	}
	return nil
}

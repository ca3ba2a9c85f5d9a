package port

// InteractionToggle enables or disables input on the host.
type InteractionToggle interface {
	// SetUserInteractionEnabled toggles input for the whole container.
	SetUserInteractionEnabled(enabled bool)

	// SetPaneInteractionEnabled toggles input for the pane content only,
	// leaving the pane itself draggable.
	SetPaneInteractionEnabled(enabled bool)
}

package inspector

// Attribute is the inspector metadata attached to a component field.
type Attribute struct {
	DisplayName string
	Readonly    bool
	UseTooltip  bool
	Tooltip     string
}

// NewAttribute shows a field under displayName.
func NewAttribute(displayName string) Attribute {
	return Attribute{DisplayName: displayName}
}

// NewReadonlyAttribute shows a field under displayName with editing disabled.
func NewReadonlyAttribute(displayName string) Attribute {
	return Attribute{DisplayName: displayName, Readonly: true}
}

// NewTooltipAttribute shows a field under displayName with a hover tooltip.
func NewTooltipAttribute(displayName, tooltip string, readonly bool) Attribute {
	return Attribute{
		DisplayName: displayName,
		Readonly:    readonly,
		UseTooltip:  true,
		Tooltip:     tooltip,
	}
}

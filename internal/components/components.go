// Package components holds the scene components the inspector can edit.
package components

import "fieldlabel/internal/inspector"

// Inspectable is a component whose fields show up in the inspector.
type Inspectable interface {
	TypeName() string
	Properties() []inspector.Property
}

var (
	_ Stateful = (*PointLight)(nil)
	_ Stateful = (*DirectionalLight)(nil)
)

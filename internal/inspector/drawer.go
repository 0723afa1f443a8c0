package inspector

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// rowSpacing is the gap between rows drawn by DrawFields.
const rowSpacing = 2

// Property is a single editable value of a component. Value holds a pointer
// so the host can write edits back. Field names the component field whose
// attribute applies; it may be left empty when the path leaf is that field.
type Property struct {
	Path  PropertyPath
	Field string
	Value any
}

// NewProperty returns a property whose path leaf is the component field.
func NewProperty(path string, value any) Property {
	return Property{Path: ParsePath(path), Value: value}
}

// NewFieldProperty returns a property nested under field, such as element
// "lights.Array.data[2]" of field "lights".
func NewFieldProperty(path, field string, value any) Property {
	return Property{Path: ParsePath(path), Field: field, Value: value}
}

// FieldName is the component field used for the attribute lookup.
func (p Property) FieldName() string {
	if p.Field != "" {
		return p.Field
	}
	return p.Path.Leaf()
}

// Host is the panel that actually renders properties.
type Host interface {
	// SetEnabled toggles interaction for everything drawn afterwards.
	SetEnabled(enabled bool)
	// DrawProperty renders prop with label and reports whether it was edited.
	DrawProperty(bounds rl.Rectangle, prop Property, label Label) bool
}

// Drawer renders properties through a Host, applying registered attributes.
type Drawer struct {
	host       Host
	registry   *Registry
	classifier Classifier
	cfg        Config
	lggr       *zap.SugaredLogger
}

// Option configures a Drawer.
type Option func(*Drawer)

// WithRegistry looks attributes up in r instead of Default.
func WithRegistry(r *Registry) Option { return func(d *Drawer) { d.registry = r } }

// WithClassifier sets how property paths are placed.
func WithClassifier(c Classifier) Option { return func(d *Drawer) { d.classifier = c } }

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option { return func(d *Drawer) { d.cfg = cfg } }

// WithLogger sets the logger; the default discards.
func WithLogger(l *zap.SugaredLogger) Option { return func(d *Drawer) { d.lggr = l } }

// NewDrawer returns a Drawer using the Default registry, FieldClassifier and
// DefaultConfig unless overridden.
func NewDrawer(host Host, opts ...Option) *Drawer {
	d := &Drawer{
		host:       host,
		registry:   Default,
		classifier: FieldClassifier{},
		cfg:        DefaultConfig(),
		lggr:       NopLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns the settings the drawer lays rows out with.
func (d *Drawer) Config() Config { return d.cfg }

// Draw renders one property of a component of type typeName. Fields without
// an attribute are drawn with the fallback label untouched.
func (d *Drawer) Draw(bounds rl.Rectangle, typeName string, prop Property, fallback Label) bool {
	attr, ok := d.registry.Lookup(typeName, prop.FieldName())
	if !ok {
		return d.host.DrawProperty(bounds, prop, fallback)
	}

	placement := d.classifier.Classify(prop.Path)
	label := ResolveLabel(attr, placement, fallback)
	if !d.cfg.Tooltips {
		label.Tooltip = ""
	}

	d.lggr.Debugw("Drawing property",
		"type", typeName,
		"path", prop.Path.String(),
		"field", prop.FieldName(),
		"placement", placement.String(),
		"label", label.Text,
		"readonly", attr.Readonly,
	)

	if attr.Readonly {
		d.host.SetEnabled(false)
	}
	defer d.host.SetEnabled(true)

	edited := d.host.DrawProperty(bounds, prop, label)
	return edited && !attr.Readonly
}

// DrawFields draws props as stacked rows starting at bounds.Y. It returns the
// y below the last row and the paths of properties edited this frame.
func (d *Drawer) DrawFields(bounds rl.Rectangle, typeName string, props []Property) (float32, []string) {
	y := bounds.Y
	var edited []string
	for _, prop := range props {
		row := rl.Rectangle{X: bounds.X, Y: y, Width: bounds.Width, Height: d.cfg.RowHeight}
		if d.Draw(row, typeName, prop, Label{Text: prop.Path.Leaf()}) {
			edited = append(edited, prop.Path.String())
		}
		y += d.cfg.RowHeight + rowSpacing
	}
	return y, edited
}

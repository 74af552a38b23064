package flexcodec

import "github.com/sirupsen/logrus"

// flattenBool/flattenVariant/flattenSize model the three-state flatten
// channel state machine from spec §4.H "State machines": Absent, or
// Armed(value). Armed is consumed (cleared back to Absent) by the next
// matching read or write.
type flattenBool struct {
	armed bool
	value bool
}

type flattenVariant struct {
	armed bool
	value Opaque
}

type flattenSize struct {
	armed bool
	value uint64
}

// Context is the mutable representation state threaded through every
// encode/decode operation. It generalizes the teacher's cser.Writer/
// cser.Reader pairing (which bundled exactly one fixed split-stream
// format) into a value that can be swapped, restored and temporarily
// overridden mid-traversal.
//
// Successful encode/decode operations must leave Settings unchanged
// (generated bodies save → mutate → restore around individual fields);
// after a failed operation no guarantee is made, and callers typically
// discard the Context or call Reset.
type Context struct {
	// User is an optional, opaque slot higher layers use to pass
	// arbitrary state (e.g. an encryption key) into generated codec
	// bodies without growing the Context type itself.
	User any

	Settings BinSettings

	boolFlatten    flattenBool
	variantFlatten flattenVariant
	sizeFlatten    flattenSize

	// DefaultCompressor/DefaultCipher back modifier.EncodeWithCompression/
	// EncodeWithEncryption when the caller passes a nil per-call config
	// (spec §4.E: "When the config is absent, the transform is selected
	// from a default configured on the context"). Typed as `any` here to
	// avoid an import cycle with package modifier; modifier type-asserts
	// these into its own Compressor/Cipher interfaces.
	DefaultCompressor any
	DefaultCipher     any

	log logrus.FieldLogger
}

// NewContext returns a Context with default settings, matching spec
// §4.B's Context::new().
func NewContext() *Context {
	return &Context{Settings: DefaultBinSettings(), log: logrus.StandardLogger()}
}

// WithSettings returns a Context overriding Settings, matching spec
// §4.B's with_settings(s).
func WithSettings(s BinSettings) *Context {
	c := NewContext()
	c.Settings = s
	return c
}

// WithUserData returns a Context overriding Settings and storing an
// opaque user value, matching spec §4.B's with_user_data(s, p).
func WithUserData(s BinSettings, user any) *Context {
	c := WithSettings(s)
	c.User = user
	return c
}

// Reset restores everything except Settings, which is replaced by s,
// matching spec §4.B's reset(s). Flatten channels are always cleared.
// The logger attached with WithLogger is kept.
func (c *Context) Reset(s BinSettings) {
	c.Settings = s
	c.boolFlatten = flattenBool{}
	c.variantFlatten = flattenVariant{}
	c.sizeFlatten = flattenSize{}
	c.User = nil
	c.DefaultCompressor = nil
	c.DefaultCipher = nil
}

// WithLogger attaches a structured logger used for trace-level
// diagnostics (stream-modifier push/finish, borrow.IntSlice declines,
// flatten arm/consume transitions); borrow.DecodeOrCopy logs its fallback
// decisions to logrus.StandardLogger instead. Grounded in the
// teacher's own sirupsen/logrus dependency; defaults to the standard
// logger when unset.
func (c *Context) WithLogger(log logrus.FieldLogger) *Context {
	c.log = log
	return c
}

func (c *Context) logger() logrus.FieldLogger {
	if c.log == nil {
		return logrus.StandardLogger()
	}
	return c.log
}

// Logger exposes the Context's structured logger to other packages
// (modifier, borrow) that trace their own operations against it.
func (c *Context) Logger() logrus.FieldLogger { return c.logger() }

// SetBoolFlatten arms the bool flatten channel: the next bool read/write
// of matching kind will consume it instead of touching the stream.
func (c *Context) SetBoolFlatten(v bool) {
	c.boolFlatten = flattenBool{armed: true, value: v}
	c.logger().Tracef("bool flatten armed: %v", v)
}

// SetVariantFlatten arms the variant flatten channel.
func (c *Context) SetVariantFlatten(v Opaque) {
	c.variantFlatten = flattenVariant{armed: true, value: v}
	c.logger().Trace("variant flatten armed")
}

// SetSizeFlatten arms the size flatten channel.
func (c *Context) SetSizeFlatten(v uint64) {
	c.sizeFlatten = flattenSize{armed: true, value: v}
	c.logger().Tracef("size flatten armed: %d", v)
}

func (c *Context) BoolFlattenArmed() bool    { return c.boolFlatten.armed }
func (c *Context) VariantFlattenArmed() bool { return c.variantFlatten.armed }
func (c *Context) SizeFlattenArmed() bool    { return c.sizeFlatten.armed }

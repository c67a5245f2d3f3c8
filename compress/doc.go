// Package compress provides optional post-encode compression of an
// already-serialized ChainPack frame, for transports that want it. It
// never touches the wire format the chainpack package produces —
// compression wraps a finished frame, it does not replace any tag,
// varint, or container encoding within it (see the module's Non-goals).
package compress

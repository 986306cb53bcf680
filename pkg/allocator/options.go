package allocator

// Options is passed through to a Proc on every call. No flags are defined by
// the protocol; implementations may assign their own bits.
type Options int64

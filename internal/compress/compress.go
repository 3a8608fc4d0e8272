package compress

// Compress encodes and decodes stored content blobs. Name is persisted
// next to encoded content so reads pick the matching decoder.
type Compress interface {
	Name() string
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

// New returns the codec registered under the given name. Unknown names
// fall back to the identity codec.
func New(name string) Compress {
	switch name {
	case "gzip":
		return NewGZip()
	case "brotli":
		return NewBrotli()
	case "lz4":
		return NewLZ4()
	default:
		return NewNop()
	}
}

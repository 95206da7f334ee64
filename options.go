package tex

// BuilderOption configures a Builder during creation.
//
// Example:
//
//	b := tex.New(64, 64, tex.Black, tex.WithNoiseSeed(42))
type BuilderOption func(*Builder)

// WithNoiseSeed sets the seed used by noise ops appended through
// [Builder.Noise]. The default is [DefaultNoiseSeed]. Ops constructed
// directly carry their own seed and are unaffected.
func WithNoiseSeed(seed int64) BuilderOption {
	return func(b *Builder) {
		b.noiseSeed = seed
	}
}

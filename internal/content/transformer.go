package content

// Transformer rewrites a document, returning the new bytes or an error.
type Transformer interface {
	// Transform rewrites input. Implementations must not retain input.
	Transform(input []byte) ([]byte, error)
}

// TransformerFunc adapts a plain function to [Transformer].
type TransformerFunc func(input []byte) ([]byte, error)

// Transform satisfies [Transformer].
func (fn TransformerFunc) Transform(input []byte) ([]byte, error) { return fn(input) }

// Chain runs transformers in order, feeding each the output of the previous
// one. The first error stops the chain.
func Chain(transformers ...Transformer) TransformerFunc {
	return func(input []byte) (out []byte, err error) {
		out = input
		for _, t := range transformers {
			if out, err = t.Transform(out); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
}

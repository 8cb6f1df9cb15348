package jsonc

// Format parses data and renders it again without deleting anything. The
// result is the canonical single-line form: whitespace and optional commas
// are dropped and member scalars are quoted.
func Format(data []byte, opts ...Option) ([]byte, error) {
	return Prune(data, nil, opts...)
}

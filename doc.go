/*
Package jsonc reads, prunes and re-renders a relaxed, JSON-like text format.

The format looks like JSON but is tolerant: commas between members and
elements are optional, trailing commas are accepted, and quoted text is
kept exactly as written, escape sequences included. Numbers are runs of
decimal digits; true and false are booleans. The library does not validate
the full JSON grammar.

Processing is a short pipeline:

	text -> Tokenize -> tokens -> Parse -> tree -> Delete -> tree -> Marshal -> text

Prune runs the whole pipeline in one call:

	var data = []byte(`{"meta": {"disclaimer": "...", "version": 2}, "items": [1, 2]}`)

	out, err := jsonc.Prune(data, [][]string{{"meta", "disclaimer"}})
	if err != nil {
		// handle error
	}
	// out is {"meta": {"version": "2"},"items": [1,2]}

The tree (package ast) stores every scalar as its unquoted source text.
When marshaled, a scalar that is the value of a member is always quoted,
whatever it was in the source, and elements of arrays are written raw.

Deletion paths are sequences of object keys, consumed by one cursor as the
document is walked in order. The first key may match at any depth; after
a match the following keys are looked up in everything visited next, so
with path a.b the document {"a": {"x": 1}, "b": 2} loses its "b" member.
Arrays are never searched.

Errors are fatal: the first lexical or grammar error aborts the pipeline
and is returned as an *errors.LexError or *errors.GrammarError from the
errors subpackage.
*/
package jsonc

package jsonc_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-jsonc"
	"github.com/KimNorgaard/go-jsonc/errors"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens, err := jsonc.Tokenize([]byte(`{"a": 12}`))
	require.NoError(t, err)

	var types []jsonc.TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	require.Equal(t, []jsonc.TokenType{
		jsonc.LBraceToken, jsonc.QuoteToken, jsonc.WordToken, jsonc.QuoteToken,
		jsonc.ColonToken, jsonc.WhiteSpaceToken, jsonc.NumberToken, jsonc.RBraceToken,
	}, types)

	_, err = jsonc.Tokenize([]byte(`{"a": !}`))
	require.ErrorIs(t, err, errors.ErrLex)
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"object", `{"a": 1}`, `Statement(Pair("a", Value("1")))`},
		{"array root", `[1, {"b": true}]`, `Array(Value("1"), Statement(Pair("b", Value("true"))))`},
		{"surrounding whitespace", "\n\t{}\n", `Statement()`},
		{"escapes kept", `{"k": "a\"b"}`, `Statement(Pair("k", Value("a\\\"b")))`},
		{"missing commas", `{"a": 1 "b": [1 2]}`, `Statement(Pair("a", Value("1")), Pair("b", Array(Value("1"), Value("2"))))`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := jsonc.Parse([]byte(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.expected, root.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		target error
	}{
		{"empty input", ``, errors.ErrGrammar},
		{"scalar root", `"a"`, errors.ErrGrammar},
		{"missing colon", `{"a" 1}`, errors.ErrGrammar},
		{"unterminated object", `{"a": 1`, errors.ErrGrammar},
		{"trailing content", `{} {}`, errors.ErrGrammar},
		{"unmatched character", `{"a": <}`, errors.ErrLex},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := jsonc.Parse([]byte(tc.input))
			require.ErrorIs(t, err, tc.target)
			require.Nil(t, root)
		})
	}
}

func TestDelete(t *testing.T) {
	root, err := jsonc.Parse([]byte(`{"x": {"a": {"b": 1, "c": 2}}}`))
	require.NoError(t, err)

	pruned := jsonc.Delete(root, "a", "b")
	require.Equal(t, `Statement(Pair("x", Statement(Pair("a", Statement(NoOp, Pair("c", Value("2")))))))`, pruned.String())
	require.Same(t, root, jsonc.Delete(root))
}

func TestPrune(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		paths    [][]string
		opts     []jsonc.Option
		expected string
	}{
		{
			name:     "nested member",
			input:    `{"meta": {"disclaimer": "x", "version": 2}, "items": [1, 2]}`,
			paths:    [][]string{{"meta", "disclaimer"}},
			expected: `{"meta": {"version": "2"},"items": [1,2]}`,
		},
		{
			name:     "first key at any depth",
			input:    `{"x": {"a": {"b": 1}}}`,
			paths:    [][]string{{"a", "b"}},
			expected: `{"x": {"a": {}}}`,
		},
		{
			name:     "a match shortens the path for later siblings",
			input:    `{"a": {"x": 1}, "b": 2}`,
			paths:    [][]string{{"a", "b"}},
			expected: `{"a": {"x": "1"}}`,
		},
		{
			name:     "arrays are opaque",
			input:    `{"a": [{"b": 1}]}`,
			paths:    [][]string{{"b"}},
			expected: `{"a": [{"b": "1"}]}`,
		},
		{
			name:     "last member removed",
			input:    `{"a": 1}`,
			paths:    [][]string{{"a"}},
			expected: `{}`,
		},
		{
			name:     "paths apply in order",
			input:    `{"a": {"b": 1, "c": 2}, "d": 3}`,
			paths:    [][]string{{"a", "b"}, {"c"}},
			expected: `{"a": {},"d": "3"}`,
		},
		{
			name:     "no paths",
			input:    `{"a": 1 "b": 2,}`,
			expected: `{"a": "1","b": "2"}`,
		},
		{
			name:     "numbers are quoted",
			input:    `{"n": 5}`,
			opts:     []jsonc.Option{jsonc.Compact()},
			expected: `{"n":"5"}`,
		},
		{
			name:     "booleans are quoted",
			input:    `{"n": true}`,
			opts:     []jsonc.Option{jsonc.Compact()},
			expected: `{"n":"true"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := jsonc.Prune([]byte(tc.input), tc.paths, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.expected, string(out))
		})
	}
}

func TestPruneEmptyPath(t *testing.T) {
	_, err := jsonc.Prune([]byte(`{}`), [][]string{{"a"}, {}})
	require.ErrorIs(t, err, jsonc.ErrEmptyPath)
	require.EqualError(t, err, "path 1: jsonc: empty deletion path")
}

func TestPruneParseError(t *testing.T) {
	out, err := jsonc.Prune([]byte(`{"a": }`), [][]string{{"a"}})
	require.ErrorIs(t, err, errors.ErrGrammar)
	require.Nil(t, out)
}

func TestOptions(t *testing.T) {
	_, err := jsonc.Parse([]byte(`{}`), jsonc.MaxDepth(0))
	require.EqualError(t, err, "jsonc: max depth must be a positive integer")

	_, err = jsonc.Parse([]byte(`{}`), jsonc.Logger(nil))
	require.EqualError(t, err, "jsonc: logger must not be nil")

	_, err = jsonc.Marshal(nil, jsonc.MaxDepth(-1))
	require.Error(t, err)

	_, err = jsonc.Parse([]byte(`{"a": {"b": {}}}`), jsonc.MaxDepth(2))
	require.ErrorIs(t, err, errors.ErrGrammar)

	_, err = jsonc.Parse([]byte(`{"a": {"b": {}}}`), jsonc.MaxDepth(3))
	require.NoError(t, err)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := jsonc.Prune([]byte(`{"a": 1, "b": {"a": 2}}`), [][]string{{"a"}}, jsonc.Logger(logger))
	require.NoError(t, err)

	logs := buf.String()
	require.Contains(t, logs, "tokenized input")
	require.Contains(t, logs, "pairs=3")
	require.Contains(t, logs, "deleted path")
	require.Contains(t, logs, "removed=2")
}

func TestMarshalColor(t *testing.T) {
	root, err := jsonc.Parse([]byte(`{"a": 1}`))
	require.NoError(t, err)

	colored, err := jsonc.Marshal(root, jsonc.WithColor(true))
	require.NoError(t, err)
	require.Contains(t, string(colored), "\x1b[")

	plain, err := jsonc.Marshal(root, jsonc.WithColor(true), jsonc.WithColor(false))
	require.NoError(t, err)
	require.Equal(t, `{"a": "1"}`, string(plain))
}

func TestMarshalTo(t *testing.T) {
	root, err := jsonc.Parse([]byte(`[{"a": "b"}, 3]`))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, jsonc.MarshalTo(&sb, root, jsonc.Compact()))
	require.Equal(t, `[{"a":"b"},3]`, sb.String())
}

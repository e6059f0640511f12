package query

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level string

func (l level) String() string { return "level-" + string(l) }

type brokenLabel struct {
	name *string
}

func (b brokenLabel) String() string { return *b.name }

func TestBuildQueryString(t *testing.T) {
	yes := true
	no := false
	var nilBool *bool
	emptyName := ""

	tests := []struct {
		name     string
		opts     Options
		expected string
	}{
		{
			name:     "no options",
			opts:     nil,
			expected: "",
		},
		{
			name:     "only absent values",
			opts:     Options{{Name: "a", Value: nil}, {Name: "b", Value: ""}, {Name: "c", Value: nilBool}, {Name: "d", Value: []string{}}},
			expected: "",
		},
		{
			name:     "pagination and tags keep caller order",
			opts:     Options{{Name: "page", Value: 2}, {Name: "limit", Value: 5}, {Name: "tags", Value: []string{"a", "b"}}},
			expected: "?page=2&limit=5&tags=a%2Cb",
		},
		{
			name:     "array joined once",
			opts:     Options{{Name: "n", Value: []string{"a", "b", "c"}}},
			expected: "?n=a%2Cb%2Cc",
		},
		{
			name:     "custom delimiter",
			opts:     Options{{Name: "ids", Value: []int{1, 2, 3}, Delimiter: "|"}},
			expected: "?ids=1%7C2%7C3",
		},
		{
			name:     "empty array elements dropped",
			opts:     Options{{Name: "tags", Value: []string{"", "go", "  "}}},
			expected: "?tags=go",
		},
		{
			name:     "booleans",
			opts:     Options{{Name: "remote", Value: &yes}, {Name: "free", Value: &no}, {Name: "archived", Value: false}},
			expected: "?remote=true&free=false&archived=false",
		},
		{
			name:     "already encoded value is not encoded again",
			opts:     Options{{Name: "search", Value: "data%20science"}},
			expected: "?search=data%20science",
		},
		{
			name:     "spaces and reserved characters",
			opts:     Options{{Name: "search", Value: " a&b=c d "}},
			expected: "?search=a%26b%3Dc%20d",
		},
		{
			name:     "pointer to string",
			opts:     Options{{Name: "category", Value: &emptyName}, {Name: "q", Value: ptr("x")}},
			expected: "?q=x",
		},
		{
			name:     "stringer and float",
			opts:     Options{{Name: "level", Value: level("pro")}, {Name: "min_price", Value: 9.5}},
			expected: "?level=level-pro&min_price=9.5",
		},
		{
			name:     "unsupported value degrades to empty",
			opts:     Options{{Name: "page", Value: 1}, {Name: "bad", Value: struct{ X int }{1}}},
			expected: "",
		},
		{
			name:     "non-finite float degrades to empty",
			opts:     Options{{Name: "score", Value: math.NaN()}},
			expected: "",
		},
		{
			name:     "panicking stringer degrades to empty",
			opts:     Options{{Name: "page", Value: 1}, {Name: "level", Value: brokenLabel{}}},
			expected: "",
		},
		{
			name:     "value blank after decoding is skipped",
			opts:     Options{{Name: "q", Value: "%20"}, {Name: "page", Value: 1}, {Name: "search", Value: " %20%09 "}},
			expected: "?page=1",
		},
		{
			name:     "duplicate names keep the last value",
			opts:     Options{{Name: "page", Value: 1}, {Name: "limit", Value: 3}, {Name: "page", Value: 4}},
			expected: "?page=4&limit=3",
		},
		{
			name:     "time is RFC3339",
			opts:     Options{{Name: "from", Value: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}, {Name: "to", Value: time.Time{}}},
			expected: "?from=2024-01-02T03%3A04%3A05Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildQueryString(tt.opts))
		})
	}
}

func TestBuildQueryStringArraySingleKey(t *testing.T) {
	qs := BuildQueryString(Options{{Name: "n", Value: []any{"a", "b", "c"}}})
	p := parse(t, qs)
	assert.Equal(t, []string{"a%2Cb%2Cc"}, p["n"])
}

func TestFromMap(t *testing.T) {
	opts := FromMap(map[string]any{"limit": 10, "page": 1, "empty": nil})
	require.Len(t, opts, 3)
	assert.Equal(t, "empty", opts[0].Name)
	assert.Equal(t, "?limit=10&page=1", BuildQueryString(opts))
}

func TestSafeEncode(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{nil, ""},
		{"", ""},
		{"   ", ""},
		{"hello", "hello"},
		{" hello world ", "hello%20world"},
		{"hello%20world", "hello%20world"},
		{"%20", ""},
		{"%20go%20", "go"},
		{brokenLabel{}, ""},
		{"a,b", "a%2Cb"},
		{"a%2Cb", "a%2Cb"},
		{"a+b", "a%2Bb"},
		{"100%", "100%25"},
		{42, "42"},
		{true, "true"},
		{[]byte("raw"), "raw"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SafeEncode(tt.input), "input %#v", tt.input)
	}
}

func TestSafeEncodeIdempotent(t *testing.T) {
	inputs := []string{"plain", "a b c", "a,b", "x=y&z", "100%", "50%25 off", "~tilde_.-", "a+b", "%41"}
	for _, in := range inputs {
		once := SafeEncode(in)
		assert.Equal(t, once, SafeEncode(once), "input %q", in)
	}
}

func TestSafeNumber(t *testing.T) {
	var nilInt *int
	seven := 7
	tests := []struct {
		name     string
		input    any
		fallback int
		expected int
	}{
		{"non numeric string", "abc", 10, 10},
		{"numeric string", "7", 10, 7},
		{"padded string", " 12 ", 1, 12},
		{"decimal string", "3.9", 1, 3},
		{"empty string", "", 5, 5},
		{"int", 4, 1, 4},
		{"int64", int64(9), 1, 9},
		{"uint", uint(6), 1, 6},
		{"float", 2.7, 1, 2},
		{"NaN", math.NaN(), 3, 3},
		{"Inf", math.Inf(1), 3, 3},
		{"nil", nil, 8, 8},
		{"nil pointer", nilInt, 8, 8},
		{"pointer", &seven, 8, 7},
		{"bool", true, 2, 2},
		{"huge uint", uint64(math.MaxUint64), 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeNumber(tt.input, tt.fallback))
		})
	}
}

func TestAppendArrayParam(t *testing.T) {
	t.Run("string is split, trimmed and rejoined", func(t *testing.T) {
		p := New()
		AppendArrayParam(p, "tags", "a, b ,c", ",")
		assert.Equal(t, "tags=a,b,c", p.Encode())
		assert.Equal(t, 1, p.Len())
	})

	t.Run("slice drops empty elements", func(t *testing.T) {
		p := New()
		AppendArrayParam(p, "tags", []string{"go", "", " web dev "}, "")
		assert.Equal(t, "tags=go,web%20dev", p.Encode())
	})

	t.Run("appends next to existing entries", func(t *testing.T) {
		p := New()
		AppendArrayParam(p, "tags", "a,b", ",")
		AppendArrayParam(p, "tags", "c", ",")
		assert.Equal(t, []string{"a,b", "c"}, p.Values("tags"))
	})

	t.Run("nothing left appends nothing", func(t *testing.T) {
		p := New()
		AppendArrayParam(p, "tags", " , ,", ",")
		AppendArrayParam(p, "tags", nil, ",")
		assert.Equal(t, 0, p.Len())
	})

	t.Run("custom separator", func(t *testing.T) {
		p := New()
		AppendArrayParam(p, "ids", "1; 2;3", ";")
		assert.Equal(t, "ids=1;2;3", p.Encode())
	})

	t.Run("nil target", func(t *testing.T) {
		assert.NotPanics(t, func() { AppendArrayParam(nil, "tags", "a", ",") })
	})
}

func TestPanickingStringer(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, "", BuildQueryString(Options{{Name: "level", Value: brokenLabel{}}}))
	})

	p := New()
	assert.NotPanics(t, func() {
		p.Set("level", brokenLabel{})
		AppendParam(p, "level", brokenLabel{})
		AppendArrayParam(p, "levels", []any{"a", brokenLabel{}}, ",")
	})
	assert.Equal(t, 0, p.Len())
}

func TestAppendParam(t *testing.T) {
	p := New()
	AppendParam(p, "status", "open")
	AppendParam(p, "status", "closed")
	AppendParam(p, "status", "")
	AppendParam(p, "type", []string{"pdf", "", "video"})
	AppendParam(p, "bad", struct{}{})

	assert.Equal(t, "status=open&status=closed&type=pdf&type=video", p.Encode())
	assert.Equal(t, "?status=open&status=closed&type=pdf&type=video", p.String())
}

func TestParamsSetAndGet(t *testing.T) {
	p := New()
	p.Set("page", 1)
	p.Set("q", "a b")
	p.Set("page", "2")
	p.Set("skip", nil)

	v, ok := p.Get("page")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = p.Get("skip")
	assert.False(t, ok)
	assert.Equal(t, "page=2&q=a%20b", p.Encode())

	var empty Params
	assert.Equal(t, "", empty.String())
}

func ptr[T any](v T) *T { return &v }

func parse(t *testing.T, qs string) map[string][]string {
	t.Helper()
	out := map[string][]string{}
	if qs == "" {
		return out
	}
	require.True(t, strings.HasPrefix(qs, "?"))
	for _, part := range strings.Split(qs[1:], "&") {
		key, value, _ := strings.Cut(part, "=")
		out[key] = append(out[key], value)
	}
	return out
}

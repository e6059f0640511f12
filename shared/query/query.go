// Package query builds percent-encoded URL query strings for API requests.
//
// A Params value is the query parameter set of exactly one outgoing request:
// it is filled while that request is built and serialized once. Empty values
// never reach the wire, list values are joined into a single parameter unless
// the caller appends them explicitly, and every value is encoded exactly once
// no matter how often it went through SafeEncode before.
package query

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/edu-platform/educlient/shared/logger"
)

const DefaultDelimiter = ","

// Option is one named entry handed to BuildQueryString.
// Delimiter applies to list values only and defaults to DefaultDelimiter.
type Option struct {
	Name      string
	Value     any
	Delimiter string
}

// Options keeps caller order, which is the order parameters are emitted in.
type Options []Option

// FromMap turns a loose map into Options sorted by name so the output is stable.
func FromMap(m map[string]any) Options {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	opts := make(Options, 0, len(names))
	for _, name := range names {
		opts = append(opts, Option{Name: name, Value: m[name]})
	}
	return opts
}

type pair struct {
	key   string
	value string
}

// Params is an ordered set of encoded key/value pairs.
// The zero value is ready to use.
type Params struct {
	pairs []pair
}

func New() *Params {
	return &Params{}
}

func (p *Params) Len() int {
	return len(p.pairs)
}

// Get returns the first encoded value stored under name.
func (p *Params) Get(name string) (string, bool) {
	key := encodeComponent(strings.TrimSpace(name))
	for _, kv := range p.pairs {
		if kv.key == key {
			return kv.value, true
		}
	}
	return "", false
}

// Values returns every encoded value stored under name, in insertion order.
func (p *Params) Values(name string) []string {
	key := encodeComponent(strings.TrimSpace(name))
	var out []string
	for _, kv := range p.pairs {
		if kv.key == key {
			out = append(out, kv.value)
		}
	}
	return out
}

// Set stores value under name, replacing earlier entries with that name.
// Lists are joined with DefaultDelimiter and encoded as one value.
// Unsupported value kinds are logged and leave the set untouched.
func (p *Params) Set(name string, value any) {
	if err := p.set(name, value, DefaultDelimiter); err != nil {
		logger.Log.Warn("query parameter dropped", "param", name, "error", err)
	}
}

// Encode serializes the set without the leading '?'.
func (p *Params) Encode() string {
	if p == nil || len(p.pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.Grow(len(kv.key) + len(kv.value) + 1)
		b.WriteString(kv.key)
		b.WriteByte('=')
		b.WriteString(kv.value)
	}
	return b.String()
}

// String returns "?k=v&..." or "" for an empty set.
func (p *Params) String() string {
	encoded := p.Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}

func (p *Params) set(name string, value any, delimiter string) (err error) {
	defer recoverValue(&err)
	key := encodeComponent(strings.TrimSpace(name))
	if key == "" {
		return nil
	}
	values, isList, err := flatten(value)
	if err != nil {
		return err
	}

	var encoded string
	if isList {
		if delimiter == "" {
			delimiter = DefaultDelimiter
		}
		kept := nonEmpty(values)
		if len(kept) == 0 {
			return nil
		}
		encoded = SafeEncode(strings.Join(kept, delimiter))
	} else if len(values) == 1 {
		encoded = SafeEncode(values[0])
	}
	if encoded == "" {
		return nil
	}

	p.replace(key, encoded)
	return nil
}

func (p *Params) replace(key, value string) {
	out := p.pairs[:0]
	replaced := false
	for _, kv := range p.pairs {
		if kv.key != key {
			out = append(out, kv)
			continue
		}
		if !replaced {
			out = append(out, pair{key: key, value: value})
			replaced = true
		}
	}
	if !replaced {
		out = append(out, pair{key: key, value: value})
	}
	p.pairs = out
}

func (p *Params) add(name, encodedValue string) {
	key := encodeComponent(strings.TrimSpace(name))
	if key == "" || encodedValue == "" {
		return
	}
	p.pairs = append(p.pairs, pair{key: key, value: encodedValue})
}

// BuildQueryString converts opts into "?k=v&..." or "" when nothing is left.
// nil and empty values are skipped. It never fails: an option whose value
// cannot be represented in a query string is logged and the result degrades
// to "", which the backend treats as an unfiltered request.
func BuildQueryString(opts Options) (out string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Warn("query string dropped", "panic", r)
			out = ""
		}
	}()
	p := New()
	for _, opt := range opts {
		if err := p.set(opt.Name, opt.Value, opt.Delimiter); err != nil {
			logger.Log.Warn("query string dropped", "param", opt.Name, "error", err)
			return ""
		}
	}
	return p.String()
}

// AppendParam appends value under name without touching existing entries.
// A list appends one entry per non-empty element, giving repeated keys.
func AppendParam(target *Params, name string, value any) {
	if target == nil {
		return
	}
	values, _, err := flattenSafe(value)
	if err != nil {
		logger.Log.Warn("query parameter dropped", "param", name, "error", err)
		return
	}
	for _, v := range values {
		target.add(name, SafeEncode(v))
	}
}

// AppendArrayParam appends a single delimited entry under name.
// A string value is first split on sep; either way every piece is trimmed,
// empty pieces are dropped and the rest are encoded one by one before being
// joined with the raw separator. An empty sep means DefaultDelimiter.
func AppendArrayParam(target *Params, name string, value any, sep string) {
	if target == nil {
		return
	}
	if sep == "" {
		sep = DefaultDelimiter
	}
	values, isList, err := flattenSafe(value)
	if err != nil {
		logger.Log.Warn("query parameter dropped", "param", name, "error", err)
		return
	}

	var pieces []string
	if isList {
		pieces = values
	} else if len(values) == 1 {
		pieces = strings.Split(values[0], sep)
	}

	encoded := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if e := SafeEncode(piece); e != "" {
			encoded = append(encoded, e)
		}
	}
	if len(encoded) == 0 {
		return
	}
	target.add(name, strings.Join(encoded, sep))
}

// SafeEncode trims value, undoes one level of percent-encoding and encodes the
// result, so already-encoded input is not encoded twice. nil gives "", and so
// does a value that is blank once decoded.
func SafeEncode(value any) (out string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Warn("query value dropped", "panic", r)
			out = ""
		}
	}()
	if value == nil {
		return ""
	}
	s, ok, err := scalar(reflect.ValueOf(value))
	if err != nil {
		s, ok = fmt.Sprint(value), true
	}
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	decoded, err := url.PathUnescape(s)
	if err != nil {
		// malformed escape such as "100%": treat the input as plain text
		decoded = s
	}
	decoded = strings.TrimSpace(decoded)
	if decoded == "" {
		return ""
	}
	return encodeComponent(decoded)
}

// SafeNumber coerces value to an int, returning fallback for anything that is
// not a finite number or a numeric string. Fractions are truncated.
func SafeNumber(value any, fallback int) int {
	if value == nil {
		return fallback
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fallback
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n > math.MaxInt || n < math.MinInt {
			return fallback
		}
		return int(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return fallback
		}
		return int(n)
	case reflect.Float32, reflect.Float64:
		return floatToInt(rv.Float(), fallback)
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f, fallback)
		}
	}
	return fallback
}

func floatToInt(f float64, fallback int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt || f < math.MinInt {
		return fallback
	}
	return int(f)
}

// encodeComponent escapes everything outside the unreserved set.
// Spaces become %20 rather than '+' so that PathUnescape reverses it exactly.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// flatten returns the string forms of value. isList reports a slice or array
// input. Absent values (nil, nil pointers, zero time) yield no strings.
func flatten(value any) (values []string, isList bool, err error) {
	if value == nil {
		return nil, false, nil
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false, nil
		}
		rv = rv.Elem()
	}

	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
		values = make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, ok, err := scalar(rv.Index(i))
			if err != nil {
				return nil, true, err
			}
			if ok {
				values = append(values, s)
			}
		}
		return values, true, nil
	}

	s, ok, err := scalar(rv)
	if err != nil || !ok {
		return nil, false, err
	}
	return []string{s}, false, nil
}

// flattenSafe is flatten for callers outside set, turning a panicking
// fmt.Stringer into an error.
func flattenSafe(value any) (values []string, isList bool, err error) {
	defer recoverValue(&err)
	return flatten(value)
}

func recoverValue(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("query param value panicked: %v", r)
	}
}

var timeType = reflect.TypeOf(time.Time{})

func scalar(rv reflect.Value) (string, bool, error) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false, nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "", false, nil
	}

	if rv.Type() == timeType {
		t := rv.Interface().(time.Time)
		if t.IsZero() {
			return "", false, nil
		}
		return t.Format(time.RFC3339), true, nil
	}
	if rv.CanInterface() {
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return s.String(), true, nil
		}
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false, fmt.Errorf("unsupported query param value %v", f)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true, nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), true, nil
		}
	}
	return "", false, fmt.Errorf("unsupported query param type %s", rv.Type())
}

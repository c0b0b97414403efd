package source

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
)

// ReadJSON decodes a single JSON value from r into JSON-compatible Go values. Numbers
// become int64 when integral and float64 otherwise. Trailing data after the value is
// an error.
func ReadJSON(r io.Reader, opt Options) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	v, err := jsonValue(dec, opt, tok, nil)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("json: unexpected data after top-level value")
	}
	return v, nil
}

func readJSONValue(dec *json.Decoder, opt Options, path []string) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return jsonValue(dec, opt, tok, path)
}

func jsonValue(dec *json.Decoder, opt Options, tok json.Token, path []string) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readJSONObject(dec, opt, path)
		case '[':
			return readJSONArray(dec, opt, path)
		}
		return nil, fmt.Errorf("json: unexpected delimiter %q at %s", rune(t), pointer(path))
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("json: invalid number %q at %s: %w", t, pointer(path), err)
		}
		return f, nil
	case string, bool, nil:
		return t, nil
	case float64:
		return t, nil
	}
	return nil, fmt.Errorf("json: unexpected token %v at %s", tok, pointer(path))
}

func readJSONObject(dec *json.Decoder, opt Options, path []string) (map[string]any, error) {
	m := map[string]any{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("json: expected object key at %s, got %v", pointer(path), tok)
		}
		if _, dup := m[key]; dup {
			de := &DuplicateKeyError{Key: key, Path: pointer(path)}
			if !opt.AllowDuplicates {
				return nil, de
			}
			if opt.OnDuplicate != nil {
				opt.OnDuplicate(de)
			}
		}
		v, err := readJSONValue(dec, opt, append(path, key))
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
	if err := closing(dec); err != nil {
		return nil, err
	}
	return m, nil
}

func readJSONArray(dec *json.Decoder, opt Options, path []string) ([]any, error) {
	arr := []any{}
	for i := 0; dec.More(); i++ {
		v, err := readJSONValue(dec, opt, append(path, strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if err := closing(dec); err != nil {
		return nil, err
	}
	return arr, nil
}

// closing consumes the delimiter that ends an object or array.
func closing(dec *json.Decoder) error {
	if _, err := dec.Token(); err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

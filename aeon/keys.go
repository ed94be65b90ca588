package aeon

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// keyIndex records the member order of every object in a JSON document,
// keyed by the object's path. Object members drive ID assignment, so
// iteration must follow the document rather than map order.
type keyIndex map[string][]string

const pathSep = "\x1f"

func pathKey(path []string) string {
	return strings.Join(path, pathSep)
}

// indexKeys walks payload once and records the member order of each object.
func indexKeys(payload []byte) (keyIndex, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	idx := make(keyIndex)
	if err := idx.walk(dec, nil); err != nil {
		return nil, err
	}
	return idx, nil
}

func (idx keyIndex) walk(dec *json.Decoder, path []string) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}

	switch delim {
	case '{':
		var keys []string
		seen := make(map[string]bool)
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			name, _ := tok.(string)
			// A repeated member keeps its first position; the decoded
			// value is the last one.
			if !seen[name] {
				seen[name] = true
				keys = append(keys, name)
			}
			if err := idx.walk(dec, append(path, name)); err != nil {
				return err
			}
		}
		idx[pathKey(path)] = keys
	case '[':
		for i := 0; dec.More(); i++ {
			if err := idx.walk(dec, append(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
	}

	// closing delimiter
	_, err = dec.Token()
	return err
}

// keys returns the member names of the object at path in document order.
func (idx keyIndex) keys(path ...string) []string {
	return idx[pathKey(path)]
}

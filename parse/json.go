package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/scala-steward/circe-jackson/node"
)

// JSON parses a single JSON document into a node tree.
func JSON(data []byte) (*node.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	root, err := next(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return root, nil
}

func next(dec *json.Decoder) (*node.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
		}
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return object(dec)
		case '[':
			return array(dec)
		}
		return nil, fmt.Errorf("%w: unexpected %q", ErrParse, t.String())
	case string:
		return node.FromString(t), nil
	case bool:
		return node.FromBool(t), nil
	case json.Number:
		return numberNode(t.String()), nil
	case nil:
		return node.Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}

func object(dec *json.Decoder) (*node.Node, error) {
	obj := node.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrParse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string object key %v", ErrParse, keyTok)
		}
		val, err := next(dec)
		if err != nil {
			return nil, err
		}
		obj.SetField(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	return obj, nil
}

func array(dec *json.Decoder) (*node.Node, error) {
	arr := node.NewArray()
	for dec.More() {
		v, err := next(dec)
		if err != nil {
			return nil, err
		}
		arr.Append(v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	return arr, nil
}

// numberNode keeps the token's digit run exact whenever the node model
// allows it.
func numberNode(text string) *node.Node {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return node.FromLong(i)
	}
	if d, err := node.ParseDecimal(text); err == nil {
		return node.FromDecimal(d)
	}
	f, _ := strconv.ParseFloat(text, 64)
	return node.FromDouble(f)
}

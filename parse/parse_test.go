package parse

import (
	"errors"
	"testing"

	"github.com/scala-steward/circe-jackson/encode"
	"github.com/scala-steward/circe-jackson/node"
)

func TestJSONKeyOrder(t *testing.T) {
	doc, err := JSON([]byte(`{"b": 1, "a": 2, "c": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	keys := make([]string, len(doc.Fields))
	for i := range doc.Fields {
		keys[i] = doc.Fields[i].String
	}
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "a" || keys[2] != "c" {
		t.Errorf("key order = %v, want [b a c]", keys)
	}
}

func TestJSONNumbers(t *testing.T) {
	doc, err := JSON([]byte(`[1, 1.5, 123456789123456789123456789, 1e2147483649]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Values) != 4 {
		t.Fatalf("len = %d", len(doc.Values))
	}
	if !doc.Values[0].IsIntegral() {
		t.Errorf("1 should be a long node")
	}
	if doc.Values[1].Dec == nil {
		t.Errorf("1.5 should be an exact decimal node")
	}
	if got := doc.Values[2].NumberText(); got != "123456789123456789123456789" {
		t.Errorf("big integer digits = %q", got)
	}
	// Exponent beyond the decimal range degrades to a double.
	if doc.Values[3].Float64 == nil {
		t.Errorf("overflowing exponent should become a double node")
	}
}

func TestJSONRoundTripText(t *testing.T) {
	const text = `{"a":[1,true,null,"x"],"n":123456789123456789.123456789}`
	doc, err := JSON([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(doc); got != text {
		t.Errorf("re-encoded = %q, want %q", got, text)
	}
}

func TestJSONErrors(t *testing.T) {
	for _, text := range []string{"", "{", `{"a"}`, "[1,]", "{}{}", "[1] 2"} {
		if _, err := JSON([]byte(text)); !errors.Is(err, ErrParse) {
			t.Errorf("JSON(%q) error = %v, want ErrParse", text, err)
		}
	}
}

func TestYAML(t *testing.T) {
	doc, err := YAML([]byte("b: 1\na: two\nc:\n- true\n- 2.5\n- null\n"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Type != node.ObjectType {
		t.Fatalf("type = %s, want Object", doc.Type)
	}
	keys := make([]string, len(doc.Fields))
	for i := range doc.Fields {
		keys[i] = doc.Fields[i].String
	}
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "a" || keys[2] != "c" {
		t.Errorf("key order = %v, want [b a c]", keys)
	}
	c := node.Get(doc, "c")
	if c == nil || c.Type != node.ArrayType || len(c.Values) != 3 {
		t.Fatalf("c = %v, want a 3-element array", c)
	}
	if c.Values[0].Type != node.BoolType || !c.Values[0].Bool {
		t.Errorf("c[0] should be true")
	}
	if c.Values[1].Float64 == nil {
		t.Errorf("c[1] should be a double node")
	}
	if c.Values[2].Type != node.NullType {
		t.Errorf("c[2] should be null")
	}
}

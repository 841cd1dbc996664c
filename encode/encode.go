package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scala-steward/circe-jackson/node"
)

type EncState struct {
	depth, indent int
	wire          bool

	Color func(node.Type, ColorAttr, string) string
}

func Encode(y *node.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(y, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeSep(w io.Writer, es *EncState, cType node.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}

func applyColor(es *EncState, nodeType node.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType node.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

// Main encode function

func encode(y *node.Node, w io.Writer, es *EncState) error {
	switch y.Type {
	case node.ObjectType:
		return encodeObject(y, w, es)
	case node.ArrayType:
		return encodeArray(y, w, es)
	case node.StringType:
		return encodeString(y, w, es)
	case node.NumberType:
		return encodeNumber(y, w, es)
	case node.BoolType:
		return encodeBool(y, w, es)
	case node.NullType:
		return encodeNull(w, es)
	default:
		return fmt.Errorf("%w: node type %s", ErrEncoding, y.Type)
	}
}

// Object encoding

func encodeObject(y *node.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, node.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, yField := range y.Fields {
		if i > 0 {
			if err := writeSep(w, es, node.ObjectType, ","); err != nil {
				return err
			}
		}
		if !es.wire {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := writeField(w, yField.String, es); err != nil {
			return err
		}
		if err := encode(y.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if !es.wire && len(y.Fields) != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, node.ObjectType, "}")
}

func writeField(w io.Writer, f string, es *EncState) error {
	f = Quote(f)
	sep := ":"
	if es.Color != nil {
		f = applyColor(es, node.ObjectType, FieldColor, f)
		sep = applyColor(es, node.ObjectType, SepColor, sep)
	}
	if !es.wire {
		sep += " "
	}
	return writeString(w, f+sep)
}

// Array encoding

func encodeArray(y *node.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, node.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range y.Values {
		if i > 0 {
			if err := writeSep(w, es, node.ArrayType, ","); err != nil {
				return err
			}
		}
		if !es.wire {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if !es.wire && len(y.Values) != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, node.ArrayType, "]")
}

// Leaf encoding

func encodeString(y *node.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, node.StringType, Quote(y.String)))
}

func encodeNumber(y *node.Node, w io.Writer, es *EncState) error {
	v := y.NumberText()
	if v == "" {
		return fmt.Errorf("%w: number node without numeric payload", ErrEncoding)
	}
	return writeString(w, applyValueColor(es, node.NumberType, v))
}

func encodeBool(y *node.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, node.BoolType, strconv.FormatBool(y.Bool)))
}

func encodeNull(w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, node.NullType, "null"))
}

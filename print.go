package circejackson

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/scala-steward/circe-jackson/encode"
	"github.com/scala-steward/circe-jackson/value"
)

// PrintString renders v as compact JSON text. The encoding itself is done
// by the encode package over ValueToNode's output; this function only owns
// the sink, which is flushed on every exit path.
func PrintString(v *value.Value) (string, error) {
	var sb strings.Builder
	bw := bufio.NewWriter(&sb)
	err := encode.Encode(ValueToNode(v), bw, encode.EncodeWire(true))
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// PrintBytes is PrintString over a growable byte buffer. The returned
// slice is bounded to the UTF-8 bytes actually written.
func PrintBytes(v *value.Value) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	bw := bufio.NewWriter(buf)
	err := encode.Encode(ValueToNode(v), bw, encode.EncodeWire(true))
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package encode

import (
	"bytes"

	"github.com/scala-steward/circe-jackson/node"
)

func MustString(y *node.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(y, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return buf.String()
}

package encode

const hexDigits = "0123456789abcdef"

// Quote returns s as a JSON string literal. Control characters are escaped
// per RFC 8259; everything else, including non-ASCII, passes through as
// UTF-8.
func Quote(s string) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '"':
			buf = append(buf, '\\', '"')
		case b == '\\':
			buf = append(buf, '\\', '\\')
		case b >= 0x20:
			buf = append(buf, b)
		case b == '\n':
			buf = append(buf, '\\', 'n')
		case b == '\r':
			buf = append(buf, '\\', 'r')
		case b == '\t':
			buf = append(buf, '\\', 't')
		case b == '\b':
			buf = append(buf, '\\', 'b')
		case b == '\f':
			buf = append(buf, '\\', 'f')
		default:
			buf = append(buf, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xf])
		}
	}
	return string(append(buf, '"'))
}

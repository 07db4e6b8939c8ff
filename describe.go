package elc

import "strconv"

// Describe renders a fully reduced term the way the teacher's CLI
// (cli/lambdarun/main.go) auto-detects output: try Church numeral, then
// Church boolean, falling back to the raw pretty-printed term (spec §6.3 —
// the canonical output is still the pretty-printed term; this just picks
// the most informative textual form of it).
func Describe(t Term) string {
	if n, ok := DecodeInt(t); ok {
		return strconv.Itoa(n)
	}
	if b, ok := DecodeBool(t); ok {
		return strconv.FormatBool(b)
	}
	return t.String()
}

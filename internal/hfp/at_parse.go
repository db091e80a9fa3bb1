package hfp

import "strings"

// splitAtArgs splits a raw AT-command argument string on commas,
// honoring double-quoted substrings so a quoted field containing a
// comma (e.g. a phone number range or a freeform CSCS charset name)
// is not split apart, per spec §4.3.
func splitAtArgs(raw string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inQuote bool
	)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '"':
			inQuote = !inQuote
		case c == ',' && !inQuote:
			args = append(args, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if inQuote {
		return nil, ErrMalformedAtCommand
	}
	args = append(args, current.String())
	for i, a := range args {
		args[i] = strings.TrimSpace(a)
	}
	return args, nil
}

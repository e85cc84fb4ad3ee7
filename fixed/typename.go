package fixed

import (
	"fmt"
	"strconv"
	"strings"
)

// families maps the ABI type name prefixes to signedness. Order matters:
// "ufixed" must be tried before "fixed".
var families = []struct {
	Prefix string
	Signed bool
}{
	{"ufixed", false},
	{"fixed", true},
}

// TypeName returns the ABI type name of the format, like "fixed128x18" or
// "ufixed32x8".
func (s Schema) TypeName() string {
	prefix := "ufixed"
	if s.Signed {
		prefix = "fixed"
	}

	return fmt.Sprintf("%s%dx%d", prefix, s.TotalBits, s.FractionalBits)
}

// ParseTypeName reads an ABI fixed point type name back into a Schema. The
// schema is validated, so names like "fixed8x8" fail with RangeError.
func ParseTypeName(name string) (s Schema, err error) {
	for _, f := range families {
		if !strings.HasPrefix(name, f.Prefix) {
			continue
		}

		rest := name[len(f.Prefix):]

		i := strings.IndexByte(rest, 'x')
		if i < 0 {
			break
		}

		total, terr := strconv.ParseUint(rest[:i], 10, 16)
		frac, ferr := strconv.ParseUint(rest[i+1:], 10, 16)
		if terr != nil || ferr != nil {
			break
		}

		s = Schema{
			TotalBits:      uint(total),
			FractionalBits: uint(frac),
			Signed:         f.Signed,
		}
		if err := s.Validate(); err != nil {
			return Schema{}, err
		}

		return s, nil
	}

	return Schema{}, Error.New("invalid fixed point type name: %q", name)
}

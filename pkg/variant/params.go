package variant

import (
	"fmt"
	"strconv"
)

// intParam reads key from cfg as an int, the same strconv-from-string-map
// shape the teacher's ecology/elementary Config.FromMap uses, generalized
// into a small helper shared by both variant registrations instead of
// duplicated per-field parsing.
func intParam(cfg map[string]string, key string, def int) (int, error) {
	if cfg == nil {
		return def, nil
	}
	v, ok := cfg[key]
	if !ok {
		return def, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", key, err)
	}
	return parsed, nil
}

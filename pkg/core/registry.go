package core

// Factory constructs a Variant from a string-keyed configuration map, the
// same shape the teacher's Sim Factory used for its cellular automata.
type Factory func(cfg map[string]string) (Variant, error)

var variants = map[string]Factory{}

// Register adds a variant factory under the provided name. Called from each
// variant package's init, mirroring the teacher's core.Register.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	variants[name] = f
}

// Variants exposes the registry of available variant factories.
func Variants() map[string]Factory {
	return variants
}

package service

// curatedTerms holds hand-picked Spanish search phrases for the seed algorithms.
var curatedTerms = map[string][]string{
	"cesar": {
		"cifrado cesar explicación completa español",
		"algoritmo cesar criptografía clásica tutorial",
		"cifrado por desplazamiento julio cesar",
	},
	"vigenere": {
		"cifrado vigenere explicación detallada español",
		"algoritmo vigenere criptografía polialfabética",
		"cifrado vigenere tabla implementación",
	},
	"base64": {
		"codificación base64 explicación completa español",
		"que es base64 como funciona programación",
		"base64 encode decode tutorial ejemplos",
	},
	"rsa": {
		"algoritmo rsa criptografía asimétrica explicación",
		"rsa encryption claves pública privada",
		"como funciona rsa criptografía matemática",
	},
}

// QueryTerms returns the ordered video search phrases for an algorithm.
// Known IDs use curated phrases; anything else gets generic templates
// built around name. The result always has three entries.
func QueryTerms(id, name string) []string {
	if terms, ok := curatedTerms[id]; ok {
		out := make([]string, len(terms))
		copy(out, terms)
		return out
	}
	return []string{
		name + " cifrado explicación completa español",
		"algoritmo " + name + " criptografía tutorial",
		"como funciona " + name + " encryption",
	}
}

package models

// SeedAlgorithms returns the catalog a fresh store starts with.
// A new slice is returned on every call.
func SeedAlgorithms() []Algorithm {
	return []Algorithm{
		{
			ID:                "cesar",
			Name:              "Cifrado César",
			Category:          "Criptografía Clásica",
			Description:       "Cifrado por desplazamiento simple usado por Julio César.",
			EncryptionExample: "HOLA → KROD (clave 3)",
			DecryptionExample: "KROD → HOLA (clave 3)",
			KeyType:           "Número entero",
			Difficulty:        "Principiante",
		},
		{
			ID:                "vigenere",
			Name:              "Cifrado Vigenère",
			Category:          "Criptografía Clásica",
			Description:       "Cifrado polialfabético más seguro que César.",
			EncryptionExample: "HELLO → XMCKL (clave KEY)",
			DecryptionExample: "XMCKL → HELLO (clave KEY)",
			KeyType:           "Palabra clave",
			Difficulty:        "Intermedio",
		},
		{
			ID:                "base64",
			Name:              "Codificación Base64",
			Category:          "Codificación",
			Description:       "Convierte datos binarios en texto ASCII.",
			EncryptionExample: "Hola → SG9sYQ==",
			DecryptionExample: "SG9sYQ== → Hola",
			KeyType:           "No aplica",
			Difficulty:        "Principiante",
		},
		{
			ID:                "rsa",
			Name:              "Algoritmo RSA",
			Category:          "Criptografía Asimétrica",
			Description:       "Cifrado de clave pública ampliamente usado.",
			EncryptionExample: "Mensaje con clave pública",
			DecryptionExample: "Mensaje con clave privada",
			KeyType:           "Par de claves",
			Difficulty:        "Avanzado",
		},
	}
}

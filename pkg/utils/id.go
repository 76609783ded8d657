package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSecret gera um segredo alfanumérico com o tamanho informado
func GenerateSecret(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}

package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const runIDLength = 12

func GenerateID(length int) (string, error) {
	return gonanoid.Generate(characters, length)
}

// GenerateRunID identifica uma execução de job nos logs e nas linhas gravadas
func GenerateRunID() (string, error) {
	return GenerateID(runIDLength)
}

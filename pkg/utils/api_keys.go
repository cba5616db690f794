package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const apiKeyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateAPIKey mints a new key for external writers. The cd_ prefix makes
// keys recognizable in logs and configs.
func GenerateAPIKey() (string, error) {
	key, err := gonanoid.Generate(apiKeyAlphabet, 32)
	if err != nil {
		return "", err
	}
	return "cd_" + key, nil
}

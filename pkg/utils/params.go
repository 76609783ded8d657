package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseID converte um parâmetro de rota em id positivo
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido: %q", raw)
	}
	return id, nil
}

// OptionalInt lê um inteiro opcional da query string; ausente ou vazio retorna nil
func OptionalInt(query url.Values, key string) (*int, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parâmetro %s inválido: %q", key, raw)
	}

	return &value, nil
}

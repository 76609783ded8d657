package utils

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON serializa o corpo e escreve a resposta com o status informado
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// DecodeJSON lê o corpo da requisição para dest
func DecodeJSON(r io.Reader, dest any) error {
	return json.NewDecoder(r).Decode(dest)
}

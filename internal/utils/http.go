package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code and "Content-Type: application/json".
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.NewEmptyDelta(), http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return writeJSONBytes(w, jsonData, statusCode)
}

// WriteRawJSON writes an already encoded JSON document verbatim. It is used
// for passthrough documents that must reach the client byte for byte.
func WriteRawJSON(w http.ResponseWriter, raw []byte, statusCode int) (int, error) {
	return writeJSONBytes(w, raw, statusCode)
}

func writeJSONBytes(w http.ResponseWriter, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

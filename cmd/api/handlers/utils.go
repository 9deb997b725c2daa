package handlers

import (
	"net/http"
)

// respond writes a plain text body with the given status code
func respond(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write([]byte(body))
}

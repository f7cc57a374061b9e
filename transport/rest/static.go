package rest

import (
	"embed"
	"net/http"
)

//go:embed static/tictactoe.html
var staticFiles embed.FS

func pageHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, staticFiles, "static/tictactoe.html")
	})
}

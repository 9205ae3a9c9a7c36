package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

func SetupRoutes(h *ResourceHandler, allowedOrigin string) *mux.Router {
	r := mux.NewRouter()

	r.Use(CORSMiddleware(allowedOrigin))
	r.Use(WideEventMiddleware)
	r.Use(RecoveryMiddleware)

	r.HandleFunc("/api/v1/resources/{resource}/fields", h.Fields).Methods("GET")
	r.HandleFunc("/api/v1/resources/{resource}/fields/{attribute}/sync", h.SyncField).Methods("POST")
	r.HandleFunc("/api/v1/resources/{resource}/filters", h.Filters).Methods("GET")
	r.HandleFunc("/api/v1/resources/{resource}", h.Index).Methods("GET")
	r.HandleFunc("/api/v1/resources/{resource}", h.Create).Methods("POST")
	r.HandleFunc("/api/v1/resources/{resource}/{id}", h.Show).Methods("GET")

	// preflight requests only need the CORS headers
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	return r
}

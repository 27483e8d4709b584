package server

import "net/http"

func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleInfo)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)

	mux.HandleFunc("POST /simulate", s.handleSimulate)

	mux.HandleFunc("GET /scenarios", s.handleScenarioList)
	mux.HandleFunc("GET /scenarios/{name}", s.handleScenarioGet)
	mux.HandleFunc("PUT /scenarios/{name}", s.handleScenarioPut)
	mux.HandleFunc("DELETE /scenarios/{name}", s.handleScenarioDelete)
	mux.HandleFunc("POST /scenarios/{name}/run", s.handleScenarioRun)

	return mux
}

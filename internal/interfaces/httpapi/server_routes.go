package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/stats/team-season", handler.GetTeamSeasonReport)
	mux.HandleFunc("GET /v1/players/{playerID}/career", handler.GetPlayerCareerReport)
	mux.HandleFunc("GET /v1/suggestions/teams", handler.SuggestTeams)
	mux.HandleFunc("GET /v1/suggestions/players", handler.SuggestPlayers)
	mux.HandleFunc("POST /v1/exports/csv", handler.ExportCSV)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.Handle("POST /v1/auth/logout", RequireAuth(verifier, http.HandlerFunc(handler.Logout)))
	mux.Handle("GET /v1/auth/me", RequireAuth(verifier, http.HandlerFunc(handler.Me)))
}

func registerFeedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("GET /v1/feed", handler.ListFeed)
	mux.Handle("POST /v1/feed/posts", RequireAuth(verifier, http.HandlerFunc(handler.CreatePost)))
	mux.Handle("DELETE /v1/feed/posts/{postID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePost)))
	mux.Handle("POST /v1/feed/posts/{postID}/comments", RequireAuth(verifier, http.HandlerFunc(handler.AddComment)))
	mux.Handle("DELETE /v1/feed/comments/{commentID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteComment)))
	mux.Handle("POST /v1/feed/posts/{postID}/likes", RequireAuth(verifier, http.HandlerFunc(handler.ToggleLike)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/admin/users", RequireAdmin(verifier, http.HandlerFunc(handler.ListUsers)))
	mux.Handle("POST /v1/admin/users/{userID}/toggle-admin", RequireAdmin(verifier, http.HandlerFunc(handler.ToggleAdmin)))
	mux.Handle("DELETE /v1/admin/users/{userID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteUser)))
}

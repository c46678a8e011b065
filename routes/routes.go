package routes

import (
	"net/http"
	"path/filepath"

	"authportal/handlers"
	"authportal/middleware"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func servePage(staticDir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(staticDir, name))
	}
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	dashboardHandler *handlers.DashboardHandler,
	auth *middleware.Auth,
	staticDir string,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Static pages
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	})
	mux.HandleFunc("/index.html", servePage(staticDir, "index.html"))
	mux.HandleFunc("/new_user.html", servePage(staticDir, "new_user.html"))
	mux.HandleFunc("/dashboard.html", servePage(staticDir, "dashboard.html"))

	// API routes
	mux.Handle("/api/signup", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Signup))))
	mux.Handle("/api/login", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Login))))

	// Dashboard, behind the auth gate
	mux.Handle("/dashboard", withCORS(auth.RequireAuth(http.HandlerFunc(handlers.RecoverWrapper(dashboardHandler.Dashboard)))))

	return mux
}

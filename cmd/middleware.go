package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"casafront/internal/models"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.errorLog.Output(2, err.Error())
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// requireSession guards the pages that need a signed-in user. A request may
// also carry its own bearer token; that installs it into the shared session
// first, so API calls made on behalf of this request are authenticated.
func (app *application) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if err := app.session.SetToken(token); err != nil {
				writeGuardError(w, http.StatusUnauthorized, "Debes iniciar sesión para acceder a esta página")
				return
			}
		}
		if !app.session.Authenticated() {
			writeGuardError(w, http.StatusUnauthorized, "Debes iniciar sesión para acceder a esta página")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin additionally checks the role claim, mirroring the admin route
// guard: missing session sends to login, wrong role is a plain denial.
func (app *application) requireAdmin(next http.Handler) http.Handler {
	return app.requireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.session.Role() != models.RoleAdmin {
			writeGuardError(w, http.StatusForbidden, "No tienes permisos para acceder a esta página")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}

func writeGuardError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

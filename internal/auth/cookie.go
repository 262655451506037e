package auth

import (
	"net/http"
	"time"
)

// Cookies issues and clears the HttpOnly session cookie. Prod uses
// Secure + SameSite=None so the SPA can call the API cross-site;
// anything else stays Strict over plain HTTP for local testing.
type Cookies struct {
	Name string
	Prod bool
	TTL  time.Duration
}

func (c Cookies) sameSite() http.SameSite {
	if c.Prod {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

func (c Cookies) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Prod,
		SameSite: c.sameSite(),
		Expires:  time.Now().Add(c.TTL),
	})
}

func (c Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Prod,
		SameSite: c.sameSite(),
		MaxAge:   -1,
	})
}

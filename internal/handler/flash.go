package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/Dan9191/custlysis-dashboard/internal/view"
)

const flashCookie = "custlysis_flash"

// setFlash stores a notice for the next page render
func setFlash(w http.ResponseWriter, n view.Notice) {
	raw := n.Level + "\n" + n.Message
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(raw)),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending notice, if any, and clears it
func popFlash(w http.ResponseWriter, r *http.Request) *view.Notice {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	level, msg, ok := strings.Cut(string(raw), "\n")
	if !ok || msg == "" {
		return nil
	}
	switch level {
	case view.NoticeSuccess, view.NoticeError, view.NoticeInfo:
	default:
		level = view.NoticeInfo
	}
	return &view.Notice{Level: level, Message: msg}
}

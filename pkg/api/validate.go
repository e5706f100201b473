package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
)

var validUsername = regexp.MustCompile(`^[\w-]{3,30}$`)

func validUrl(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// badRequest echoes the full violation list back to the caller.
func badRequest(w http.ResponseWriter, violations []string) {
	resp, _ := json.Marshal(map[string][]string{"errors": violations})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	fmt.Fprintln(w, string(resp))
}

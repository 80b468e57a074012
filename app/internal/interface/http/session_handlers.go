package http

import "net/http"

func (a *API) handleStartSession(w http.ResponseWriter, r *http.Request) {
	result, err := a.storefrontSvc.StartSession(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"token":      result.Token,
		"session_id": result.Session.ID,
	})
}

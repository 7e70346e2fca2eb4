package controller

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

func (i *implementation) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

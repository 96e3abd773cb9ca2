// Package health reports that the API is accepting requests.
package health

import (
	"net/http"

	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
)

const msgActive = "API is active"

func Active(w http.ResponseWriter, _ *http.Request) {
	msg := msgActive
	web.RespondOK[struct{}](w, &msg, nil)
}

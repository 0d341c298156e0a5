package parks

import (
	"errors"
	"net/http"

	"github.com/sngm3741/park-finder/api/internal/interfaces/http/common"
	"github.com/sngm3741/park-finder/api/internal/parks/application"
)

const (
	msgInvalidPark   = "Invalid park details"
	msgInvalidReview = "Invalid review details"
)

// writeError maps a service error onto a status code and {"msg": ...} body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var notFound *application.NotFoundError
	if errors.As(err, &notFound) {
		common.WriteMessage(h.logger, w, http.StatusNotFound, notFound.Msg)
		return
	}
	h.logger.Error().
		Err(err).
		Str("op", op).
		Str("path", r.URL.Path).
		Msg("request failed")
	common.WriteMessage(h.logger, w, http.StatusInternalServerError, common.MsgInternalError)
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, msg string, err error) {
	h.logger.Debug().Err(err).Msg(msg)
	common.WriteMessage(h.logger, w, http.StatusBadRequest, msg)
}

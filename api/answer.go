package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cartabinaria/auth/pkg/httputil"
	"github.com/cartabinaria/auth/pkg/middleware"
	"gorm.io/gorm"

	"github.com/cartabinaria/survey/util"
)

// @Summary		Submit an answer
// @Description	Record the caller's answer to a question. A second submission for the same question overwrites the previous value. A missing question id yields ok=false, not an error status.
// @Tags			answer
// @Param			answerReq	body	PutAnswerRequest	true	"Answer data to insert"
// @Produce		json
// @Success		200	{object}	StatusResponse
// @Failure		400	{object}	httputil.ApiError
// @Router			/answers [put]
func PutAnswerHandler(res http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPut {
		httputil.WriteError(res, http.StatusMethodNotAllowed, "invalid method")
		return
	}
	db := util.GetDb()

	var ans PutAnswerRequest
	err := json.NewDecoder(req.Body).Decode(&ans)
	if err != nil {
		httputil.WriteError(res, http.StatusBadRequest, fmt.Sprintf("decode error: %v", err))
		return
	}

	if ans.Question == 0 {
		httputil.WriteData(res, http.StatusOK, StatusResponse{OK: false})
		return
	}

	user := middleware.MustGetUser(req)
	if _, err := util.GetOrCreateUserByID(db, user.ID, user.Username); err != nil {
		slog.With("user", user, "err", err).Error("error while mirroring the user")
		httputil.WriteError(res, http.StatusInternalServerError, "could not insert the answer")
		return
	}

	_, err = util.PutAnswer(db, ans.Question, user.ID, ans.Value, ans.Comment)
	switch err {
	case nil:
		// saved
	case gorm.ErrRecordNotFound:
		httputil.WriteError(res, http.StatusNotFound, "the referenced question does not exist")
		return
	case util.ErrAnswerNoValue, util.ErrAnswerBadValue:
		httputil.WriteError(res, http.StatusBadRequest, err.Error())
		return
	default:
		slog.With("err", err).Error("error while saving the answer")
		httputil.WriteError(res, http.StatusInternalServerError, "could not insert the answer")
		return
	}

	httputil.WriteData(res, http.StatusOK, StatusResponse{OK: true})
}

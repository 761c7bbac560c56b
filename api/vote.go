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

const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// @Summary		Submit a vote
// @Description	Record the caller's like or dislike on a question. Voting again overwrites the previous flag. A missing question id yields ok=false, not an error status.
// @Tags			vote
// @Param			voteReq	body	PutVoteRequest	true	"Vote data to insert"
// @Produce		json
// @Success		200	{object}	StatusResponse
// @Failure		400	{object}	httputil.ApiError
// @Router			/votes [put]
func PutVoteHandler(res http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPut {
		httputil.WriteError(res, http.StatusMethodNotAllowed, "invalid method")
		return
	}
	db := util.GetDb()

	var v PutVoteRequest
	err := json.NewDecoder(req.Body).Decode(&v)
	if err != nil {
		httputil.WriteError(res, http.StatusBadRequest, fmt.Sprintf("decode error: %v", err))
		return
	}

	if v.Question == 0 {
		httputil.WriteData(res, http.StatusOK, StatusResponse{OK: false})
		return
	}

	// an explicit token is required, anything else is rejected
	if v.Value != VoteLike && v.Value != VoteDislike {
		httputil.WriteError(res, http.StatusBadRequest, "the vote value must be either like or dislike")
		return
	}

	user := middleware.MustGetUser(req)
	if _, err := util.GetOrCreateUserByID(db, user.ID, user.Username); err != nil {
		slog.With("user", user, "err", err).Error("error while mirroring the user")
		httputil.WriteError(res, http.StatusInternalServerError, "could not insert the vote")
		return
	}

	_, err = util.PutVote(db, v.Question, user.ID, v.Value == VoteLike)
	switch err {
	case nil:
		// saved
	case gorm.ErrRecordNotFound:
		httputil.WriteError(res, http.StatusNotFound, "the referenced question does not exist")
		return
	default:
		slog.With("err", err).Error("error while saving the vote")
		httputil.WriteError(res, http.StatusInternalServerError, "could not insert the vote")
		return
	}

	httputil.WriteData(res, http.StatusOK, StatusResponse{OK: true})
}

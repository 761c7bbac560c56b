package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cartabinaria/auth/pkg/httputil"
	"github.com/cartabinaria/auth/pkg/middleware"
	"github.com/kataras/muxie"
	"gorm.io/gorm"

	"github.com/cartabinaria/survey/models"
	"github.com/cartabinaria/survey/util"
)

const questionsPerPage = 20

// @Summary		List questions by ranking
// @Description	Return questions ordered by points, descending. Authenticated callers also get their own answer value and vote on each row.
// @Tags			question
// @Param			page	query	int	false	"page number, starting from 1"
// @Produce		json
// @Success		200	{array}		util.RankedQuestion
// @Failure		500	{object}	httputil.ApiError
// @Router			/questions [get]
func QuestionListHandler(weights util.Weights) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			httputil.WriteError(res, http.StatusMethodNotAllowed, "invalid method")
			return
		}
		db := util.GetDb()

		page := 1
		if raw := req.URL.Query().Get("page"); raw != "" {
			if p, err := strconv.Atoi(raw); err == nil && p > 0 {
				page = p
			}
		}
		offset := (page - 1) * questionsPerPage

		var questions []util.RankedQuestion
		var err error
		if user, uerr := middleware.GetUser(req); uerr == nil {
			questions, err = util.RankedQuestionsForUser(db, weights, time.Now(), user.ID, questionsPerPage, offset)
		} else {
			questions, err = util.RankedQuestions(db, weights, time.Now(), questionsPerPage, offset)
		}
		if err != nil {
			slog.With("err", err).Error("could not rank questions")
			httputil.WriteError(res, http.StatusInternalServerError, "could not fetch questions")
			return
		}

		httputil.WriteData(res, http.StatusOK, questions)
	}
}

// @Summary		Create a question
// @Description	Create a new question with a required title and an optional description. Missing fields come back as ok=false with per-field errors.
// @Tags			question
// @Param			questionReq	body	PostQuestionRequest	true	"Question data to insert"
// @Produce		json
// @Success		200	{object}	QuestionResponse
// @Failure		400	{object}	httputil.ApiError
// @Router			/questions [post]
func PostQuestionHandler(res http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		httputil.WriteError(res, http.StatusMethodNotAllowed, "invalid method")
		return
	}
	db := util.GetDb()
	user := middleware.MustGetUser(req)

	var data PostQuestionRequest
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		httputil.WriteError(res, http.StatusBadRequest, "couldn't decode body")
		return
	}

	if _, err := util.GetOrCreateUserByID(db, user.ID, user.Username); err != nil {
		slog.With("user", user, "err", err).Error("error while mirroring the user")
		httputil.WriteError(res, http.StatusInternalServerError, "could not insert the question")
		return
	}

	question, err := util.CreateQuestion(db, user.ID, data.Title, data.Description, time.Now())
	if err == util.ErrQuestionNoTitle {
		// a rejected form is re-rendered, not redirected
		httputil.WriteData(res, http.StatusOK, StatusResponse{
			OK:     false,
			Errors: map[string]string{"title": "this field is required"},
		})
		return
	} else if err != nil {
		slog.With("err", err).Error("error while creating the question")
		httputil.WriteError(res, http.StatusInternalServerError, "could not insert the question")
		return
	}

	httputil.WriteData(res, http.StatusOK, QuestionResponse{
		ID:          question.ID,
		CreatedAt:   question.CreatedAt,
		UpdatedAt:   question.UpdatedAt,
		Created:     question.Created,
		Author:      question.UserID,
		Title:       question.Title,
		Description: question.Description,
	})
}

// @Summary		Get a question
// @Description	Given a question ID, return the question with its computed points
// @Tags			question
// @Param			id	path	string	true	"Question id"
// @Produce		json
// @Success		200	{object}	QuestionResponse
// @Failure		404	{object}	httputil.ApiError
// @Router			/questions/{id} [get]
func GetQuestionHandler(weights util.Weights) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			httputil.WriteError(res, http.StatusMethodNotAllowed, "invalid method")
			return
		}
		db := util.GetDb()
		rawQID := muxie.GetParam(res, "id")

		qID, err := strconv.ParseUint(rawQID, 10, 0)
		if err != nil {
			httputil.WriteError(res, http.StatusBadRequest, "invalid question id")
			return
		}

		var question models.Question
		if err := db.First(&question, uint(qID)).Error; err != nil {
			slog.With("err", err).Error("question not found")
			httputil.WriteError(res, http.StatusNotFound, "question not found")
			return
		}

		points, err := util.QuestionPoints(db, &question, weights, time.Now())
		if err != nil {
			slog.With("err", err).Error("could not compute points")
			httputil.WriteError(res, http.StatusInternalServerError, "could not compute points")
			return
		}

		response := QuestionResponse{
			ID:          question.ID,
			CreatedAt:   question.CreatedAt,
			UpdatedAt:   question.UpdatedAt,
			Created:     question.Created,
			Author:      question.UserID,
			Title:       question.Title,
			Description: question.Description,
			Points:      points,
		}

		if user, uerr := middleware.GetUser(req); uerr == nil {
			var answer models.Answer
			if err := db.Where("question_id = ? and user_id = ?", question.ID, user.ID).
				First(&answer).Error; err == nil {
				response.UserValue = answer.Value
			}
			var vote models.Vote
			if err := db.Where("question_id = ? and user_id = ?", question.ID, user.ID).
				First(&vote).Error; err == nil {
				response.IsLike = &vote.IsLike
			}
		}

		httputil.WriteData(res, http.StatusOK, response)
	}
}

// @Summary		Edit a question
// @Description	Replace the title and description of an existing question
// @Tags			question
// @Param			id			path	string					true	"Question id"
// @Param			questionReq	body	UpdateQuestionRequest	true	"Updated question data"
// @Produce		json
// @Success		200	{object}	QuestionResponse
// @Failure		404	{object}	httputil.ApiError
// @Router			/questions/{id} [patch]
func UpdateQuestionHandler(res http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPatch {
		httputil.WriteError(res, http.StatusMethodNotAllowed, "invalid method")
		return
	}
	db := util.GetDb()
	rawQID := muxie.GetParam(res, "id")

	qID, err := strconv.ParseUint(rawQID, 10, 0)
	if err != nil {
		httputil.WriteError(res, http.StatusBadRequest, "invalid question id")
		return
	}

	var data UpdateQuestionRequest
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		httputil.WriteError(res, http.StatusBadRequest, "couldn't decode body")
		return
	}

	question, err := util.UpdateQuestion(db, uint(qID), data.Title, data.Description)
	if err == util.ErrQuestionNoTitle {
		httputil.WriteData(res, http.StatusOK, StatusResponse{
			OK:     false,
			Errors: map[string]string{"title": "this field is required"},
		})
		return
	} else if err == gorm.ErrRecordNotFound {
		httputil.WriteError(res, http.StatusNotFound, "question not found")
		return
	} else if err != nil {
		slog.With("err", err).Error("error while updating the question")
		httputil.WriteError(res, http.StatusInternalServerError, "could not update the question")
		return
	}

	httputil.WriteData(res, http.StatusOK, QuestionResponse{
		ID:          question.ID,
		CreatedAt:   question.CreatedAt,
		UpdatedAt:   question.UpdatedAt,
		Created:     question.Created,
		Author:      question.UserID,
		Title:       question.Title,
		Description: question.Description,
	})
}

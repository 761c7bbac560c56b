package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/kataras/muxie"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slog"

	"github.com/cartabinaria/auth/pkg/httputil"
	"github.com/cartabinaria/auth/pkg/middleware"
	"github.com/cartabinaria/survey/api"
	_ "github.com/cartabinaria/survey/docs"
	"github.com/cartabinaria/survey/models"
	"github.com/cartabinaria/survey/util"
)

type Config struct {
	Listen     string   `toml:"listen"`
	ClientURLs []string `toml:"client_urls"`

	DbURI   string `toml:"db_uri" required:"true"`
	AuthURI string `toml:"auth_uri" required:"true"`

	Ranking util.Weights `toml:"ranking"`
}

var (
	// Default config values
	config = Config{
		Listen:  "0.0.0.0:3001",
		AuthURI: "http://localhost:3000",
		Ranking: util.Weights{
			Answer:     10,
			Like:       5,
			Dislike:    -3,
			DailyBonus: 20,
		},
	}
)

// @title			Survey API
// @version		1.0
// @description	Backend API for a small survey service: authors post questions, users answer them on a fixed scale and cast like/dislike votes, and questions are ranked by points
// @license.name	AGPL-3.0
// @license.url	https://www.gnu.org/licenses/agpl-3.0.en.html
// @BasePath		/
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: survey <config-file>")
		os.Exit(1)
	}
	err := loadConfig(os.Args[1])
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	err = util.ConnectDb(config.DbURI)
	if err != nil {
		slog.Error("failed to connect to db", "err", err)
		os.Exit(1)
	}
	db := util.GetDb()
	err = db.AutoMigrate(&models.User{}, &models.Question{}, &models.Answer{}, &models.Vote{})
	if err != nil {
		slog.Error("AutoMigrate failed", "err", err)
		os.Exit(1)
	}

	mux := muxie.NewMux()
	authMiddleware, err := middleware.NewAuthMiddleware(config.AuthURI)
	if err != nil {
		slog.Error("failed to create authentication middleware", "err", err)
		os.Exit(1)
	}

	mux.Use(util.NewLoggerMiddleware, httputil.NewCorsMiddleware(config.ClientURLs, true, mux))

	authChain := muxie.Pre(authMiddleware.Handler)
	authOptionalChain := muxie.Pre(authMiddleware.NonBlockingHandler)

	// the ranked list is readable without logging in, creation is not
	mux.Handle("/questions", muxie.Methods().
		Handle("GET", authOptionalChain.ForFunc(api.QuestionListHandler(config.Ranking))).
		Handle("POST", authChain.ForFunc(api.PostQuestionHandler)))
	mux.Handle("/questions/:id", muxie.Methods().
		Handle("GET", authOptionalChain.ForFunc(api.GetQuestionHandler(config.Ranking))).
		Handle("PATCH", authChain.ForFunc(api.UpdateQuestionHandler)))

	// answer and vote submissions, one row per (author, question)
	mux.Handle("/answers", authChain.ForFunc(api.PutAnswerHandler))
	mux.Handle("/votes", authChain.ForFunc(api.PutVoteHandler))

	slog.Info("listening at", "address", config.Listen)
	err = http.ListenAndServe(config.Listen, mux)
	if err != nil {
		slog.Error("failed to serve", "err", err)
	}
}

func loadConfig(path string) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}

	err = toml.NewDecoder(file).Decode(&config)
	if err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("failed to close config file: %w", err)
	}

	// deployment overrides, from a .env file or the environment
	_ = godotenv.Load()
	if uri := os.Getenv("SURVEY_DB_URI"); uri != "" {
		config.DbURI = uri
	}
	if uri := os.Getenv("SURVEY_AUTH_URI"); uri != "" {
		config.AuthURI = uri
	}
	if listen := os.Getenv("SURVEY_LISTEN"); listen != "" {
		config.Listen = listen
	}

	return nil
}

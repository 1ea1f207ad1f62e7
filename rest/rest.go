package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"hilo.cards/server/auth"
	"hilo.cards/server/game"
	"hilo.cards/server/hilo"
	"hilo.cards/server/internal/user"
	"hilo.cards/server/logging"
	"hilo.cards/server/util"
)

var restLogger = log.With().Str("logger_name", "rest::server").Logger()

// UserStore is the slice of the user repository the REST layer needs.
type UserStore interface {
	Save(username string, hashedPassword string) (*user.User, error)
	GetByUsername(username string) (*user.User, error)
}

type Server struct {
	users   UserStore
	manager *game.Manager
	tokens  *auth.TokenAuthority
}

func NewServer(users UserStore, manager *game.Manager, tokens *auth.TokenAuthority) *Server {
	return &Server{
		users:   users,
		manager: manager,
		tokens:  tokens,
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(logging.RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     util.Env.GetCorsAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Token"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(requestID())

	r.POST("/user/new", s.newUser)
	r.POST("/login", s.login)
	r.GET("/game/info", s.gameInfo)
	r.GET("/game/game", s.startRound)
	r.POST("/game/play", s.endRound)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

func RunRestServer(server *Server) {
	r := server.SetupRouter()
	r.Run(fmt.Sprintf(":%d", util.Env.GetHTTPPort()))
}

// authenticate verifies the access token from the Token header and aborts
// the request with a 401 when it is missing or bad.
func (s *Server) authenticate(c *gin.Context) (*auth.Claims, bool) {
	claims, err := s.tokens.Parse(c.GetHeader("Token"))
	if err != nil {
		code := TokenAuthenticationFailed
		if _, missing := err.(auth.MissingTokenError); missing {
			code = MissingAuthenticationToken
		}
		c.JSON(http.StatusUnauthorized, appError{Error: code})
		return nil, false
	}
	return claims, true
}

func (s *Server) newUser(c *gin.Context) {
	var req userIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, appError{Error: MalformedRequest})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		restLogger.Error().Msgf("Unable to hash password. Error: %v", err)
		c.JSON(http.StatusInternalServerError, appError{Error: UnknownError})
		return
	}

	u, err := s.users.Save(req.Username, hashed)
	if err != nil {
		if _, taken := err.(user.UsernameTakenError); taken {
			c.JSON(http.StatusBadRequest, appError{Error: UsernameTaken})
			return
		}
		restLogger.Error().Msgf("Unable to save user. Error: %v", err)
		c.JSON(http.StatusInternalServerError, appError{Error: UnknownError})
		return
	}

	restLogger.Info().Str(logging.PlayerNameKey, u.Username).Msg("New user registered")
	c.JSON(http.StatusCreated, userOut{Username: u.Username})
}

func (s *Server) login(c *gin.Context) {
	var req userIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, appError{Error: MalformedRequest})
		return
	}

	u, err := s.users.GetByUsername(req.Username)
	if err != nil {
		// An unknown username and a wrong password are indistinguishable
		// to the caller.
		c.JSON(http.StatusNotFound, appError{Error: InvalidCredentials})
		return
	}

	if !auth.VerifyPassword(req.Password, u.HashedPassword) {
		c.JSON(http.StatusNotFound, appError{Error: InvalidCredentials})
		return
	}

	token, err := s.tokens.Generate(u.ID, u.Username)
	if err != nil {
		restLogger.Error().Msgf("Unable to generate access token. Error: %v", err)
		c.JSON(http.StatusInternalServerError, appError{Error: UnknownError})
		return
	}

	c.JSON(http.StatusOK, tokenOut{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) gameInfo(c *gin.Context) {
	claims, ok := s.authenticate(c)
	if !ok {
		return
	}

	gs, err := s.manager.CurrentState(claims.UserID)
	if err != nil {
		if _, notFound := err.(game.GameNotFoundError); notFound {
			c.JSON(http.StatusNotFound, appError{Error: GameNotCreated})
			return
		}
		restLogger.Error().Msgf("Unable to load game state. Error: %v", err)
		c.JSON(http.StatusInternalServerError, appError{Error: UnknownError})
		return
	}

	c.JSON(http.StatusOK, toStartOut(gs))
}

func (s *Server) startRound(c *gin.Context) {
	claims, ok := s.authenticate(c)
	if !ok {
		return
	}

	gs, err := s.manager.StartRound(claims.UserID)
	if err != nil {
		switch err.(type) {
		case game.RoundNotEndedError:
			c.JSON(http.StatusUnprocessableEntity, appError{Error: RoundNotEnded})
		case user.NotFoundError:
			c.JSON(http.StatusNotFound, appError{Error: UserNotFound})
		default:
			restLogger.Error().Msgf("Unable to start round. Error: %v", err)
			c.JSON(http.StatusInternalServerError, appError{Error: UnknownError})
		}
		return
	}

	c.JSON(http.StatusCreated, toStartOut(gs))
}

func (s *Server) endRound(c *gin.Context) {
	claims, ok := s.authenticate(c)
	if !ok {
		return
	}

	// The original web client omits the bet for the minimum wager.
	req := playChoicesIn{Bet: 1}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, appError{Error: MalformedRequest})
		return
	}

	prediction, err := hilo.ParsePrediction(req.Prediction)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, appError{Error: MalformedRequest})
		return
	}

	gs, err := s.manager.EndRound(claims.UserID, prediction, req.Bet)
	if err != nil {
		switch err.(type) {
		case game.GameNotFoundError:
			c.JSON(http.StatusNotFound, appError{Error: GameNotCreated})
		case game.RoundNotStartedError:
			c.JSON(http.StatusUnprocessableEntity, appError{Error: RoundNotStarted})
		case hilo.InvalidBetError:
			c.JSON(http.StatusUnprocessableEntity, appError{Error: InvalidBet})
		case hilo.CardComparisonError:
			c.JSON(http.StatusUnprocessableEntity, appError{Error: InvalidCardComparison})
		default:
			restLogger.Error().Msgf("Unable to resolve round. Error: %v", err)
			c.JSON(http.StatusInternalServerError, appError{Error: UnknownError})
		}
		return
	}

	c.JSON(http.StatusOK, toEndOut(gs))
}

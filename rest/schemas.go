package rest

import "hilo.cards/server/hilo"

//
// Error codes surfaced to the web client.
//
const (
	UserNotFound               = "USER_NOT_FOUND"
	GameNotCreated             = "GAME_NOT_CREATED"
	TokenAuthenticationFailed  = "TOKEN_AUTHENTICATION_FAILED"
	MissingAuthenticationToken = "MISSING_AUTHENTICATION_TOKEN"
	UsernameTaken              = "USERNAME_TAKEN"
	RoundNotEnded              = "ROUND_NOT_ENDED"
	RoundNotStarted            = "ROUND_NOT_STARTED"
	InvalidBet                 = "INVALID_BET"
	InvalidCredentials         = "INVALID_CREDENTIALS"
	InvalidCardComparison      = "INVALID_CARD_COMPARISON_ERROR"
	MalformedRequest           = "MALFORMED_REQUEST_ERROR"
	UnknownError               = "UNKNOWN_ERROR_OCCURRED"
)

type appError struct {
	Error string `json:"error"`
}

type userIn struct {
	Username string `json:"username" binding:"required,max=128"`
	Password string `json:"password" binding:"required,max=128"`
}

type userOut struct {
	Username string `json:"username"`
}

type tokenOut struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type playChoicesIn struct {
	Prediction string `json:"prediction" binding:"required"`
	Bet        int    `json:"bet"`
}

type cardOut struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
	Name string `json:"name"`
}

// gameStateStartOut is the projection returned when a round opens; it never
// leaks the deck or the next card.
type gameStateStartOut struct {
	PlayerName string   `json:"player_name"`
	Money      int      `json:"money"`
	Round      int      `json:"round"`
	BaseCard   *cardOut `json:"base_card"`
}

type gameStateEndOut struct {
	gameStateStartOut
	NextCard *cardOut `json:"next_card"`
	Win      *bool    `json:"win"`
}

func toCardOut(card *hilo.Card) *cardOut {
	if card == nil {
		return nil
	}
	return &cardOut{
		Rank: card.Rank,
		Suit: card.Suit,
		Name: card.Name,
	}
}

func toStartOut(gs *hilo.GameState) gameStateStartOut {
	return gameStateStartOut{
		PlayerName: gs.PlayerName,
		Money:      gs.Money,
		Round:      gs.Round,
		BaseCard:   toCardOut(gs.BaseCard),
	}
}

func toEndOut(gs *hilo.GameState) gameStateEndOut {
	return gameStateEndOut{
		gameStateStartOut: toStartOut(gs),
		NextCard:          toCardOut(gs.NextCard),
		Win:               gs.Win,
	}
}

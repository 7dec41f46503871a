package core

import "errors"

// Sentinel errors shared across storage, engine and handlers. Callers
// use errors.Is to map these to not-found responses.
var (
	ErrBotNotFound    = errors.New("bot not found")
	ErrLeagueNotFound = errors.New("league not found")
	ErrTradeNotFound  = errors.New("trade not found")
)

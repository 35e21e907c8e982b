package engine

import (
	"errors"
	"fmt"
)

// ErrTerminalGame is returned when an action is attempted after the hand has concluded
var ErrTerminalGame = errors.New("the hand is over")

// ErrOutOfTurn is returned when the actor is not the one the game is waiting on
var ErrOutOfTurn = errors.New("it is not your turn")

// ErrWrongStage is returned when the action does not belong to the current stage
var ErrWrongStage = errors.New("action is not allowed in the current stage")

// ErrInvalidAmount is returned when a bet or raise is outside of the legal range
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidCardCount is returned when the number of dealt or discarded cards is wrong
var ErrInvalidCardCount = errors.New("invalid card count")

// ErrInvalidCard is returned when a card is not available to deal or discard
var ErrInvalidCard = errors.New("invalid card")

// ErrRedundantFold is returned when a player folds without facing a bet
var ErrRedundantFold = errors.New("you cannot fold when there is nothing to call")

// ErrInsufficientPlayers is returned when a game is created with fewer than two players
var ErrInsufficientPlayers = errors.New("need at least two players")

// ErrInvalidBlindConfig is returned when blinds are unsorted, negative, or outnumber the players
var ErrInvalidBlindConfig = errors.New("invalid blind configuration")

// ErrInvalidConfig is returned for other construction parameter violations
var ErrInvalidConfig = errors.New("invalid game configuration")

// ErrInvalidSeat is returned when a seat does not exist
var ErrInvalidSeat = errors.New("invalid seat")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("need at least two players, got %d", int(p))
}

// Unwrap allows errors.Is(err, ErrInsufficientPlayers)
func (p PlayerCountError) Unwrap() error {
	return ErrInsufficientPlayers
}

// AmountError is returned when a bet or raise is outside of [Min, Max]
type AmountError struct {
	Amount int
	Min    int
	Max    int
}

func (a AmountError) Error() string {
	return fmt.Sprintf("your raise to ${%d} must be between ${%d} and ${%d}", a.Amount, a.Min, a.Max)
}

// Unwrap allows errors.Is(err, ErrInvalidAmount)
func (a AmountError) Unwrap() error {
	return ErrInvalidAmount
}

// CardCountError is returned when the number of supplied cards does not match the stage
type CardCountError struct {
	Want int
	Got  int
}

func (c CardCountError) Error() string {
	return fmt.Sprintf("expected %d cards, got %d", c.Want, c.Got)
}

// Unwrap allows errors.Is(err, ErrInvalidCardCount)
func (c CardCountError) Unwrap() error {
	return ErrInvalidCardCount
}

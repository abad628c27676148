package service

import "errors"

var (
	ErrUnknownCurrency     = errors.New("unknown currency")
	ErrInvalidComplexity   = errors.New("system complexity must be between 1 and 5")
	ErrInvalidInput        = errors.New("inputs must be finite numbers")
	ErrCalculationOverflow = errors.New("inputs produce figures too large to estimate")
	ErrInvalidSignup       = errors.New("invalid waitlist request")
	ErrAlreadySubscribed   = errors.New("email already on the waitlist")
	ErrSubscriberNotSaved  = errors.New("failed to save subscriber")
)

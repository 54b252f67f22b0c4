package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInsufficientCoins = "not enough coins"
	ErrMsgNotClaimable      = "achievement is not claimable"
	ErrMsgCancelled         = "action cancelled"
	ErrMsgUnknownSlice      = "unknown slice"
	ErrMsgUnknownScreen     = "unknown screen"
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgTaskNotFound      = "task not found"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgAchievementIndex  = "achievement not found"
)

// Local guard and lookup errors. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details).
var (
	ErrInsufficientCoins = errors.New(ErrMsgInsufficientCoins)
	ErrNotClaimable      = errors.New(ErrMsgNotClaimable)
	ErrCancelled         = errors.New(ErrMsgCancelled)
	ErrUnknownSlice      = errors.New(ErrMsgUnknownSlice)
	ErrUnknownScreen     = errors.New(ErrMsgUnknownScreen)
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
	ErrTaskNotFound      = errors.New(ErrMsgTaskNotFound)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrAchievementIndex  = errors.New(ErrMsgAchievementIndex)
)

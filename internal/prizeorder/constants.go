package prizeorder

// Listing limits
const (
	PendingPrizesLimit = 50
	OrderedPrizesLimit = 50
)

// Log Messages
const (
	LogMsgCreateOrderCalled = "CreateOrder called"
	LogMsgOrderPlaced       = "Prize order placed"
)

// Error context strings
const (
	ErrContextFailedToGetChance  = "failed to get chance"
	ErrContextFailedToGetAward   = "failed to get award"
	ErrContextFailedToSaveChance = "failed to save chance"
	ErrContextFailedToBeginTx    = "failed to begin claim transaction"
	ErrContextFailedToCommit     = "failed to commit claim transaction"
	ErrContextFailedToFindPrizes = "failed to find prizes"
)

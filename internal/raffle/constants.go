package raffle

// WeightScale is the numerator of the inverse-odds weight mapping. An award
// with probability equal to WeightScale gets weight 1; probability 1 gets
// the full scale.
const WeightScale = 10000

// History query limits
const (
	// ActivityHistoryLimit bounds the per-activity chance listing
	ActivityHistoryLimit = 100

	// WinningHistoryLimit bounds the cross-activity winning listing
	WinningHistoryLimit = 20
)

// Log Messages
const (
	LogMsgParticipateCalled        = "Participate called"
	LogMsgDrawCalled               = "Draw called"
	LogMsgParticipateAndDrawCalled = "ParticipateAndDraw called"
	LogMsgChanceGranted            = "Chance granted"
	LogMsgDrawWon                  = "Draw produced a winner"
	LogMsgDrawLost                 = "Draw produced no winner"
	LogMsgStockRaceLost            = "Selected award sold out during draw"
)

// Error context strings
const (
	ErrContextFailedToGetActivity   = "failed to get activity"
	ErrContextFailedToGetChance     = "failed to get chance"
	ErrContextFailedToCreateChance  = "failed to create chance"
	ErrContextFailedToSaveChance    = "failed to save chance"
	ErrContextFailedToFindAwards    = "failed to find eligible awards"
	ErrContextFailedToBeginTx       = "failed to begin draw transaction"
	ErrContextFailedToDecreaseStock = "failed to decrease award stock"
	ErrContextFailedToCommit        = "failed to commit draw transaction"
	ErrContextFailedToFindChances   = "failed to find chances"
	ErrContextFailedToCountChances  = "failed to count chances"
)

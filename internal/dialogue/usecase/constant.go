package usecase

import "time"

// Pending confirmations and disambiguations expire after this long; a
// reply arriving later is treated as the start of a fresh turn.
const defaultPendingTTL = 10 * time.Minute

const (
	logPrefixHandle  = "dialogue.usecase.Handle"
	logPrefixExecute = "dialogue.usecase.execute"
)

package gnss

import "time"

// Tunables, named and defaulted exactly as the original driver's module
// constants.
const (
	minProductFWVer = 4.04
	minProtocolVer  = 32.01

	bitMaxTries = 3
	bitTimeout  = 10 * time.Second

	cbitTimeout  = 10 * time.Second
	cbitStayTime = 10 * time.Second
	cbitPeriod   = 1000 * time.Second

	ibitWaitAfterRst = 10 * time.Second
	ibitTimeout      = ibitWaitAfterRst + 10*time.Second

	minFilestoreCapacity = 10_000

	pvtPeriod = 5 * time.Second
)

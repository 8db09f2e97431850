package fsm

// Version identifies the notation revision. VersionHex carries the same
// value packed as 0xMMMMmmpp for callers that compare numerically.
const (
	Version    = "0.3.12"
	VersionHex = 0x0003000C
)

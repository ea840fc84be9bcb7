package types

const (
	// ModuleName is the name of the module
	ModuleName = "poll"

	// StoreKey to be used when creating the KVStore
	StoreKey = ModuleName

	// Pong is the constant answer to a ping
	Pong = "PONG"
)

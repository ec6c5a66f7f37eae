package service

// State is the coordinator's view of server reachability. It changes only
// through HandleConnectivityChange, never as a side effect of an individual
// request: a single failed call falls back to the cache but the announced
// state stays whatever the connectivity source last reported.
type State string

const (
	// Online means creates go straight to the server.
	Online State = "online"

	// Offline means creates go to the local pending cache.
	Offline State = "offline"
)

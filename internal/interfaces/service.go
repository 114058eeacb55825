package interfaces

// Service is an interface exposed by the daemon. Start must not block, Stop
// releases the listener and every open client connection.
type Service interface {
	Start() error
	Stop()
}

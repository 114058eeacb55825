package domain

const (
	// FullShare is the sum that all shares of a pool must add up to.
	FullShare = 100
	// MinShare is the smallest share a participant can hold.
	MinShare = 1
)

package utils

import "github.com/google/uuid"

// UUIDGenerator produces ids for JSON-RPC calls, bridge requests and flows.
// Time-ordered v7 ids are preferred so log lines sort naturally.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

package service

import "github.com/google/uuid"

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RecordServiceInterface defines the interface for scope record service
type RecordServiceInterface interface {
	GetRecord(key string) (*RecordResponse, error)
	PutRecord(key string, req *PutRecordRequest) (*RecordResponse, error)
	DeleteRecord(key string) error
}

// AccountServiceInterface defines the interface for account service
type AccountServiceInterface interface {
	Register(req *RegisterRequest) (*SessionResponse, error)
	Login(req *LoginRequest) (*SessionResponse, error)
	SwitchScope(accountID uuid.UUID, req *SwitchScopeRequest) (*AccountResponse, error)
}

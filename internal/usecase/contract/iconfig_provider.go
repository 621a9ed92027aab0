package usecasecontract

import "time"

// IConfigProvider exposes the configuration values usecases read.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetPasswordResetTokenExpiry() time.Duration
}

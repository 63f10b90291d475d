package unblock_date

import "context"

type AvailabilityService interface {
	UnblockDate(ctx context.Context, businessID string, date string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

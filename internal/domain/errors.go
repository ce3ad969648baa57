package domain

import "errors"

var (
	ErrReminderNotFound      = errors.New("reminder not found")
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrConflict              = errors.New("notification slot already exists")
	ErrHorizonExhausted      = errors.New("no availability found within iteration cap")
	ErrInvalidReminder       = errors.New("invalid reminder")
	ErrInvalidSchedule       = errors.New("invalid schedule")
	ErrInvalidResponseStatus = errors.New("invalid response status")
)

package model

import "errors"

var (
	// ErrSubjectNotFound преподаватель отсутствует в индексе расписания
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrInvalidScheduleEntry запись расписания нарушает инварианты
	ErrInvalidScheduleEntry = errors.New("invalid schedule entry")
	ErrRoomNotFound         = errors.New("room not found")
	ErrEntryNotFound        = errors.New("schedule entry not found")
	// ErrAlreadyExists имя аудитории или Telegram ID уже заняты
	ErrAlreadyExists = errors.New("already exists")
)

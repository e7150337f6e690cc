package config

import "time"

const (
	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Catalog cache duration
	CatalogCacheDuration = 1 * time.Hour

	// Rate limit (messages per chat per minute)
	RateLimitPerMinute = 12

	// Pagination
	SessionsPerPage = 5
	StudentsPerPage = 8
	BoardsPerPage   = 6
	ClassesPerPage  = 6
	SubjectsPerPage = 6
	TopicsPerPage   = 6

	// Signup bounds
	MinStudentAge = 5
	MaxStudentAge = 100
)

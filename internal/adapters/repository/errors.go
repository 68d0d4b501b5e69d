package repository

import "errors"

// Sentinel kinds for dataset lookups.
var (
	ErrSeasonNotFound = errors.New("season not found")
	ErrTeamNotFound   = errors.New("team not found")
)

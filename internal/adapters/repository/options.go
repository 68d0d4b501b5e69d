// Package repository defines the dataset store interface and errors.
package repository

import "github.com/okian/pavilion/pkg/logger"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithLogger sets a logger for index-build diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(s *MemStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Centra Plate Authors

package config

import "github.com/centraplate/registry/models"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	// Deployment profiles use either 4- or 6-digit codes.
	if cfg.Otp.CodeLength != 4 && cfg.Otp.CodeLength != models.DefaultOtpLength {
		return ErrInvalidOtpConfigs
	}
	if cfg.Otp.TTL <= 0 {
		return ErrInvalidOtpConfigs
	}
	if cfg.Otp.SweepInterval <= 0 {
		return ErrInvalidOtpConfigs
	}

	return nil
}

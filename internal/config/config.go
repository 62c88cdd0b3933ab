/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

// Package config defines the service configuration, loadable from YAML/JSON
// files and environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/acronis/go-appkit/config"
	"github.com/acronis/go-appkit/httpserver"
	"github.com/acronis/go-appkit/log"

	"github.com/dumppro/leadsvc/internal/ratelimit"
)

// ServiceName is used as the env-vars prefix and the error domain.
const ServiceName = "leadsvc"

// ErrorDomain distinguishes this service's errors in responses.
const ErrorDomain = "LeadService"

// AppConfig is the root configuration object of the service.
type AppConfig struct {
	Server    *httpserver.Config
	Log       *log.Config
	RateLimit *RateLimitConfig
	Storage   *StorageConfig
	Mail      *MailConfig
	CORS      *CORSConfig
}

// NewAppConfig creates a new AppConfig with initialized sections.
func NewAppConfig() *AppConfig {
	return &AppConfig{
		Server:    httpserver.NewConfig(),
		Log:       log.NewConfig(),
		RateLimit: NewRateLimitConfig(),
		Storage:   NewStorageConfig(),
		Mail:      NewMailConfig(),
		CORS:      NewCORSConfig(),
	}
}

// SetProviderDefaults implements config.Config.
func (c *AppConfig) SetProviderDefaults(dp config.DataProvider) {
	config.CallSetProviderDefaultsForFields(c, dp)
}

// Set implements config.Config.
func (c *AppConfig) Set(dp config.DataProvider) error {
	return config.CallSetForFields(c, dp)
}

const cfgKeyPrefixRateLimit = "rateLimit"

const (
	cfgKeyRateLimitContactMaxRequests = "contact.maxRequests"
	cfgKeyRateLimitContactWindow      = "contact.window"
	cfgKeyRateLimitQuoteMaxRequests   = "quote.maxRequests"
	cfgKeyRateLimitQuoteWindow        = "quote.window"
	cfgKeyRateLimitAPIMaxRequests     = "api.maxRequests"
	cfgKeyRateLimitAPIWindow          = "api.window"
)

// Default admission-control policy table.
const (
	defaultContactMaxRequests = 5
	defaultContactWindow      = time.Hour
	defaultQuoteMaxRequests   = 10
	defaultQuoteWindow        = time.Hour
	defaultAPIMaxRequests     = 30
	defaultAPIWindow          = time.Minute
)

// RateLimitConfig holds the per-endpoint admission-control policies.
type RateLimitConfig struct {
	Contact ratelimit.Policy
	Quote   ratelimit.Policy
	API     ratelimit.Policy
}

var _ config.Config = (*RateLimitConfig)(nil)
var _ config.KeyPrefixProvider = (*RateLimitConfig)(nil)

// NewRateLimitConfig creates a new RateLimitConfig.
func NewRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{}
}

// KeyPrefix implements config.KeyPrefixProvider.
func (c *RateLimitConfig) KeyPrefix() string {
	return cfgKeyPrefixRateLimit
}

// SetProviderDefaults implements config.Config.
func (c *RateLimitConfig) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyRateLimitContactMaxRequests, defaultContactMaxRequests)
	dp.SetDefault(cfgKeyRateLimitContactWindow, defaultContactWindow)
	dp.SetDefault(cfgKeyRateLimitQuoteMaxRequests, defaultQuoteMaxRequests)
	dp.SetDefault(cfgKeyRateLimitQuoteWindow, defaultQuoteWindow)
	dp.SetDefault(cfgKeyRateLimitAPIMaxRequests, defaultAPIMaxRequests)
	dp.SetDefault(cfgKeyRateLimitAPIWindow, defaultAPIWindow)
}

// Set implements config.Config.
func (c *RateLimitConfig) Set(dp config.DataProvider) error {
	setPolicy := func(p *ratelimit.Policy, maxReqKey, windowKey string) error {
		var err error
		if p.MaxRequests, err = dp.GetInt(maxReqKey); err != nil {
			return err
		}
		if p.MaxRequests <= 0 {
			return dp.WrapKeyErr(maxReqKey, fmt.Errorf("maxRequests must be positive"))
		}
		if p.Window, err = dp.GetDuration(windowKey); err != nil {
			return err
		}
		if p.Window <= 0 {
			return dp.WrapKeyErr(windowKey, fmt.Errorf("window must be positive"))
		}
		return nil
	}

	if err := setPolicy(&c.Contact, cfgKeyRateLimitContactMaxRequests, cfgKeyRateLimitContactWindow); err != nil {
		return err
	}
	if err := setPolicy(&c.Quote, cfgKeyRateLimitQuoteMaxRequests, cfgKeyRateLimitQuoteWindow); err != nil {
		return err
	}
	return setPolicy(&c.API, cfgKeyRateLimitAPIMaxRequests, cfgKeyRateLimitAPIWindow)
}

const cfgKeyPrefixStorage = "storage"

const cfgKeyStorageDSN = "dsn"

// StorageConfig holds the persistence settings.
// An empty DSN selects the in-memory store (local development).
type StorageConfig struct {
	DSN string
}

var _ config.Config = (*StorageConfig)(nil)
var _ config.KeyPrefixProvider = (*StorageConfig)(nil)

// NewStorageConfig creates a new StorageConfig.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}

// KeyPrefix implements config.KeyPrefixProvider.
func (c *StorageConfig) KeyPrefix() string {
	return cfgKeyPrefixStorage
}

// SetProviderDefaults implements config.Config.
func (c *StorageConfig) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyStorageDSN, "")
}

// Set implements config.Config.
func (c *StorageConfig) Set(dp config.DataProvider) error {
	var err error
	c.DSN, err = dp.GetString(cfgKeyStorageDSN)
	return err
}

const cfgKeyPrefixMail = "mail"

const (
	cfgKeyMailEnabled      = "enabled"
	cfgKeyMailSMTPHost     = "smtp.host"
	cfgKeyMailSMTPPort     = "smtp.port"
	cfgKeyMailSMTPUsername = "smtp.username"
	cfgKeyMailSMTPPassword = "smtp.password" // nolint:gosec // it's a config key, not a credential
	cfgKeyMailFromAddress  = "fromAddress"
	cfgKeyMailAdminEmail   = "adminEmail"
)

const (
	defaultMailSMTPPort    = 587
	defaultMailFromAddress = "noreply@dumppro.com"
	defaultMailAdminEmail  = "admin@dumppro.com"
)

// MailConfig holds the notification mail settings.
type MailConfig struct {
	Enabled      bool
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromAddress  string
	AdminEmail   string
}

var _ config.Config = (*MailConfig)(nil)
var _ config.KeyPrefixProvider = (*MailConfig)(nil)

// NewMailConfig creates a new MailConfig.
func NewMailConfig() *MailConfig {
	return &MailConfig{}
}

// KeyPrefix implements config.KeyPrefixProvider.
func (c *MailConfig) KeyPrefix() string {
	return cfgKeyPrefixMail
}

// SetProviderDefaults implements config.Config.
func (c *MailConfig) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyMailEnabled, false)
	dp.SetDefault(cfgKeyMailSMTPPort, defaultMailSMTPPort)
	dp.SetDefault(cfgKeyMailFromAddress, defaultMailFromAddress)
	dp.SetDefault(cfgKeyMailAdminEmail, defaultMailAdminEmail)
}

// Set implements config.Config.
func (c *MailConfig) Set(dp config.DataProvider) error {
	var err error

	if c.Enabled, err = dp.GetBool(cfgKeyMailEnabled); err != nil {
		return err
	}
	if c.SMTPHost, err = dp.GetString(cfgKeyMailSMTPHost); err != nil {
		return err
	}
	if c.SMTPPort, err = dp.GetInt(cfgKeyMailSMTPPort); err != nil {
		return err
	}
	if c.SMTPUsername, err = dp.GetString(cfgKeyMailSMTPUsername); err != nil {
		return err
	}
	if c.SMTPPassword, err = dp.GetString(cfgKeyMailSMTPPassword); err != nil {
		return err
	}
	if c.FromAddress, err = dp.GetString(cfgKeyMailFromAddress); err != nil {
		return err
	}
	if c.AdminEmail, err = dp.GetString(cfgKeyMailAdminEmail); err != nil {
		return err
	}

	if c.Enabled && c.SMTPHost == "" {
		return dp.WrapKeyErr(cfgKeyMailSMTPHost, fmt.Errorf("smtp host should be set when mail is enabled"))
	}

	return nil
}

const cfgKeyPrefixCORS = "cors"

const cfgKeyCORSAllowedOrigins = "allowedOrigins"

var defaultCORSAllowedOrigins = []string{"https://www.dumppro.com", "https://dumppro.com"}

// CORSConfig holds the allow-list for cross-origin form submissions.
type CORSConfig struct {
	AllowedOrigins []string
}

var _ config.Config = (*CORSConfig)(nil)
var _ config.KeyPrefixProvider = (*CORSConfig)(nil)

// NewCORSConfig creates a new CORSConfig.
func NewCORSConfig() *CORSConfig {
	return &CORSConfig{}
}

// KeyPrefix implements config.KeyPrefixProvider.
func (c *CORSConfig) KeyPrefix() string {
	return cfgKeyPrefixCORS
}

// SetProviderDefaults implements config.Config.
func (c *CORSConfig) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyCORSAllowedOrigins, defaultCORSAllowedOrigins)
}

// Set implements config.Config.
func (c *CORSConfig) Set(dp config.DataProvider) error {
	var err error
	if c.AllowedOrigins, err = dp.GetStringSlice(cfgKeyCORSAllowedOrigins); err != nil {
		return err
	}
	if len(c.AllowedOrigins) == 0 {
		return dp.WrapKeyErr(cfgKeyCORSAllowedOrigins, fmt.Errorf("at least one allowed origin should be set"))
	}
	return nil
}

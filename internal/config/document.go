package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// DocumentConfig controls how invoice documents are produced: the currency
// glyph, the bill number template, and the business profile used when none
// has been saved yet.
type DocumentConfig struct {
	CurrencyGlyph   string           `mapstructure:"currencyGlyph"`
	BillNoTemplate  string           `mapstructure:"billNoTemplate"`
	DefaultBusiness BusinessDefaults `mapstructure:"defaultBusiness"`
}

// BusinessDefaults is the fallback business identity block.
type BusinessDefaults struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
	Phone   string `mapstructure:"phone"`
	Email   string `mapstructure:"email"`
}

func DefaultDocumentConfig() DocumentConfig {
	return DocumentConfig{
		CurrencyGlyph:  "₹",
		BillNoTemplate: "INV-{YYYY}{MM}{DD}-{SEQ4}",
		DefaultBusiness: BusinessDefaults{
			Name: "My Business",
		},
	}
}

// DocumentConfigHolder serves the current document configuration and
// hot-reloads it when the config file changes.
type DocumentConfigHolder struct {
	current atomic.Value // holds DocumentConfig
}

func NewDocumentConfigHolder() (*DocumentConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("billkhata")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/billkhata")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BILLKHATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultDocumentConfig()
	v.SetDefault("document.currencyGlyph", defaults.CurrencyGlyph)
	v.SetDefault("document.billNoTemplate", defaults.BillNoTemplate)
	v.SetDefault("document.defaultBusiness.name", defaults.DefaultBusiness.Name)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg DocumentConfig
	if err := v.UnmarshalKey("document", &cfg); err != nil {
		return nil, err
	}
	if err := validateDocumentConfig(cfg); err != nil {
		return nil, err
	}

	holder := &DocumentConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated DocumentConfig
		if err := v.UnmarshalKey("document", &updated); err != nil {
			log.Printf("[document-config] reload failed: %v", err)
			return
		}
		if err := validateDocumentConfig(updated); err != nil {
			log.Printf("[document-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[document-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *DocumentConfigHolder) Get() DocumentConfig {
	return h.current.Load().(DocumentConfig)
}

func validateDocumentConfig(cfg DocumentConfig) error {
	if strings.TrimSpace(cfg.CurrencyGlyph) == "" {
		return errors.New("document.currencyGlyph cannot be empty")
	}
	if strings.TrimSpace(cfg.BillNoTemplate) == "" {
		return errors.New("document.billNoTemplate cannot be empty")
	}
	return nil
}

// NewStaticDocumentConfigHolder returns a holder pinned to cfg, bypassing
// file discovery. Used by tests.
func NewStaticDocumentConfigHolder(cfg DocumentConfig) *DocumentConfigHolder {
	holder := &DocumentConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), "en.yaml"))
	bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), "ne.yaml"))
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}

// Localize translates a message id for the given language, falling back
// to the provided default when the bundle is not loaded or the message
// is missing.
func Localize(lang, messageID, fallback string) string {
	if bundle == nil {
		return fallback
	}

	msg, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID: messageID,
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jaras-platform/jaras/internal/shared/constants"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

// Language resolves the display language from ?lang= or Accept-Language
// and stores it under constants.ContextKeyLang.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Resolve(c.Query("lang"), c.GetHeader(constants.HeaderAcceptLanguage))
		c.Set(constants.ContextKeyLang, lang)
		c.Header(constants.HeaderContentLang, string(lang))
		c.Next()
	}
}

// LangFrom returns the language stored by Language, or the default.
func LangFrom(c *gin.Context) i18n.Lang {
	if v, ok := c.Get(constants.ContextKeyLang); ok {
		if lang, ok := v.(i18n.Lang); ok {
			return lang
		}
	}
	return i18n.Default
}

package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
)

// BasicAuth сверяет креды запроса со списком клиентов из конфига,
// сравнение за константное время
func BasicAuth(cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range cfg.Auth.BasicClients {
			usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1
			passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1
			if usernameMatch && passwordMatch {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}

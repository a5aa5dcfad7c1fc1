package middleware

import (
	"github.com/propledger/go-fp-rollup/internal/config"
)

type AppMiddleware struct {
	conf config.Config
}

func NewMiddleware(conf config.Config) AppMiddleware {
	return AppMiddleware{conf: conf}
}

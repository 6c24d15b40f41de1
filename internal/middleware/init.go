package middleware

import (
	"fmt"

	"AreejShop/pkg/logger"
	"AreejShop/pkg/token"
)

// Init 初始化所有中间件
func Init() error {
	if token.GetGenerator() == nil {
		return fmt.Errorf("token generator not initialized, call token.Init() first")
	}

	logger.Logger.Info("All middlewares initialized successfully")
	return nil
}

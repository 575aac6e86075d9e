// README: Zap logger initialization; registered globally so helpers can use zap.L().
package infra

import "go.uber.org/zap"

func NewLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

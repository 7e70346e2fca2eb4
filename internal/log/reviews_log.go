package log

import (
	"github.com/project/bookshelf/pkg/logger"
	"go.uber.org/zap"
)

func InfoReview(l *zap.Logger, msg, action string, reviewID int64) {
	logger.MakeInfo(l, msg,
		zap.Int64("review_id", reviewID),
		zap.String("action", action))
}

func ErrorReview(l *zap.Logger, err error, msg, action string, reviewID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.Int64("review_id", reviewID),
		zap.Error(err),
		zap.String("action", action))
}

func InfoBookReview(l *zap.Logger, msg, action string, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.Int64("book_id", bookID),
		zap.String("action", action))
}

func ErrorBookReview(l *zap.Logger, err error, msg, action string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", action))
}

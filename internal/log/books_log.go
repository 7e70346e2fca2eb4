package log

import (
	"github.com/project/bookshelf/pkg/logger"
	"go.uber.org/zap"
)

func InfoBook(l *zap.Logger, msg, action string, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.Int64("book_id", bookID),
		zap.String("action", action))
}

func ErrorBook(l *zap.Logger, err error, msg, action string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", action))
}

func InfoBookTitled(l *zap.Logger, msg, action, title, author string) {
	logger.MakeInfo(l, msg,
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.String("action", action))
}

func ErrorBookTitled(l *zap.Logger, err error, msg, action, title, author string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.Error(err),
		zap.String("action", action))
}

// Package sl дополняет slog мелкими помощниками,
// чтобы поля лога во всём сервисе выглядели одинаково.
package sl

import "log/slog"

// Err упаковывает ошибку в slog.Attr с ключом "error":
//
//	log.Error("failed to read item", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

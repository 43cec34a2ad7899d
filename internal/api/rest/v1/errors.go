package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, keys.ErrKeyPairNotFound):
		return http.StatusNotFound
	case errors.Is(err, keys.ErrKeyPairExists):
		return http.StatusConflict
	case errors.Is(err, cryptoalg.ErrKeyImport),
		errors.Is(err, cryptoalg.ErrEncoding),
		errors.Is(err, cryptoalg.ErrDecryption),
		errors.Is(err, cryptoalg.ErrMessageTooLong),
		errors.Is(err, cryptoalg.ErrInvalidKeySize):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{Message: message})
}

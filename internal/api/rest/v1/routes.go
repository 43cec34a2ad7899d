package v1

import (
	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	aesProcessor cryptoalg.AESProcessor,
	hasher cryptoalg.Hasher,
	rsaProcessor cryptoalg.RSAProcessor,
	keyPairService keys.KeyPairService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Stateless routes
	cryptoHandler := NewCryptoHandler(aesProcessor, hasher, rsaProcessor)
	v1.POST("/hash/md5", cryptoHandler.HashMD5)
	v1.POST("/aes/encrypt", cryptoHandler.EncryptAES)
	v1.POST("/aes/decrypt", cryptoHandler.DecryptAES)
	v1.POST("/keys/convert", cryptoHandler.ConvertKey)
	v1.POST("/keys/extract-public", cryptoHandler.ExtractPublicKey)

	// Key pair routes
	keyHandler := NewKeyHandler(keyPairService)
	v1.POST("/keys", keyHandler.Generate)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)
	v1.POST("/keys/:id/encrypt", keyHandler.Encrypt)
	v1.POST("/keys/:id/decrypt", keyHandler.Decrypt)
	v1.POST("/keys/:id/sign", keyHandler.Sign)
	v1.POST("/keys/:id/verify", keyHandler.Verify)
}

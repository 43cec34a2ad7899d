package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/keyformat"

	"github.com/gin-gonic/gin"
)

// CryptoHandler defines the interface for stateless cryptographic operations
type CryptoHandler interface {
	HashMD5(ctx *gin.Context)
	EncryptAES(ctx *gin.Context)
	DecryptAES(ctx *gin.Context)
	ConvertKey(ctx *gin.Context)
	ExtractPublicKey(ctx *gin.Context)
}

type cryptoHandler struct {
	aesProcessor cryptoalg.AESProcessor
	hasher       cryptoalg.Hasher
	rsaProcessor cryptoalg.RSAProcessor
}

// NewCryptoHandler creates a new CryptoHandler
func NewCryptoHandler(aesProcessor cryptoalg.AESProcessor, hasher cryptoalg.Hasher, rsaProcessor cryptoalg.RSAProcessor) CryptoHandler {
	return &cryptoHandler{
		aesProcessor: aesProcessor,
		hasher:       hasher,
		rsaProcessor: rsaProcessor,
	}
}

type validatable interface {
	Validate() error
}

// bind decodes the JSON body into request and validates it. It writes the 400 response itself.
func bind(ctx *gin.Context, request validatable) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// HashMD5 handles POST /hash/md5
// @Summary Compute an MD5 digest
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body MD5Request true "Input"
// @Success 200 {object} MD5Response
// @Failure 400 {object} ErrorResponse
// @Router /hash/md5 [post]
func (handler *cryptoHandler) HashMD5(ctx *gin.Context) {
	var request MD5Request
	if !bind(ctx, &request) {
		return
	}

	data, err := request.Bytes()
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, MD5Response{Digest: handler.hasher.DigestHex(data)})
}

// EncryptAES handles POST /aes/encrypt
// @Summary Encrypt with AES-128-CBC and the fixed IV
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body AESEncryptRequest true "Key and plaintext"
// @Success 200 {object} AESEncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/encrypt [post]
func (handler *cryptoHandler) EncryptAES(ctx *gin.Context) {
	var request AESEncryptRequest
	if !bind(ctx, &request) {
		return
	}

	key, err := codec.Base64Decode(request.Key)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	data, err := request.Bytes()
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	ciphertext, err := handler.aesProcessor.EncryptBase64(data, key)
	if err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error encrypting data: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, AESEncryptResponse{Ciphertext: ciphertext})
}

// DecryptAES handles POST /aes/decrypt
// @Summary Decrypt AES-128-CBC ciphertext produced with the fixed IV
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body AESDecryptRequest true "Key and ciphertext"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/decrypt [post]
func (handler *cryptoHandler) DecryptAES(ctx *gin.Context) {
	var request AESDecryptRequest
	if !bind(ctx, &request) {
		return
	}

	key, err := codec.Base64Decode(request.Key)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	plaintext, err := handler.aesProcessor.DecryptFromBase64(request.Ciphertext, key)
	if err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error decrypting data: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, NewDataResponse(plaintext))
}

// ConvertKey handles POST /keys/convert
// @Summary Convert an RSA private key between PKCS#1 and PKCS#8
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body ConvertKeyRequest true "Private key and target encoding"
// @Success 200 {object} ConvertKeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys/convert [post]
func (handler *cryptoHandler) ConvertKey(ctx *gin.Context) {
	var request ConvertKeyRequest
	if !bind(ctx, &request) {
		return
	}

	target, err := keyformat.ParseEncoding(request.Target)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	der, err := codec.Base64Decode(request.PrivateKey)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	converted, err := keyformat.Convert(der, target)
	if err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error converting key: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, ConvertKeyResponse{
		PrivateKey: codec.Base64Encode(converted),
		Encoding:   target.String(),
	})
}

// ExtractPublicKey handles POST /keys/extract-public
// @Summary Derive the SPKI public key of an RSA private key
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body ExtractPublicKeyRequest true "Private key"
// @Success 200 {object} PublicKeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys/extract-public [post]
func (handler *cryptoHandler) ExtractPublicKey(ctx *gin.Context) {
	var request ExtractPublicKeyRequest
	if !bind(ctx, &request) {
		return
	}

	der, err := codec.Base64Decode(request.PrivateKey)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	publicKey, err := handler.rsaProcessor.ExtractPublicKey(der)
	if err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error extracting public key: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, PublicKeyResponse{PublicKey: codec.Base64Encode(publicKey)})
}

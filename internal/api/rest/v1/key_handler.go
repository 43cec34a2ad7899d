package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/codec"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDHeader optionally names the owner of generated key pairs
const UserIDHeader = "X-User-ID"

// KeyHandler defines the interface for handling stored key pair operations
type KeyHandler interface {
	Generate(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

type keyHandler struct {
	keyPairService keys.KeyPairService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyPairService keys.KeyPairService) KeyHandler {
	return &keyHandler{
		keyPairService: keyPairService,
	}
}

// userID reads a version 4 owner ID from UserIDHeader and falls back to a random one
func userID(ctx *gin.Context) string {
	if id, err := uuid.Parse(ctx.GetHeader(UserIDHeader)); err == nil && id.Version() == 4 {
		return id.String()
	}
	return uuid.New().String() // TODO(MGTheTrain): extract user id from JWT
}

// Generate handles the POST request to generate and store an RSA key pair
// @Summary Generate an RSA key pair
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyPairRequest false "Key size"
// @Success 201 {object} KeyPairMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyPairRequest
	if ctx.Request.ContentLength != 0 {
		if !bind(ctx, &request) {
			return
		}
	}

	meta, err := handler.keyPairService.Generate(ctx, userID(ctx), request.KeySize)
	if err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error generating key pair: %v", err))
		return
	}

	ctx.JSON(http.StatusCreated, NewKeyPairMetaResponse(meta))
}

// ListMetadata handles the GET request to list key pair metadata
// @Summary List key pair metadata
// @Tags Key
// @Produce json
// @Param userId query string false "Owner"
// @Param keySize query int false "Modulus size in bits"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "date_time_created or key_size"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {array} KeyPairMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeyPairQuery()

	if owner := ctx.Query("userId"); len(owner) > 0 {
		query.UserID = owner
	}

	if keySize := ctx.Query("keySize"); len(keySize) > 0 {
		size, err := strconv.ParseUint(keySize, 10, 32)
		if err != nil {
			abortWithError(ctx, http.StatusBadRequest, "invalid keySize")
			return
		}
		query.KeySize = uint32(size)
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		n, err := strconv.Atoi(limit)
		if err != nil {
			abortWithError(ctx, http.StatusBadRequest, "invalid limit")
			return
		}
		query.Limit = n
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		n, err := strconv.Atoi(offset)
		if err != nil {
			abortWithError(ctx, http.StatusBadRequest, "invalid offset")
			return
		}
		query.Offset = n
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	metas, err := handler.keyPairService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error listing key pairs: %v", err))
		return
	}

	listResponse := []KeyPairMetaResponse{}
	for _, meta := range metas {
		listResponse = append(listResponse, NewKeyPairMetaResponse(meta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to fetch key pair metadata by ID
// @Summary Retrieve key pair metadata by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 200 {object} KeyPairMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	meta, err := handler.keyPairService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error fetching key pair: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, NewKeyPairMetaResponse(meta))
}

// DeleteByID handles the DELETE request to remove a key pair
// @Summary Delete a key pair by ID
// @Tags Key
// @Param id path string true "Key pair ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.keyPairService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error deleting key pair: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Encrypt handles POST /keys/:id/encrypt
// @Summary Encrypt a single block with the public key of a stored key pair
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body EncryptRequest true "Plaintext"
// @Success 200 {object} AESEncryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *keyHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if !bind(ctx, &request) {
		return
	}

	data, err := request.Bytes()
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	ciphertext, err := handler.keyPairService.Encrypt(ctx, ctx.Param("id"), data)
	if err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error encrypting data: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, AESEncryptResponse{Ciphertext: codec.Base64Encode(ciphertext)})
}

// Decrypt handles POST /keys/:id/decrypt
// @Summary Decrypt with the private key of a stored key pair
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body DecryptRequest true "Ciphertext"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *keyHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if !bind(ctx, &request) {
		return
	}

	ciphertext, err := codec.Base64Decode(request.Ciphertext)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	plaintext, err := handler.keyPairService.Decrypt(ctx, ctx.Param("id"), ciphertext)
	if err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error decrypting data: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, NewDataResponse(plaintext))
}

// Sign handles POST /keys/:id/sign
// @Summary Sign with the private key of a stored key pair
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body SignRequest true "Message and digest"
// @Success 200 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/sign [post]
func (handler *keyHandler) Sign(ctx *gin.Context) {
	var request SignRequest
	if !bind(ctx, &request) {
		return
	}

	alg, err := cryptoalg.ParseSignatureAlgorithm(request.Algorithm)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	data, err := request.Bytes()
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	signature, err := handler.keyPairService.Sign(ctx, ctx.Param("id"), data, alg)
	if err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error signing data: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, SignResponse{Signature: codec.Base64Encode(signature)})
}

// Verify handles POST /keys/:id/verify
// @Summary Verify a signature with the public key of a stored key pair
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body VerifyRequest true "Message, signature and digest"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/verify [post]
func (handler *keyHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if !bind(ctx, &request) {
		return
	}

	alg, err := cryptoalg.ParseSignatureAlgorithm(request.Algorithm)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	data, err := request.Bytes()
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	signature, err := codec.Base64Decode(request.Signature)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	valid, err := handler.keyPairService.Verify(ctx, ctx.Param("id"), data, signature, alg)
	if err != nil {
		abortWithError(ctx, statusForError(err), fmt.Sprintf("error verifying signature: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}

//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testKeyPairMeta() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              "2a4c8f2e-7d5b-4e7a-9a43-0d5cf6b0b4a1",
		Algorithm:       keys.AlgorithmRSA,
		KeySize:         2048,
		PublicKey:       "cHVibGlj",
		PrivateKey:      "c2VjcmV0",
		DateTimeCreated: time.Now(),
		UserID:          "5f0d3a3c-3f3e-4a43-8b5c-6e7d4c9a2b11",
	}
}

func idParam(id string) gin.Params {
	return gin.Params{{Key: "id", Value: id}}
}

func TestKeyHandler_Generate_Success(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyHandler(mockService)

	meta := testKeyPairMeta()
	mockService.On("Generate", mock.Anything, mock.AnythingOfType("string"), 2048).Return(meta, nil)

	w := serve(t, handler.Generate, http.MethodPost, `{"key_size": 2048}`, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), meta.ID)
	assert.NotContains(t, w.Body.String(), meta.PrivateKey)
	mockService.AssertExpectations(t)
}

func TestKeyHandler_Generate_UsesUserIDHeader(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyHandler(mockService)

	owner := uuid.New().String()
	mockService.On("Generate", mock.Anything, owner, 0).Return(testKeyPairMeta(), nil)

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/keys", nil)
	require.NoError(t, err)
	req.Header.Set(UserIDHeader, owner)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestKeyHandler_Generate_InvalidKeySize(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyHandler(mockService)

	w := serve(t, handler.Generate, http.MethodPost, `{"key_size": 1000}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestKeyHandler_ListMetadata(t *testing.T) {
	tests := []struct {
		name       string
		rawQuery   string
		wantStatus int
	}{
		{"no filters", "", http.StatusOK},
		{"paged", "limit=10&offset=5&sortBy=key_size&sortOrder=asc", http.StatusOK},
		{"invalid limit", "limit=ten", http.StatusBadRequest},
		{"invalid sort", "sortBy=name", http.StatusBadRequest},
		{"invalid key size", "keySize=1000", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockKeyPairService)
			handler := NewKeyHandler(mockService)
			mockService.On("List", mock.Anything, mock.AnythingOfType("*keys.KeyPairQuery")).
				Return([]*keys.KeyPairMeta{testKeyPairMeta()}, nil)

			w := httptest.NewRecorder()
			req, err := http.NewRequest(http.MethodGet, "/keys?"+tt.rawQuery, nil)
			require.NoError(t, err)
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.ListMetadata(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				list := decode[[]KeyPairMetaResponse](t, w)
				assert.Len(t, list, 1)
			}
		})
	}
}

func TestKeyHandler_GetMetadataByID(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyHandler(mockService)

	meta := testKeyPairMeta()
	mockService.On("GetByID", mock.Anything, meta.ID).Return(meta, nil)
	mockService.On("GetByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("lookup: %w", keys.ErrKeyPairNotFound))

	w := serve(t, handler.GetMetadataByID, http.MethodGet, "", idParam(meta.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, meta.PublicKey, decode[KeyPairMetaResponse](t, w).PublicKey)

	w = serve(t, handler.GetMetadataByID, http.MethodGet, "", idParam("missing"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKeyHandler_DeleteByID(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyHandler(mockService)

	mockService.On("DeleteByID", mock.Anything, "abc").Return(nil)
	mockService.On("DeleteByID", mock.Anything, "boom").Return(errors.New("db down"))

	w := serve(t, handler.DeleteByID, http.MethodDelete, "", idParam("abc"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(t, handler.DeleteByID, http.MethodDelete, "", idParam("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestKeyHandler_EncryptDecrypt(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyHandler(mockService)

	mockService.On("Encrypt", mock.Anything, "abc", []byte("hello")).Return([]byte{1, 2, 3}, nil)
	mockService.On("Decrypt", mock.Anything, "abc", []byte{1, 2, 3}).Return([]byte("hello"), nil)
	mockService.On("Decrypt", mock.Anything, "abc", []byte{9}).
		Return(nil, fmt.Errorf("rsa: %w", cryptoalg.ErrDecryption))

	w := serve(t, handler.Encrypt, http.MethodPost, `{"text":"hello"}`, idParam("abc"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "AQID", decode[AESEncryptResponse](t, w).Ciphertext)

	w = serve(t, handler.Decrypt, http.MethodPost, `{"ciphertext":"AQID"}`, idParam("abc"))
	require.Equal(t, http.StatusOK, w.Code)
	response := decode[DataResponse](t, w)
	assert.Equal(t, "aGVsbG8=", response.Data)
	require.NotNil(t, response.Text)
	assert.Equal(t, "hello", *response.Text)

	w = serve(t, handler.Decrypt, http.MethodPost, `{"ciphertext":"CQ=="}`, idParam("abc"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeyHandler_Encrypt_MessageTooLong(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyHandler(mockService)

	mockService.On("Encrypt", mock.Anything, "abc", mock.Anything).
		Return(nil, fmt.Errorf("rsa: %w", cryptoalg.ErrMessageTooLong))

	w := serve(t, handler.Encrypt, http.MethodPost, `{"data":"AAAA"}`, idParam("abc"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeyHandler_SignVerify(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyHandler(mockService)

	mockService.On("Sign", mock.Anything, "abc", []byte("hello"), cryptoalg.SignatureSHA256).Return([]byte{7}, nil)
	mockService.On("Sign", mock.Anything, "abc", []byte("hello"), cryptoalg.SignatureSHA1).Return([]byte{8}, nil)
	mockService.On("Verify", mock.Anything, "abc", []byte("hello"), []byte{7}, cryptoalg.SignatureSHA256).Return(true, nil)
	mockService.On("Verify", mock.Anything, "abc", []byte("hello"), []byte{8}, cryptoalg.SignatureSHA256).Return(false, nil)

	w := serve(t, handler.Sign, http.MethodPost, `{"text":"hello"}`, idParam("abc"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bw==", decode[SignResponse](t, w).Signature)

	w = serve(t, handler.Sign, http.MethodPost, `{"text":"hello","algorithm":"SHA-1"}`, idParam("abc"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CA==", decode[SignResponse](t, w).Signature)

	w = serve(t, handler.Sign, http.MethodPost, `{"text":"hello","algorithm":"sha-1"}`, idParam("abc"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CA==", decode[SignResponse](t, w).Signature)

	w = serve(t, handler.Sign, http.MethodPost, `{"text":"hello","algorithm":"MD5"}`, idParam("abc"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, handler.Verify, http.MethodPost, `{"text":"hello","signature":"Bw=="}`, idParam("abc"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[VerifyResponse](t, w).Valid)

	w = serve(t, handler.Verify, http.MethodPost, `{"text":"hello","signature":"CA=="}`, idParam("abc"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[VerifyResponse](t, w).Valid)

	mockService.AssertExpectations(t)
}

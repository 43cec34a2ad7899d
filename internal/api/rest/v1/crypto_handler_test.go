//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/MGTheTrain/crypto-interop/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const md5KeyOf123456 = "4QrcOUm6Wau+VuBX8g+IPg=="

func newTestCryptoHandler(t *testing.T) CryptoHandler {
	t.Helper()
	log := testutil.SetupTestLogger(t)

	aesProcessor, err := cryptography.NewAESProcessor(log)
	require.NoError(t, err)
	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	require.NoError(t, err)

	return NewCryptoHandler(aesProcessor, cryptography.NewMD5Hasher(), rsaProcessor)
}

func TestCryptoHandler_HashMD5(t *testing.T) {
	handler := newTestCryptoHandler(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantDigest string
	}{
		{"text", `{"text":"123456"}`, http.StatusOK, "e10adc3949ba59abbe56e057f20f883e"},
		{"data", `{"data":"aGVsbG8="}`, http.StatusOK, "5d41402abc4b2a76b9719d911017c592"},
		{"empty text", `{"text":""}`, http.StatusOK, "d41d8cd98f00b204e9800998ecf8427e"},
		{"both set", `{"text":"a","data":"YQ=="}`, http.StatusBadRequest, ""},
		{"none set", `{}`, http.StatusBadRequest, ""},
		{"invalid base64", `{"data":"not base64!"}`, http.StatusBadRequest, ""},
		{"malformed json", `{"text":`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, handler.HashMD5, http.MethodPost, tt.body, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantDigest, decode[MD5Response](t, w).Digest)
			} else {
				assert.NotEmpty(t, decode[ErrorResponse](t, w).Message)
			}
		})
	}
}

func TestCryptoHandler_AESRoundTrip(t *testing.T) {
	handler := newTestCryptoHandler(t)

	w := serve(t, handler.EncryptAES, http.MethodPost,
		`{"key":"`+md5KeyOf123456+`","text":"`+testutil.InteropAESPlaintext+`"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	ciphertext := decode[AESEncryptResponse](t, w).Ciphertext
	assert.Equal(t, testutil.InteropAESCiphertext, ciphertext)

	w = serve(t, handler.DecryptAES, http.MethodPost,
		jsonBody(t, AESDecryptRequest{Key: md5KeyOf123456, Ciphertext: ciphertext}), nil)
	require.Equal(t, http.StatusOK, w.Code)
	response := decode[DataResponse](t, w)
	require.NotNil(t, response.Text)
	assert.Equal(t, testutil.InteropAESPlaintext, *response.Text)
}

func TestCryptoHandler_DecryptAES_Errors(t *testing.T) {
	handler := newTestCryptoHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing key", `{"ciphertext":"` + testutil.InteropAESCiphertext + `"}`},
		{"wrong key", `{"key":"AAAAAAAAAAAAAAAAAAAAAA==","ciphertext":"` + testutil.InteropAESCiphertext + `"}`},
		{"not a block multiple", `{"key":"` + md5KeyOf123456 + `","ciphertext":"AAEC"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, handler.DecryptAES, http.MethodPost, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCryptoHandler_ConvertKey(t *testing.T) {
	handler := newTestCryptoHandler(t)

	tests := []struct {
		name         string
		privateKey   string
		target       string
		wantStatus   int
		wantKey      string
		wantEncoding string
	}{
		{"pkcs1 to pkcs8", testutil.InteropPKCS1PrivateKey, "pkcs8", http.StatusOK, testutil.InteropPKCS1PrivateKeyAsPKCS8, "PKCS#8"},
		{"pkcs8 to pkcs1", testutil.InteropPKCS8PrivateKey, "PKCS#1", http.StatusOK, testutil.InteropPKCS8PrivateKeyAsPKCS1, "PKCS#1"},
		{"already pkcs8", testutil.InteropPKCS8PrivateKey, "pkcs8", http.StatusOK, testutil.InteropPKCS8PrivateKey, "PKCS#8"},
		{"unknown target", testutil.InteropPKCS8PrivateKey, "pem", http.StatusBadRequest, "", ""},
		{"public key input", testutil.InteropPKCS8PublicKey, "pkcs1", http.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := jsonBody(t, ConvertKeyRequest{PrivateKey: tt.privateKey, Target: tt.target})
			w := serve(t, handler.ConvertKey, http.MethodPost, body, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				response := decode[ConvertKeyResponse](t, w)
				assert.Equal(t, tt.wantKey, response.PrivateKey)
				assert.Equal(t, tt.wantEncoding, response.Encoding)
			}
		})
	}
}

func TestCryptoHandler_ExtractPublicKey(t *testing.T) {
	handler := newTestCryptoHandler(t)

	for _, tc := range []struct{ privateKey, publicKey string }{
		{testutil.InteropPKCS8PrivateKey, testutil.InteropPKCS8PublicKey},
		{testutil.InteropPKCS1PrivateKey, testutil.InteropPKCS1PublicKey},
	} {
		w := serve(t, handler.ExtractPublicKey, http.MethodPost, jsonBody(t, ExtractPublicKeyRequest{PrivateKey: tc.privateKey}), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tc.publicKey, decode[PublicKeyResponse](t, w).PublicKey)
	}

	w := serve(t, handler.ExtractPublicKey, http.MethodPost, `{"private_key":"AAEC"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

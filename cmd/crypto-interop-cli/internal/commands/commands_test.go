//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-interop/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRootCmd(t *testing.T) *cobra.Command {
	t.Helper()
	rootCmd := &cobra.Command{Use: "crypto-interop-cli", SilenceUsage: true, SilenceErrors: true}
	require.NoError(t, InitCodecCommands(rootCmd))
	require.NoError(t, InitAESCommands(rootCmd))
	require.NoError(t, InitRSACommands(rootCmd))
	return rootCmd
}

// execute runs args on a fresh command tree and returns the trimmed stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := newTestRootCmd(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestCodecCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"md5 text", []string{"md5", "--text", "123456"}, "e10adc3949ba59abbe56e057f20f883e"},
		{"md5 empty", []string{"md5", "--text", ""}, "d41d8cd98f00b204e9800998ecf8427e"},
		{"encode base64", []string{"encode", "--text", "hello"}, "aGVsbG8="},
		{"encode hex", []string{"encode", "--format", "hex", "--text", "hello"}, "68656c6c6f"},
		{"decode base64", []string{"decode", "--text", "aGVsbG8="}, "hello"},
		{"decode hex", []string{"decode", "--format", "HEX", "--text", "68656C6C6F"}, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCodecCommands_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"md5"}},
		{"both inputs", []string{"md5", "--text", "a", "--input-file", "x"}},
		{"unknown format", []string{"encode", "--format", "base32", "--text", "a"}},
		{"invalid hex", []string{"decode", "--format", "hex", "--text", "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestAESCommands_InteropVector(t *testing.T) {
	out, err := execute(t, "encrypt-aes", "--password", testutil.InteropAESPassword, "--text", testutil.InteropAESPlaintext)
	require.NoError(t, err)
	assert.Equal(t, testutil.InteropAESCiphertext, out)

	out, err = execute(t, "decrypt-aes", "--password", testutil.InteropAESPassword, "--ciphertext", testutil.InteropAESCiphertext)
	require.NoError(t, err)
	assert.Equal(t, testutil.InteropAESPlaintext, out)

	_, err = execute(t, "decrypt-aes", "--key", "AAAAAAAAAAAAAAAAAAAAAA==", "--ciphertext", testutil.InteropAESCiphertext)
	assert.Error(t, err)
}

func TestAESCommands_KeyFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no key", []string{"encrypt-aes", "--text", "a"}},
		{"key and password", []string{"encrypt-aes", "--key", "AAAA", "--password", "p", "--text", "a"}},
		{"prompt and key", []string{"encrypt-aes", "--prompt-password", "--key", "AAAA", "--text", "a"}},
		{"invalid base64 key", []string{"encrypt-aes", "--key", "%%%", "--text", "a"}},
		{"no ciphertext", []string{"decrypt-aes", "--password", "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestAESCommands_FileRoundTrip(t *testing.T) {
	key, err := execute(t, "generate-aes-key")
	require.NoError(t, err)

	dir := t.TempDir()
	input := writeTempFile(t, "plain.txt", "file contents")
	encrypted := filepath.Join(dir, "cipher.b64")
	decrypted := filepath.Join(dir, "plain.out")

	_, err = execute(t, "encrypt-aes", "--key", key, "--input-file", input, "--output-file", encrypted)
	require.NoError(t, err)
	_, err = execute(t, "decrypt-aes", "--key", key, "--input-file", encrypted, "--output-file", decrypted)
	require.NoError(t, err)

	got, err := os.ReadFile(decrypted)
	require.NoError(t, err)
	assert.Equal(t, "file contents", string(got))
}

func TestRSACommands_InteropVectors(t *testing.T) {
	pkcs8Key := writeTempFile(t, "pkcs8.b64", testutil.InteropPKCS8PrivateKey)
	pkcs1Key := writeTempFile(t, "pkcs1.b64", testutil.InteropPKCS1PrivateKey)
	pkcs1Public := writeTempFile(t, "pkcs1-public.b64", testutil.InteropPKCS1PublicKey)
	message := writeTempFile(t, "message.bin", string(testutil.MustDecodeBase64(t, testutil.InteropMessage)))

	out, err := execute(t, "sign-rsa", "--private-key", pkcs8Key, "--input-file", message)
	require.NoError(t, err)
	assert.Equal(t, testutil.InteropSignatureSHA256, out)

	out, err = execute(t, "sign-rsa", "--private-key", pkcs1Key, "--input-file", message, "--algorithm", "SHA-1")
	require.NoError(t, err)
	assert.Equal(t, testutil.InteropSignatureSHA1, out)

	signature := writeTempFile(t, "sig.b64", testutil.InteropSignatureSHA1)
	out, err = execute(t, "verify-rsa", "--public-key", pkcs1Public, "--input-file", message, "--signature-file", signature, "--algorithm", "SHA1")
	require.NoError(t, err)
	assert.Equal(t, "valid", out)

	out, err = execute(t, "verify-rsa", "--public-key", pkcs1Public, "--input-file", message, "--signature-file", signature)
	assert.Error(t, err)
	assert.Equal(t, "invalid", out)

	ciphertext := writeTempFile(t, "cipher.b64", testutil.InteropCiphertext)
	out, err = execute(t, "decrypt-rsa", "--private-key", pkcs1Key, "--input-file", ciphertext, "--output-file", filepath.Join(t.TempDir(), "plain.bin"))
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, "extract-public-key", "--private-key", pkcs8Key)
	require.NoError(t, err)
	assert.Equal(t, testutil.InteropPKCS8PublicKey, out)

	out, err = execute(t, "convert-key", "--private-key", pkcs1Key, "--to", "pkcs8")
	require.NoError(t, err)
	assert.Equal(t, testutil.InteropPKCS1PrivateKeyAsPKCS8, out)

	out, err = execute(t, "convert-key", "--private-key", pkcs8Key, "--to", "PKCS#1")
	require.NoError(t, err)
	assert.Equal(t, testutil.InteropPKCS8PrivateKeyAsPKCS1, out)
}

func TestRSACommands_GeneratedKeyRoundTrip(t *testing.T) {
	keyDir := t.TempDir()
	out, err := execute(t, "generate-rsa-keys", "--key-size", "1024", "--key-dir", keyDir, "--encoding", "pkcs8")
	require.NoError(t, err)

	paths := strings.Split(out, "\n")
	require.Len(t, paths, 2)
	privateKeyPath, publicKeyPath := paths[0], paths[1]

	privatePEM, err := os.ReadFile(privateKeyPath)
	require.NoError(t, err)
	assert.Contains(t, string(privatePEM), "BEGIN PRIVATE KEY")
	publicPEM, err := os.ReadFile(publicKeyPath)
	require.NoError(t, err)
	assert.Contains(t, string(publicPEM), "BEGIN PUBLIC KEY")

	encrypted := filepath.Join(t.TempDir(), "cipher.b64")
	_, err = execute(t, "encrypt-rsa", "--public-key", publicKeyPath, "--text", "round trip", "--output-file", encrypted)
	require.NoError(t, err)

	out, err = execute(t, "decrypt-rsa", "--private-key", privateKeyPath, "--input-file", encrypted)
	require.NoError(t, err)
	assert.Equal(t, "round trip", out)

	converted := filepath.Join(t.TempDir(), "pkcs1.pem")
	_, err = execute(t, "convert-key", "--private-key", privateKeyPath, "--to", "pkcs1", "--output-file", converted)
	require.NoError(t, err)
	pkcs1PEM, err := os.ReadFile(converted)
	require.NoError(t, err)
	assert.Contains(t, string(pkcs1PEM), "BEGIN RSA PRIVATE KEY")

	signature := filepath.Join(t.TempDir(), "sig.b64")
	_, err = execute(t, "sign-rsa", "--private-key", converted, "--text", "signed", "--output-file", signature)
	require.NoError(t, err)
	out, err = execute(t, "verify-rsa", "--public-key", publicKeyPath, "--text", "signed", "--signature-file", signature)
	require.NoError(t, err)
	assert.Equal(t, "valid", out)
}

func TestRSACommands_Errors(t *testing.T) {
	publicKey := writeTempFile(t, "public.b64", testutil.InteropPKCS1PublicKey)
	tooLong := strings.Repeat("x", 118)

	tests := []struct {
		name string
		args []string
	}{
		{"missing key flag", []string{"sign-rsa", "--text", "a"}},
		{"public key as private", []string{"sign-rsa", "--private-key", publicKey, "--text", "a"}},
		{"unknown digest", []string{"sign-rsa", "--private-key", publicKey, "--text", "a", "--algorithm", "MD5"}},
		{"message too long", []string{"encrypt-rsa", "--public-key", publicKey, "--text", tooLong}},
		{"unsupported key size", []string{"generate-rsa-keys", "--key-size", "1000", "--key-dir", t.TempDir()}},
		{"convert to spki", []string{"convert-key", "--private-key", publicKey, "--to", "spki"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

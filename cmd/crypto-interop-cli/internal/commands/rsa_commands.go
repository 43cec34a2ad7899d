package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/keyformat"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging and an RSA processor.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &RSACommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

func (commandHandler *RSACommandHandler) keyFlag(cmd *cobra.Command, name string) ([]byte, error) {
	path, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if path == "" {
		return nil, fmt.Errorf("--%s is required", name)
	}
	return readKeyFile(path)
}

// GenerateRSAKeysCmd generates an RSA key pair and persists it as PEM files in a selected directory
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	encodingName, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return fmt.Errorf("invalid encoding flag: %w", err)
	}

	encoding, err := keyformat.ParseEncoding(encodingName)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	keyPair, err := commandHandler.rsaProcessor.GenerateKeyPair(ctx, keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	privateKey, err := keyformat.Convert(keyPair.PrivateKey(), encoding)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	uniqueID := uuid.New()

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", uniqueID.String()))
	if err := writeKeyFile(privateKeyFilePath, privateKey, encoding); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", uniqueID.String()))
	if err := writeKeyFile(publicKeyFilePath, keyPair.PublicKey(), cryptoalg.EncodingSPKI); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	commandHandler.logger.Info("Key pair saved at ", privateKeyFilePath, " and ", publicKeyFilePath)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", privateKeyFilePath, publicKeyFilePath)
	return err
}

// EncryptRSACmd encrypts a single block with a public key and writes Base64 ciphertext
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	publicKey, err := commandHandler.keyFlag(cmd, "public-key")
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	plainText, err := readInput(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	encryptedData, err := commandHandler.rsaProcessor.EncryptBase64(plainText, publicKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	return writeOutput(cmd, []byte(encryptedData))
}

// DecryptRSACmd decrypts a file holding Base64 ciphertext
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	privateKey, err := commandHandler.keyFlag(cmd, "private-key")
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}

	encryptedData, err := readBase64File(inputFile)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	decryptedData, err := commandHandler.rsaProcessor.Decrypt(encryptedData, privateKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	return writeOutput(cmd, decryptedData)
}

func signatureAlgorithmFlag(cmd *cobra.Command) (cryptoalg.SignatureAlgorithm, error) {
	name, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		return "", fmt.Errorf("invalid algorithm flag: %w", err)
	}
	return cryptoalg.ParseSignatureAlgorithm(name)
}

// SignRSACmd signs the input and writes the Base64 signature
func (commandHandler *RSACommandHandler) SignRSACmd(cmd *cobra.Command, _ []string) error {
	privateKey, err := commandHandler.keyFlag(cmd, "private-key")
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	alg, err := signatureAlgorithmFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	data, err := readInput(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	signature, err := commandHandler.rsaProcessor.Sign(data, privateKey, alg)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	return writeOutput(cmd, []byte(codec.Base64Encode(signature)))
}

// VerifyRSACmd verifies a Base64 signature and prints "valid" or "invalid"
func (commandHandler *RSACommandHandler) VerifyRSACmd(cmd *cobra.Command, _ []string) error {
	publicKey, err := commandHandler.keyFlag(cmd, "public-key")
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	alg, err := signatureAlgorithmFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	signatureFilePath, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		return fmt.Errorf("invalid signature-file flag: %w", err)
	}

	data, err := readInput(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	signature, err := readBase64File(signatureFilePath)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	valid, err := commandHandler.rsaProcessor.Verify(data, publicKey, signature, alg)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	if !valid {
		commandHandler.logger.Warn("Signature is invalid")
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "invalid")
		if err != nil {
			return err
		}
		return fmt.Errorf("signature verification failed")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return err
}

// ExtractPublicKeyCmd writes the SPKI public key of a private key as PEM
func (commandHandler *RSACommandHandler) ExtractPublicKeyCmd(cmd *cobra.Command, _ []string) error {
	privateKey, err := commandHandler.keyFlag(cmd, "private-key")
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	publicKey, err := commandHandler.rsaProcessor.ExtractPublicKey(privateKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	if outputFile == "" {
		return writeOutput(cmd, []byte(codec.Base64Encode(publicKey)))
	}
	return writeKeyFile(outputFile, publicKey, cryptoalg.EncodingSPKI)
}

// ConvertKeyCmd re-encodes a private key as PKCS#1 or PKCS#8
func (commandHandler *RSACommandHandler) ConvertKeyCmd(cmd *cobra.Command, _ []string) error {
	privateKey, err := commandHandler.keyFlag(cmd, "private-key")
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	targetName, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("invalid to flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	target, err := keyformat.ParseEncoding(targetName)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	converted, err := keyformat.Convert(privateKey, target)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	if outputFile == "" {
		return writeOutput(cmd, []byte(codec.Base64Encode(converted)))
	}
	if err := writeKeyFile(outputFile, converted, target); err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	commandHandler.logger.Info("Converted key saved at ", outputFile)
	return nil
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-rsa-keys",
		Short: "Generate RSA keys",
		RunE:  handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().IntP("key-size", "", cryptoalg.DefaultRSAKeySize, "RSA key size in bits")
	generateRSAKeysCmd.Flags().StringP("key-dir", "", ".", "Directory to store the RSA keys")
	generateRSAKeysCmd.Flags().StringP("encoding", "", "pkcs1", "Private key encoding: pkcs1 or pkcs8")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptRSAFileCmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt a single block using RSA PKCS#1 v1.5, output is Base64",
		RunE:  handler.EncryptRSACmd,
	}
	addInputFlags(encryptRSAFileCmd)
	encryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file (default stdout)")
	encryptRSAFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key")
	rootCmd.AddCommand(encryptRSAFileCmd)

	var decryptRSAFileCmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt Base64 RSA PKCS#1 v1.5 ciphertext",
		RunE:  handler.DecryptRSACmd,
	}
	decryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to a file holding Base64 ciphertext")
	decryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file (default stdout)")
	decryptRSAFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key (PKCS#1 or PKCS#8)")
	rootCmd.AddCommand(decryptRSAFileCmd)

	var signRSAFileCmd = &cobra.Command{
		Use:   "sign-rsa",
		Short: "Sign using RSA PKCS#1 v1.5, output is Base64",
		RunE:  handler.SignRSACmd,
	}
	addInputFlags(signRSAFileCmd)
	signRSAFileCmd.Flags().StringP("output-file", "", "", "Path to signature output file (default stdout)")
	signRSAFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key (PKCS#1 or PKCS#8)")
	signRSAFileCmd.Flags().StringP("algorithm", "", string(cryptoalg.SignatureSHA256), "Digest: SHA-256 or SHA-1")
	rootCmd.AddCommand(signRSAFileCmd)

	var verifyRSAFileCmd = &cobra.Command{
		Use:   "verify-rsa",
		Short: "Verify a Base64 RSA PKCS#1 v1.5 signature",
		RunE:  handler.VerifyRSACmd,
	}
	addInputFlags(verifyRSAFileCmd)
	verifyRSAFileCmd.Flags().StringP("signature-file", "", "", "Path to a file holding the Base64 signature")
	verifyRSAFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key")
	verifyRSAFileCmd.Flags().StringP("algorithm", "", string(cryptoalg.SignatureSHA256), "Digest: SHA-256 or SHA-1")
	rootCmd.AddCommand(verifyRSAFileCmd)

	var extractPublicKeyCmd = &cobra.Command{
		Use:   "extract-public-key",
		Short: "Derive the SPKI public key of an RSA private key",
		RunE:  handler.ExtractPublicKeyCmd,
	}
	extractPublicKeyCmd.Flags().StringP("private-key", "", "", "Path to RSA private key (PKCS#1 or PKCS#8)")
	extractPublicKeyCmd.Flags().StringP("output-file", "", "", "Path to PEM output file (default Base64 on stdout)")
	rootCmd.AddCommand(extractPublicKeyCmd)

	var convertKeyCmd = &cobra.Command{
		Use:   "convert-key",
		Short: "Convert an RSA private key between PKCS#1 and PKCS#8",
		RunE:  handler.ConvertKeyCmd,
	}
	convertKeyCmd.Flags().StringP("private-key", "", "", "Path to RSA private key")
	convertKeyCmd.Flags().StringP("to", "", "pkcs8", "Target encoding: pkcs1 or pkcs8")
	convertKeyCmd.Flags().StringP("output-file", "", "", "Path to PEM output file (default Base64 on stdout)")
	rootCmd.AddCommand(convertKeyCmd)

	return nil
}

package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/logger"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	aesProcessor cryptoalg.AESProcessor
	hasher       cryptoalg.Hasher
	logger       logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with
// configured logger and AES processor.
func NewAESCommandHandler() (*AESCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	return &AESCommandHandler{
		aesProcessor: aesProcessor,
		hasher:       cryptography.NewMD5Hasher(),
		logger:       loggerInstance,
	}, nil
}

// key resolves the symmetric key from --key (Base64), --password or --prompt-password (MD5 digest of the password)
func (commandHandler *AESCommandHandler) key(cmd *cobra.Command) ([]byte, error) {
	encodedKey, err := cmd.Flags().GetString("key")
	if err != nil {
		return nil, fmt.Errorf("invalid key flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return nil, fmt.Errorf("invalid password flag: %w", err)
	}
	prompt, err := cmd.Flags().GetBool("prompt-password")
	if err != nil {
		return nil, fmt.Errorf("invalid prompt-password flag: %w", err)
	}

	if prompt {
		if encodedKey != "" || password != "" {
			return nil, fmt.Errorf("--prompt-password cannot be combined with --key or --password")
		}
		password, err = readPassword(cmd)
		if err != nil {
			return nil, err
		}
		if password == "" {
			return nil, fmt.Errorf("empty password")
		}
	}

	switch {
	case encodedKey != "" && password != "":
		return nil, fmt.Errorf("--key and --password are mutually exclusive")
	case encodedKey != "":
		return codec.Base64Decode(encodedKey)
	case password != "":
		return commandHandler.hasher.DigestString(password), nil
	default:
		return nil, fmt.Errorf("one of --key or --password is required")
	}
}

// GenerateAESKeyCmd prints a random Base64 AES-128 key
func (commandHandler *AESCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) error {
	key, err := commandHandler.aesProcessor.GenerateKey()
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	return writeOutput(cmd, []byte(codec.Base64Encode(key)))
}

// EncryptAESCmd encrypts the input and writes the Base64 ciphertext
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	key, err := commandHandler.key(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	plainText, err := readInput(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	ciphertext, err := commandHandler.aesProcessor.EncryptBase64(plainText, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	commandHandler.logger.Info("Encrypted ", len(plainText), " bytes")
	return writeOutput(cmd, []byte(ciphertext))
}

// DecryptAESCmd decrypts Base64 ciphertext and writes the plaintext bytes
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	key, err := commandHandler.key(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	ciphertext, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		return fmt.Errorf("invalid ciphertext flag: %w", err)
	}

	var encrypted []byte
	switch {
	case ciphertext != "" && inputFile != "":
		err = fmt.Errorf("--ciphertext and --input-file are mutually exclusive")
	case ciphertext != "":
		encrypted, err = codec.Base64Decode(ciphertext)
	case inputFile != "":
		encrypted, err = readBase64File(inputFile)
	default:
		err = fmt.Errorf("one of --ciphertext or --input-file is required")
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	decryptedData, err := commandHandler.aesProcessor.Decrypt(encrypted, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	return writeOutput(cmd, decryptedData)
}

func addAESKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "", "", "Base64 AES key, truncated or zero padded to 16 bytes")
	cmd.Flags().StringP("password", "", "", "Password whose MD5 digest is used as the key")
	cmd.Flags().BoolP("prompt-password", "", false, "Read the password from the terminal without echo")
}

// readPassword prompts on stderr and reads a line from the terminal attached to stdin
func readPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd()) // #nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--prompt-password requires an interactive terminal")
	}

	if _, err := fmt.Fprint(cmd.ErrOrStderr(), "Password: "); err != nil {
		return "", err
	}
	password, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler, err := NewAESCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create AES command handler: %w", err)
	}

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate a random AES-128 key",
		RunE:  handler.GenerateAESKeyCmd,
	}
	generateAESKeyCmd.Flags().StringP("output-file", "", "", "Path to output file (default stdout)")
	rootCmd.AddCommand(generateAESKeyCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt with AES-128-CBC and the fixed IV, output is Base64",
		RunE:  handler.EncryptAESCmd,
	}
	addAESKeyFlags(encryptAESFileCmd)
	addInputFlags(encryptAESFileCmd)
	encryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file (default stdout)")
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt Base64 AES-128-CBC ciphertext made with the fixed IV",
		RunE:  handler.DecryptAESCmd,
	}
	addAESKeyFlags(decryptAESFileCmd)
	decryptAESFileCmd.Flags().StringP("ciphertext", "", "", "Base64 ciphertext")
	decryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to a file holding Base64 ciphertext")
	decryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file (default stdout)")
	rootCmd.AddCommand(decryptAESFileCmd)

	return nil
}

package commands

import (
	"encoding/pem"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/config"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// LogLevelEnv overrides the CLI log level. Results go to stdout, so the default keeps info logs quiet.
const LogLevelEnv = "CRYPTO_INTEROP_CLI_LOG_LEVEL"

const (
	pemTypePKCS1PrivateKey = "RSA PRIVATE KEY"
	pemTypePKCS8PrivateKey = "PRIVATE KEY"
	pemTypePublicKey       = "PUBLIC KEY"
)

func setupLogger() (logger.Logger, error) {
	level := strings.ToLower(os.Getenv(LogLevelEnv))
	if !config.ValidLogLevel(level) {
		level = config.LogLevelWarning
	}

	settings := &config.LoggerSettings{
		LogLevel: level,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// readInput returns the UTF-8 bytes of the text flag or the contents of the input-file flag
func readInput(cmd *cobra.Command) ([]byte, error) {
	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return nil, fmt.Errorf("invalid text flag: %w", err)
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return nil, fmt.Errorf("invalid input-file flag: %w", err)
	}

	textSet := cmd.Flags().Changed("text")
	switch {
	case textSet && inputFile != "":
		return nil, fmt.Errorf("--text and --input-file are mutually exclusive")
	case textSet:
		return codec.UTF8Encode(text), nil
	case inputFile != "":
		data, err := os.ReadFile(filepath.Clean(inputFile))
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("one of --text or --input-file is required")
	}
}

// readBase64File reads a file holding Base64 text, surrounding whitespace allowed
func readBase64File(path string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return codec.Base64Decode(strings.TrimSpace(string(content)))
}

// writeOutput writes data to the output-file flag, or to the command output when it is empty
func writeOutput(cmd *cobra.Command, data []byte) error {
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}
	if outputFile == "" {
		out := cmd.OutOrStdout()
		if _, err := out.Write(data); err != nil {
			return err
		}
		_, err := io.WriteString(out, "\n")
		return err
	}
	if err := os.WriteFile(filepath.Clean(outputFile), data, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// readKeyFile loads a DER key stored as PEM, Base64 text or raw DER
func readKeyFile(path string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	if block, _ := pem.Decode(content); block != nil {
		return block.Bytes, nil
	}
	if der, err := codec.Base64Decode(strings.TrimSpace(string(content))); err == nil {
		return der, nil
	}
	return content, nil
}

// writeKeyFile stores der as PEM with the block type matching encoding
func writeKeyFile(path string, der []byte, encoding cryptoalg.KeyEncoding) error {
	var blockType string
	switch encoding {
	case cryptoalg.EncodingPKCS1:
		blockType = pemTypePKCS1PrivateKey
	case cryptoalg.EncodingPKCS8:
		blockType = pemTypePKCS8PrivateKey
	case cryptoalg.EncodingSPKI:
		blockType = pemTypePublicKey
	default:
		return fmt.Errorf("cannot store key with encoding %s", encoding)
	}

	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return fmt.Errorf("failed to write key file %s: %w", path, err)
	}
	return nil
}

package commands

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const (
	formatBase64 = "base64"
	formatHex    = "hex"
)

// CodecCommandHandler handles hashing and text encodings via CLI.
type CodecCommandHandler struct {
	hasher cryptoalg.Hasher
	logger logger.Logger
}

// NewCodecCommandHandler initializes a CodecCommandHandler with logging and an MD5 hasher.
func NewCodecCommandHandler() (*CodecCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &CodecCommandHandler{
		hasher: cryptography.NewMD5Hasher(),
		logger: loggerInstance,
	}, nil
}

// MD5Cmd prints the hex MD5 digest of the input
func (commandHandler *CodecCommandHandler) MD5Cmd(cmd *cobra.Command, _ []string) error {
	data, err := readInput(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	return writeOutput(cmd, []byte(commandHandler.hasher.DigestHex(data)))
}

func encodeAs(format string, data []byte) (string, error) {
	switch strings.ToLower(format) {
	case formatBase64:
		return codec.Base64Encode(data), nil
	case formatHex:
		return codec.HexEncode(data), nil
	default:
		return "", fmt.Errorf("unsupported format %q, expected base64 or hex", format)
	}
}

func decodeFrom(format, text string) ([]byte, error) {
	switch strings.ToLower(format) {
	case formatBase64:
		return codec.Base64Decode(text)
	case formatHex:
		return codec.HexDecode(text)
	default:
		return nil, fmt.Errorf("unsupported format %q, expected base64 or hex", format)
	}
}

// EncodeCmd encodes the input bytes as Base64 or hex
func (commandHandler *CodecCommandHandler) EncodeCmd(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("invalid format flag: %w", err)
	}

	data, err := readInput(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	encoded, err := encodeAs(format, data)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	return writeOutput(cmd, []byte(encoded))
}

// DecodeCmd decodes Base64 or hex text and writes the raw bytes
func (commandHandler *CodecCommandHandler) DecodeCmd(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("invalid format flag: %w", err)
	}

	input, err := readInput(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	decoded, err := decodeFrom(format, strings.TrimSpace(string(input)))
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	return writeOutput(cmd, decoded)
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("text", "", "", "Input text, used as UTF-8 bytes")
	cmd.Flags().StringP("input-file", "", "", "Path to input file")
}

// InitCodecCommands registers md5, encode and decode
func InitCodecCommands(rootCmd *cobra.Command) error {
	handler, err := NewCodecCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create codec command handler: %w", err)
	}

	var md5Cmd = &cobra.Command{
		Use:   "md5",
		Short: "Print the MD5 digest of the input as lowercase hex",
		RunE:  handler.MD5Cmd,
	}
	addInputFlags(md5Cmd)
	md5Cmd.Flags().StringP("output-file", "", "", "Path to output file (default stdout)")
	rootCmd.AddCommand(md5Cmd)

	var encodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "Encode input bytes as base64 or hex",
		RunE:  handler.EncodeCmd,
	}
	addInputFlags(encodeCmd)
	encodeCmd.Flags().StringP("format", "", formatBase64, "Output format: base64 or hex")
	encodeCmd.Flags().StringP("output-file", "", "", "Path to output file (default stdout)")
	rootCmd.AddCommand(encodeCmd)

	var decodeCmd = &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 or hex text into raw bytes",
		RunE:  handler.DecodeCmd,
	}
	addInputFlags(decodeCmd)
	decodeCmd.Flags().StringP("format", "", formatBase64, "Input format: base64 or hex")
	decodeCmd.Flags().StringP("output-file", "", "", "Path to output file (default stdout)")
	rootCmd.AddCommand(decodeCmd)

	return nil
}

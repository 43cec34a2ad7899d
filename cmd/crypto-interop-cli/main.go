// Package main is the entry point for the crypto-interop-cli application.
// It registers the codec, AES and RSA sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/crypto-interop/cmd/crypto-interop-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := NewRootCmd()

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// NewRootCmd returns the root command without sub-commands
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crypto-interop-cli",
		Short: "Interoperable cryptography CLI tool",
		Long: `crypto-interop-cli produces and consumes byte-exact artifacts shared with a companion system:
MD5 digests, Base64/hex text, AES-128-CBC with a fixed IV, and RSA PKCS#1 v1.5
encryption and signatures with keys in PKCS#1 or PKCS#8.

The fixed AES IV makes ciphertexts deterministic. Do not use it where confidentiality matters.

Set ` + commands.LogLevelEnv + ` to info or debug for diagnostic logs.`,
		SilenceUsage: true,
	}
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitCodecCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize codec commands: %w", err)
	}

	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}

package commands

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/servicehub/internal/domain/cryptoalg"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DocumentCommandHandler manages the KYC document encryption key via CLI.
type DocumentCommandHandler struct {
	aesProcessor cryptoalg.AESProcessor
	logger       logger.Logger
}

// NewDocumentCommandHandler initializes a DocumentCommandHandler with
// a console logger and AES processor.
func NewDocumentCommandHandler() (*DocumentCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	return &DocumentCommandHandler{
		aesProcessor: aesProcessor,
		logger:       loggerInstance,
	}, nil
}

// GenerateDocumentKeyCmd prints a fresh base64 key for documents.encryptionKey
func (commandHandler *DocumentCommandHandler) GenerateDocumentKeyCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}

	secretKey, err := commandHandler.aesProcessor.GenerateKey(keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(os.Stdout, base64.StdEncoding.EncodeToString(secretKey))
}

// DecryptDocumentCmd decrypts a KYC blob copied out of storage with the configured key
func (commandHandler *DocumentCommandHandler) DecryptDocumentCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key, err := cfg.Documents.Key()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	if key == nil {
		commandHandler.logger.Error("documents.encryptionKey is not configured, stored documents are plain")
		return
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	decryptedData, err := commandHandler.aesProcessor.Decrypt(encryptedData, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFilePath, decryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted document saved to ", outputFilePath)
}

// InitDocumentCommands registers KYC document key commands
func InitDocumentCommands(rootCmd *cobra.Command) error {
	handler, err := NewDocumentCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create document command handler %w", err)
	}

	var generateDocumentKeyCmd = &cobra.Command{
		Use:   "generate-document-key",
		Short: "Generate a base64 AES key for KYC document encryption",
		Run:   handler.GenerateDocumentKeyCmd,
	}
	generateDocumentKeyCmd.Flags().IntP("key-size", "", 32, "AES key size in bytes (16, 24 or 32)")
	rootCmd.AddCommand(generateDocumentKeyCmd)

	var decryptDocumentCmd = &cobra.Command{
		Use:   "decrypt-document",
		Short: "Decrypt a stored KYC document with the configured key",
		Run:   handler.DecryptDocumentCmd,
	}
	decryptDocumentCmd.Flags().StringP("input-file", "", "", "Path to the encrypted blob")
	decryptDocumentCmd.Flags().StringP("output-file", "", "", "Path to the decrypted output file")
	rootCmd.AddCommand(decryptDocumentCmd)

	return nil
}

//go:build unit
// +build unit

package commands

import (
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/partners"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminInputFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "create-admin"}
	addAdminAccountFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{
		"--name", "Ops Admin",
		"--email", "ops@example.com",
		"--phone", "+919876543210",
		"--password", "s3cretpass",
	}))

	input, err := adminInputFromFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, "Ops Admin", input.Name)
	assert.Equal(t, "ops@example.com", input.Email)
	assert.Equal(t, "+919876543210", input.Phone)
	assert.Equal(t, "s3cretpass", input.Password)
	assert.False(t, input.Super)
}

func TestAdminInputFromFlags_MissingFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "create-admin"}

	_, err := adminInputFromFlags(cmd)
	assert.Error(t, err)
}

func TestSubjectFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "trust-history"}
	addSubjectFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--subject-type", "DEALER", "--subject-id", "abc"}))

	subjectType, subjectID, err := subjectFromFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, partners.TypeDealer, subjectType)
	assert.Equal(t, "abc", subjectID)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cmd := &cobra.Command{Use: "migrate"}
	cmd.Flags().String("config", t.TempDir()+"/missing.yaml", "")

	_, err := loadConfig(cmd)
	assert.Error(t, err)
}

func TestInitCommands_RegistersEverything(t *testing.T) {
	rootCmd := &cobra.Command{Use: "servicehub-cli"}
	require.NoError(t, InitAdminCommands(rootCmd))
	require.NoError(t, InitTrustCommands(rootCmd))
	require.NoError(t, InitNotifierCommands(rootCmd))
	require.NoError(t, InitDocumentCommands(rootCmd))

	for _, name := range []string{
		"migrate", "bootstrap-admin", "create-admin",
		"adjust-trust", "recalculate-trust", "trust-history",
		"run-notifier", "generate-document-key", "decrypt-document",
	} {
		found, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

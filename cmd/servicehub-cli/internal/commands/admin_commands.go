package commands

import (
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/app"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AdminCommandHandler handles schema migrations and admin account management via CLI.
type AdminCommandHandler struct {
	logger logger.Logger
}

// NewAdminCommandHandler initializes an AdminCommandHandler with a console logger.
func NewAdminCommandHandler() (*AdminCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AdminCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd creates or updates the database schema
func (commandHandler *AdminCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() { _ = persistence.CloseDB(db) }()

	if err := persistence.AutoMigrateAll(db); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Database migrations completed for ", cfg.Database.Type)
}

// BootstrapAdminCmd creates the first SUPER_ADMIN. It does nothing when one already exists.
func (commandHandler *AdminCommandHandler) BootstrapAdminCmd(cmd *cobra.Command, _ []string) {
	input, err := adminInputFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	input.Super = true

	authService, closeDB, err := commandHandler.authService(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeDB()

	user, err := authService.BootstrapSuperAdmin(cmd.Context(), input)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	if user == nil {
		commandHandler.logger.Warn("A super admin already exists, nothing created")
		return
	}
	commandHandler.logger.Info("Super admin created with id ", user.ID)
}

// CreateAdminCmd creates an ADMIN or SUPER_ADMIN on behalf of an existing SUPER_ADMIN
func (commandHandler *AdminCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) {
	actorEmail, err := cmd.Flags().GetString("actor-email")
	if err != nil {
		commandHandler.logger.Error("invalid actor-email flag ", err)
		return
	}

	input, err := adminInputFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	super, err := cmd.Flags().GetBool("super")
	if err != nil {
		commandHandler.logger.Error("invalid super flag ", err)
		return
	}
	input.Super = super

	cfg, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	db, repos, err := openRepositories(cfg, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() { _ = persistence.CloseDB(db) }()

	actor, err := repos.UserRepo.GetByEmail(cmd.Context(), users.NormalizeEmail(actorEmail))
	if err != nil {
		commandHandler.logger.Error("failed to resolve actor ", err)
		return
	}

	authService, err := app.NewAuthService(repos.UserRepo, repos.SessionRepo, &cfg.Auth, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	user, err := authService.CreateAdmin(cmd.Context(), actor.Principal(), input)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Admin created with id ", user.ID, " and role ", user.Role)
}

func (commandHandler *AdminCommandHandler) authService(cmd *cobra.Command) (users.AuthService, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	db, repos, err := openRepositories(cfg, commandHandler.logger)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() { _ = persistence.CloseDB(db) }

	authService, err := app.NewAuthService(repos.UserRepo, repos.SessionRepo, &cfg.Auth, commandHandler.logger)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return authService, closeDB, nil
}

func adminInputFromFlags(cmd *cobra.Command) (*users.CreateAdminInput, error) {
	input := &users.CreateAdminInput{}
	for flag, target := range map[string]*string{
		"name":     &input.Name,
		"email":    &input.Email,
		"phone":    &input.Phone,
		"password": &input.Password,
	} {
		value, err := cmd.Flags().GetString(flag)
		if err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", flag, err)
		}
		*target = value
	}
	return input, nil
}

func addAdminAccountFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "", "", "Display name of the admin")
	cmd.Flags().StringP("email", "", "", "Login email of the admin")
	cmd.Flags().StringP("phone", "", "", "Phone number in E.164 format")
	cmd.Flags().StringP("password", "", "", "Initial password (8 to 72 characters)")
}

// InitAdminCommands registers database and admin account commands
func InitAdminCommands(rootCmd *cobra.Command) error {
	handler, err := NewAdminCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run:   handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var bootstrapAdminCmd = &cobra.Command{
		Use:   "bootstrap-admin",
		Short: "Create the first super admin account",
		Run:   handler.BootstrapAdminCmd,
	}
	addAdminAccountFlags(bootstrapAdminCmd)
	rootCmd.AddCommand(bootstrapAdminCmd)

	var createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account on behalf of a super admin",
		Run:   handler.CreateAdminCmd,
	}
	addAdminAccountFlags(createAdminCmd)
	createAdminCmd.Flags().StringP("actor-email", "", "", "Email of the super admin performing the action")
	createAdminCmd.Flags().BoolP("super", "", false, "Grant SUPER_ADMIN instead of ADMIN")
	rootCmd.AddCommand(createAdminCmd)

	return nil
}

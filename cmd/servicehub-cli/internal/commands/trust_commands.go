package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/servicehub/internal/app"
	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// TrustCommandHandler handles trust score adjustments and history via CLI.
type TrustCommandHandler struct {
	logger logger.Logger
}

// NewTrustCommandHandler initializes a TrustCommandHandler with a console logger.
func NewTrustCommandHandler() (*TrustCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &TrustCommandHandler{logger: loggerInstance}, nil
}

// trustSession is an open database with a trust service and the acting principal
type trustSession struct {
	service trust.TrustService
	actor   *users.Principal
	close   func()
}

func (commandHandler *TrustCommandHandler) open(cmd *cobra.Command, withActor bool) (*trustSession, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	db, repos, err := openRepositories(cfg, commandHandler.logger)
	if err != nil {
		return nil, err
	}
	session := &trustSession{close: func() { _ = persistence.CloseDB(db) }}

	if withActor {
		actorEmail, err := cmd.Flags().GetString("actor-email")
		if err != nil {
			session.close()
			return nil, fmt.Errorf("invalid actor-email flag: %w", err)
		}
		actor, err := repos.UserRepo.GetByEmail(cmd.Context(), users.NormalizeEmail(actorEmail))
		if err != nil {
			session.close()
			return nil, fmt.Errorf("failed to resolve actor: %w", err)
		}
		session.actor = actor.Principal()
	}

	session.service, err = app.NewTrustService(repos.Transactor, repos.TrustRepo, repos.DealerRepo, repos.TechnicianRepo, repos.BookingRepo, repos.ComplaintRepo, commandHandler.logger)
	if err != nil {
		session.close()
		return nil, err
	}
	return session, nil
}

// AdjustTrustCmd applies a manual trust score delta
func (commandHandler *TrustCommandHandler) AdjustTrustCmd(cmd *cobra.Command, _ []string) {
	subjectType, subjectID, err := subjectFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	delta, err := cmd.Flags().GetInt("delta")
	if err != nil {
		commandHandler.logger.Error("invalid delta flag ", err)
		return
	}
	reason, err := cmd.Flags().GetString("reason")
	if err != nil {
		commandHandler.logger.Error("invalid reason flag ", err)
		return
	}

	session, err := commandHandler.open(cmd, true)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer session.close()

	entry, err := session.service.Adjust(cmd.Context(), session.actor, &trust.AdjustInput{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Delta:       delta,
		Reason:      reason,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Trust score changed from ", entry.PreviousScore, " to ", entry.NewScore)
}

// RecalculateTrustCmd derives the trust score from booking outcomes
func (commandHandler *TrustCommandHandler) RecalculateTrustCmd(cmd *cobra.Command, _ []string) {
	subjectType, subjectID, err := subjectFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	session, err := commandHandler.open(cmd, true)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer session.close()

	entry, err := session.service.Recalculate(cmd.Context(), session.actor, &trust.RecalculateInput{
		SubjectType: subjectType,
		SubjectID:   subjectID,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Trust score recalculated from ", entry.PreviousScore, " to ", entry.NewScore)
}

// TrustHistoryCmd prints the trust score history of a dealer or technician as JSON
func (commandHandler *TrustCommandHandler) TrustHistoryCmd(cmd *cobra.Command, _ []string) {
	subjectType, subjectID, err := subjectFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		commandHandler.logger.Error("invalid limit flag ", err)
		return
	}

	session, err := commandHandler.open(cmd, false)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer session.close()

	entries, total, err := session.service.History(cmd.Context(), &trust.HistoryQuery{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Page:        listing.Page{Limit: limit},
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	fmt.Fprintln(os.Stdout, string(out))
	commandHandler.logger.Info("Showing ", len(entries), " of ", total, " entries")
}

func subjectFromFlags(cmd *cobra.Command) (partners.PartnerType, string, error) {
	subjectType, err := cmd.Flags().GetString("subject-type")
	if err != nil {
		return "", "", fmt.Errorf("invalid subject-type flag: %w", err)
	}
	subjectID, err := cmd.Flags().GetString("subject-id")
	if err != nil {
		return "", "", fmt.Errorf("invalid subject-id flag: %w", err)
	}
	return partners.PartnerType(subjectType), subjectID, nil
}

func addSubjectFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("subject-type", "", "", "DEALER or TECHNICIAN")
	cmd.Flags().StringP("subject-id", "", "", "ID of the dealer or technician profile")
}

// InitTrustCommands registers trust score commands
func InitTrustCommands(rootCmd *cobra.Command) error {
	handler, err := NewTrustCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create trust command handler %w", err)
	}

	var adjustTrustCmd = &cobra.Command{
		Use:   "adjust-trust",
		Short: "Apply a manual trust score adjustment",
		Run:   handler.AdjustTrustCmd,
	}
	addSubjectFlags(adjustTrustCmd)
	adjustTrustCmd.Flags().IntP("delta", "", 0, "Score change; admins are limited to +/-5")
	adjustTrustCmd.Flags().StringP("reason", "", "", "Reason recorded in the history")
	adjustTrustCmd.Flags().StringP("actor-email", "", "", "Email of the admin performing the adjustment")
	rootCmd.AddCommand(adjustTrustCmd)

	var recalculateTrustCmd = &cobra.Command{
		Use:   "recalculate-trust",
		Short: "Recalculate a trust score from booking outcomes",
		Run:   handler.RecalculateTrustCmd,
	}
	addSubjectFlags(recalculateTrustCmd)
	recalculateTrustCmd.Flags().StringP("actor-email", "", "", "Email of the admin performing the recalculation")
	rootCmd.AddCommand(recalculateTrustCmd)

	var trustHistoryCmd = &cobra.Command{
		Use:   "trust-history",
		Short: "Print the trust score history of a dealer or technician",
		Run:   handler.TrustHistoryCmd,
	}
	addSubjectFlags(trustHistoryCmd)
	trustHistoryCmd.Flags().IntP("limit", "", listing.DefaultLimit, "Maximum number of entries")
	rootCmd.AddCommand(trustHistoryCmd)

	return nil
}

package main

import (
	"fmt"
	"log/slog"

	"shop/internal/app"
	"shop/internal/infra/db"
	auth "shop/internal/usecase/auth_usecase"

	"github.com/spf13/cobra"
)

var adminInput auth.RegisterUserInput

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a user with admin rights",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, gormDB, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(gormDB); err != nil {
				logger.Error("failed to close db", slog.Any("error", err))
			}
		}()

		a := app.New(cfg, logger, gormDB)
		defer a.Sweeper.Shutdown()

		user, err := a.Register.CreateAdmin(cmd.Context(), adminInput)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin created: %s (%s)\n", user.Username, user.UUID)
		return nil
	},
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminInput.Username, "username", "", "username (6-100 chars)")
	f.StringVar(&adminInput.Name, "name", "", "first name")
	f.StringVar(&adminInput.LastName, "last-name", "", "last name")
	f.StringVar(&adminInput.Email, "email", "", "email address")
	f.StringVar(&adminInput.Phone, "phone", "", "phone number")
	f.StringVar(&adminInput.Address, "address", "", "postal address")
	f.StringVar(&adminInput.Password, "password", "", "password (8-200 chars)")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}

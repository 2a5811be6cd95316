package main

import (
	"github.com/spf13/cobra"

	"github.com/Astemirdum/school-library/library/internal/model"
)

// systemActor runs offline commands with librarian capabilities.
var systemActor = model.Actor{Role: model.RoleLibrarian}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create the first librarian account",
	Long: `Create a librarian account so the API can be used.

Example:
  libctl bootstrap --name "Ana Reyes" --email ana.reyes@librarian.libratech.com --password s3cret-pass`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		e, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		user, err := e.svc.CreateUser(cmd.Context(), systemActor, model.CreateUserRequest{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     model.RoleLibrarian,
		})
		if err != nil {
			return err
		}
		cmd.Printf("librarian %s created (id %d)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	bootstrapCmd.Flags().String("name", "", "full name")
	bootstrapCmd.Flags().String("email", "", "login email")
	bootstrapCmd.Flags().String("password", "", "password, at least 8 characters")
	for _, f := range []string{"name", "email", "password"} {
		_ = bootstrapCmd.MarkFlagRequired(f)
	}
}

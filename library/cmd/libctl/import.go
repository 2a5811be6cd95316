package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/Astemirdum/school-library/library/internal/model"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk import books or users from csv/xlsx sheets",
}

var importBooksCmd = &cobra.Command{
	Use:   "books <file>",
	Short: "Import books; each row creates quantity copies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		e, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		res, err := e.svc.ImportBooks(cmd.Context(), systemActor, f, filepath.Base(args[0]))
		if err != nil {
			return err
		}
		cmd.Printf("imported %d, skipped %d\n", res.Imported, res.Skipped)
		return nil
	},
}

var importUsersCmd = &cobra.Command{
	Use:   "users <file>",
	Short: "Import users and print their temporary credentials",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		e, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		res, err := e.svc.ImportUsers(cmd.Context(), systemActor, f, filepath.Base(args[0]))
		if err != nil {
			return err
		}
		cmd.Printf("imported %d, skipped %d\n", res.Imported, res.Skipped)
		if out == "" {
			for _, c := range res.Credentials {
				cmd.Printf("%s\t%s\t%s\n", c.Name, c.Email, c.TemporaryPassword)
			}
			return nil
		}
		if err := writeCredentials(out, res.Credentials); err != nil {
			return err
		}
		cmd.Printf("credentials written to %s\n", out)
		return nil
	},
}

// writeCredentials stores the generated logins as an xlsx sheet for
// handing out to staff and students.
func writeCredentials(path string, creds []model.Credentials) error {
	const sheet = "Sheet1"
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"name", "email", "temporary_password"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "write header")
	}
	for i, c := range creds {
		row := []interface{}{c.Name, c.Email, c.TemporaryPassword}
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(i+2), &row); err != nil {
			return errors.Wrapf(err, "write row %d", i+2)
		}
	}
	return errors.Wrap(f.SaveAs(path), "save credentials")
}

func init() {
	importUsersCmd.Flags().String("out", "", "write credentials to this xlsx file instead of stdout")
	importCmd.AddCommand(importBooksCmd, importUsersCmd)
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"case_desk_app_go/config"
	"case_desk_app_go/db"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var newUser models.UserInput

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Add a staff member",
	Long: `Add a user. Flags that are not given are asked for when stdin is a
terminal.`,
	RunE: runCreateUser,
}

func init() {
	createUserCmd.Flags().StringVar(&newUser.Name, "name", "", "full name")
	createUserCmd.Flags().StringVar(&newUser.Email, "email", "", "email address")
	createUserCmd.Flags().StringVar(&newUser.Role, "role", "", "attorney, judge, clerk or paralegal")
	createUserCmd.Flags().StringVar(&newUser.Phone, "phone", "", "phone number")
	rootCmd.AddCommand(createUserCmd)
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	input := newUser
	if term.IsTerminal(int(os.Stdin.Fd())) {
		promptMissing(cmd.InOrStdin(), cmd.OutOrStdout(), &input)
	}

	cfg := config.Load()
	if err := openDatabase(cfg); err != nil {
		return err
	}
	defer db.Close()

	user, err := services.CreateUser(db.DB, input)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "User created successfully!")
	fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\nName: %s\nEmail: %s\nRole: %s\n", user.ID, user.Name, user.Email, user.Role)
	return nil
}

// promptMissing asks for every empty required field, one line each
func promptMissing(in io.Reader, out io.Writer, input *models.UserInput) {
	reader := bufio.NewReader(in)
	ask := func(label string, value *string) {
		if *value != "" {
			return
		}
		fmt.Fprintf(out, "%s: ", label)
		line, _ := reader.ReadString('\n')
		*value = strings.TrimSpace(line)
	}

	fmt.Fprintln(out, "=== Create New User ===")
	ask("Name", &input.Name)
	ask("Email", &input.Email)
	ask("Role ("+strings.Join(models.UserRoles, ", ")+")", &input.Role)
}

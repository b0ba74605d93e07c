package fitlog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tharindu/fitlog/internal/service"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage the local account and session",
}

var (
	signupEmail    string
	signupName     string
	signupPassword string
)

var userSignUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.SignUp(sqldb, service.SignUpInput{
				Email:    signupEmail,
				Name:     signupName,
				Password: signupPassword,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Signed in as %s\n", user.Name, user.Email)
			return nil
		})
	},
}

var (
	signinEmail    string
	signinPassword string
)

var userSignInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.SignIn(sqldb, signinEmail, signinPassword)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Email)
			return nil
		})
	},
}

var userSignOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Clear the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SignOut(sqldb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		})
	},
}

var userWhoAmICmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.CurrentUser(sqldb)
			if err != nil {
				return err
			}
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userSignUpCmd, userSignInCmd, userSignOutCmd, userWhoAmICmd)

	userSignUpCmd.Flags().StringVar(&signupEmail, "email", "", "Email address")
	userSignUpCmd.Flags().StringVar(&signupName, "name", "", "Display name")
	userSignUpCmd.Flags().StringVar(&signupPassword, "password", "", "Password (min 6 characters)")
	_ = userSignUpCmd.MarkFlagRequired("email")
	_ = userSignUpCmd.MarkFlagRequired("name")
	_ = userSignUpCmd.MarkFlagRequired("password")

	userSignInCmd.Flags().StringVar(&signinEmail, "email", "", "Email address")
	userSignInCmd.Flags().StringVar(&signinPassword, "password", "", "Password")
	_ = userSignInCmd.MarkFlagRequired("email")
	_ = userSignInCmd.MarkFlagRequired("password")
}

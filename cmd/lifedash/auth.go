// ABOUTME: CLI commands for identity switching: login, logout, whoami.
// ABOUTME: Login always succeeds; switching never merges or erases data.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
)

var loginName string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Switch to an identity's key space",
	Long: `Switch the active identity. Every slice reloads from the new
identity's key space; the guest data stays where it was. There is no
password — identities only namespace local data.

Example:
  lifedash login you@example.com --name "You"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(args[0])
		if email == "" {
			return fmt.Errorf("email cannot be empty")
		}

		name := loginName
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}
		st.Login(models.User{Email: email, Name: name})
		color.Green("✓ Logged in as %s", email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Switch back to the guest key space",
	RunE: func(cmd *cobra.Command, args []string) error {
		st.Logout()
		color.Green("✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if u := st.User(); u != nil {
			fmt.Printf("%s (%s)\n", u.Email, u.Name)
		} else {
			fmt.Println("guest")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginName, "name", "", "display name (default: email local part)")
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prf-platform/prfweb/internal/api"
	"github.com/prf-platform/prfweb/internal/session"
)

// promptIfEmpty reads a value from stdin when the flag wasn't supplied
func promptIfEmpty(value string, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}

	fmt.Fprintf(os.Stderr, "%s: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			email, err = promptIfEmpty(email, "email")
			if err != nil {
				return err
			}
			password, err = promptIfEmpty(password, "password")
			if err != nil {
				return err
			}

			res, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Printf("logged in as %s (%s)\n", res.User.Name, res.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			if err := client.Logout(); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}

			claims, err := session.ParseClaims(client.AuthToken())
			if err != nil {
				return fmt.Errorf("stored token is not readable: %w", err)
			}

			fmt.Printf("name:  %s\n", claims.Name)
			fmt.Printf("email: %s\n", claims.Email)
			fmt.Printf("role:  %s\n", claims.Role)
			if claims.Expired() {
				fmt.Println("token: expired - log in again")
			}

			if sub, ok := client.VIPSubscription(); ok {
				fmt.Printf("vip:   %s plan via %s (%s, expires %s)\n",
					sub.Plan, sub.Operator, sub.Status, sub.ExpiresAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	var req api.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and verify it by OTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			res, err := client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			if res.Message != "" {
				fmt.Println(res.Message)
			}

			for {
				otp, err := promptIfEmpty("", "enter the code sent to "+req.Email+" (or \"resend\")")
				if err != nil {
					return err
				}

				if otp == api.ResendOtpSentinel {
					res, err := client.ResendOtp(cmd.Context(), req.Email)
					if err != nil {
						return err
					}
					fmt.Println(res.Message)
					continue
				}

				verifyRes, err := client.VerifyOtp(cmd.Context(), req.Email, otp)
				if err != nil {
					return err
				}
				fmt.Println(verifyRes.Message)
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	return cmd
}

func newPasswordCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Password reset flow",
	}

	var email string
	forgot := &cobra.Command{
		Use:   "forgot",
		Short: "Request a password reset code",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			res, err := client.ForgotPassword(cmd.Context(), email)
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}
	forgot.Flags().StringVar(&email, "email", "", "account email")

	var resetEmail, otp, newPassword string
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Verify the reset code and set a new password",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			if _, err := client.VerifyOtpPassword(cmd.Context(), resetEmail, otp); err != nil {
				return err
			}

			res, err := client.SetNewPassword(cmd.Context(), resetEmail, newPassword)
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}
	reset.Flags().StringVar(&resetEmail, "email", "", "account email")
	reset.Flags().StringVar(&otp, "otp", "", "reset code")
	reset.Flags().StringVar(&newPassword, "new-password", "", "new password")

	cmd.AddCommand(forgot, reset)
	return cmd
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/cityguide/internal/sync"
)

func (c *Cli) runSignUp(ctx context.Context) error {
	fmt.Println("=== Sign Up ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	fmt.Println()
	fmt.Println("Creating account...")

	if err := c.authManager.SignUp(ctx, email, password); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Account created, you are signed in.")
	fmt.Printf("Email: %s\n", email)
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	if err := c.authManager.SignIn(ctx, email, password); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Login successful!")
	fmt.Printf("Email: %s\n", email)
	fmt.Println()
	fmt.Println("Your session has been saved.")
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authManager.SignOut(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Signed out, session removed.")
	return nil
}

func (c *Cli) runRecover(ctx context.Context) error {
	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	if err := c.authManager.RecoverPassword(ctx, email); err != nil {
		return err
	}

	fmt.Println("✓ Recovery email requested. Check your inbox.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Status ===")
	fmt.Println()

	if c.monitor.CheckNow(ctx) {
		fmt.Println("Connectivity: online")
	} else {
		fmt.Println("Connectivity: offline")
	}

	session := c.authManager.Session()
	if session == nil {
		fmt.Println("Session: not authenticated")
		fmt.Println()
		fmt.Println("Run 'cityguide login' to authenticate.")
	} else {
		expiresAt := time.Unix(session.ExpiresAt, 0)
		fmt.Println("Session: authenticated")
		fmt.Printf("Email: %s\n", session.Email)
		fmt.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining := time.Until(expiresAt); remaining > 0 {
			fmt.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			fmt.Println("Token has expired; it will be refreshed on the next call.")
		}
	}

	fmt.Println()
	state := c.orchestrator.State()
	fmt.Printf("Sync status: %s\n", state.Status)
	if last := state.LastResult; last != nil {
		if last.Success {
			fmt.Printf("Last sync: %d added, %d updated, %d deleted\n",
				last.Added, last.Updated, last.Deleted)
		} else {
			fmt.Printf("Last sync failed: %s\n", describeFailure(last))
		}
	}

	count, err := c.catalog.CountAttractions(ctx)
	if err != nil {
		return fmt.Errorf("failed to count attractions: %w", err)
	}
	fmt.Printf("Cached attractions: %d\n", count)
	return nil
}

func describeFailure(result *sync.Result) string {
	switch result.Category {
	case sync.FailureOffline:
		return "no connectivity, showing cached data"
	case sync.FailureNetwork:
		return "network trouble, try again later"
	case sync.FailureAuth:
		return "session expired, please login again"
	case sync.FailureClient:
		return fmt.Sprintf("request rejected: %v", result.Err)
	default:
		return fmt.Sprintf("%v", result.Err)
	}
}

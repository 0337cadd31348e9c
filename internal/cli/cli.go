package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/iudanet/cityguide/internal/api"
	"github.com/iudanet/cityguide/internal/auth"
	"github.com/iudanet/cityguide/internal/netwatch"
	"github.com/iudanet/cityguide/internal/storage"
	"github.com/iudanet/cityguide/internal/sync"
)

// Cli holds the wired services and dispatches commands.
type Cli struct {
	apiClient    api.ClientAPI
	authManager  *auth.Manager
	orchestrator *sync.Orchestrator
	reviewEngine *sync.ReviewEngine
	catalog      storage.CatalogStorage
	reviews      storage.ReviewStorage
	monitor      *netwatch.Monitor
}

func New(
	apiClient api.ClientAPI,
	authManager *auth.Manager,
	orchestrator *sync.Orchestrator,
	reviewEngine *sync.ReviewEngine,
	catalog storage.CatalogStorage,
	reviews storage.ReviewStorage,
	monitor *netwatch.Monitor,
) *Cli {
	return &Cli{
		apiClient:    apiClient,
		authManager:  authManager,
		orchestrator: orchestrator,
		reviewEngine: reviewEngine,
		catalog:      catalog,
		reviews:      reviews,
		monitor:      monitor,
	}
}

func PrintUsage() {
	fmt.Println("CityGuide Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  cityguide [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Backend base URL")
	fmt.Println("  --api-key KEY      Backend API key (or CITYGUIDE_API_KEY env)")
	fmt.Println("  --db PATH          Path to the local cache database")
	fmt.Println("  --state PATH       Path to the local state database")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  signup                     Create an account and sign in")
	fmt.Println("  login                      Sign in")
	fmt.Println("  logout                     Sign out and drop the saved session")
	fmt.Println("  recover                    Request a password recovery email")
	fmt.Println("  status                     Show session and connectivity status")
	fmt.Println("  sync                       Synchronize the catalog cache")
	fmt.Println("  full-sync                  Re-download the entire catalog")
	fmt.Println("  watch                      Stay online and sync automatically")
	fmt.Println("  list                       List cached attractions")
	fmt.Println("  show <id>                  Show one attraction with its reviews")
	fmt.Println("  favorite <id>              Mark an attraction as favorite")
	fmt.Println("  unfavorite <id>            Remove the favorite mark")
	fmt.Println("  reviews <id>               Show cached reviews for an attraction")
	fmt.Println("  refresh-reviews <id>       Force-refresh reviews for an attraction")
	fmt.Println("  my-reviews                 List your own reviews")
	fmt.Println("  review-add <id>            Write a review for an attraction")
	fmt.Println("  react <review-id> <like|dislike|none>  React to a review")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  cityguide login")
	fmt.Println("  cityguide sync")
	fmt.Println("  cityguide list")
	fmt.Println("  cityguide show b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  cityguide review-add b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  cityguide --server https://api.example.com login")
}

// readInput reads one trimmed line from stdin.
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword reads a password without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}

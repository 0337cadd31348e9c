package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/cityguide/internal/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	fmt.Println("=== Synchronization ===")
	fmt.Println()
	fmt.Println("Syncing catalog with server...")

	c.monitor.CheckNow(ctx)
	result := c.orchestrator.Sync(ctx)
	return printSyncResult(result)
}

func (c *Cli) runFullSync(ctx context.Context) error {
	fmt.Println("=== Full Synchronization ===")
	fmt.Println()
	fmt.Println("Re-downloading the entire catalog...")

	c.monitor.CheckNow(ctx)
	result := c.orchestrator.ForceFullSync(ctx)
	return printSyncResult(result)
}

// runWatch keeps the process alive, probing connectivity and syncing
// automatically when the backend becomes reachable. Ctrl-C to stop.
func (c *Cli) runWatch(ctx context.Context) error {
	fmt.Println("Watching connectivity, press Ctrl-C to stop...")

	go c.orchestrator.Run(ctx)
	go c.monitor.Run(ctx)

	states := c.orchestrator.Subscribe()
	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			fmt.Println("Stopped.")
			return nil
		case state := <-states:
			switch state.Status {
			case sync.StatusSyncing:
				fmt.Println("Syncing...")
			case sync.StatusSuccess:
				if r := state.LastResult; r != nil {
					fmt.Printf("✓ Synced: %d added, %d updated, %d deleted\n",
						r.Added, r.Updated, r.Deleted)
				}
			case sync.StatusError:
				if r := state.LastResult; r != nil {
					fmt.Printf("Sync failed: %s\n", describeFailure(r))
				}
			case sync.StatusIdle:
			}
		}
	}
}

func printSyncResult(result *sync.Result) error {
	if !result.Success {
		return fmt.Errorf("synchronization failed: %s", describeFailure(result))
	}

	fmt.Println()
	fmt.Println("✓ Synchronization completed!")
	fmt.Println()
	fmt.Printf("Added:   %d attractions\n", result.Added)
	fmt.Printf("Updated: %d attractions\n", result.Updated)
	fmt.Printf("Deleted: %d attractions\n", result.Deleted)
	return nil
}

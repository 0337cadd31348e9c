package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error
	switch command {
	case "signup":
		err = c.runSignUp(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "recover":
		err = c.runRecover(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "sync":
		err = c.runSync(ctx)
	case "full-sync":
		err = c.runFullSync(ctx)
	case "watch":
		err = c.runWatch(ctx)
	case "list":
		err = c.runList(ctx)
	case "show":
		err = c.runShow(ctx, args)
	case "favorite":
		err = c.runSetFavorite(ctx, args, true)
	case "unfavorite":
		err = c.runSetFavorite(ctx, args, false)
	case "reviews":
		err = c.runReviews(ctx, args)
	case "refresh-reviews":
		err = c.runRefreshReviews(ctx, args)
	case "my-reviews":
		err = c.runMyReviews(ctx)
	case "review-add":
		err = c.runReviewAdd(ctx, args)
	case "react":
		err = c.runReact(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
